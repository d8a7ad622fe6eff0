package dialect

import "strings"

type MySQL struct{}

func NewMySQLDialect() Dialect {
	return &MySQL{}
}

func (m MySQL) Name() string {
	return "mysql"
}

// QuoteIdentifier wraps name in backticks. Single quotes are backslash-escaped
// and backticks are left untouched.
func (m MySQL) QuoteIdentifier(name string) string {
	return "`" + escapeQuotes(name) + "`"
}

func (m MySQL) QuoteString(s string) string {
	return "'" + escapeQuotes(s) + "'"
}

func escapeQuotes(s string) string {
	if strings.IndexByte(s, '\'') < 0 {
		return s
	}
	return strings.ReplaceAll(s, "'", `\'`)
}
