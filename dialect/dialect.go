package dialect

import "fmt"

// Dialect renders quoted literals for the query text produced by the engine.
type Dialect interface {
	Name() string
	QuoteIdentifier(name string) string
	QuoteString(s string) string
}

// ByName resolves a configured dialect name. An empty name selects MySQL.
func ByName(name string) (Dialect, error) {
	switch name {
	case "", "mysql":
		return NewMySQLDialect(), nil
	case "tidb":
		return NewTiDBDialect(), nil
	default:
		return nil, fmt.Errorf("unknown dialect: %s", name)
	}
}
