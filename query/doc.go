// Package query renders parameterized query templates into query text.
//
// A template holds placeholders and conditional blocks. Each one consumes the
// next positional argument:
//
//	?    value rendered by type: NULL, 0/1, number or 'quoted string'
//	?d   integer
//	?f   float
//	?a   comma-joined list, or `key` = value pairs for associative arrays
//	?#   identifier or identifier list, quoted with backticks
//	{…}  conditional block, omitted when its argument is Skip()
//
// Example:
//
//	b := query.New(db)
//	sql, err := b.Build("SELECT ?# FROM users WHERE id = ?d{ AND block = ?d}",
//		[]string{"name", "email"}, 2, query.Skip())
//	// sql: SELECT `name`, `email` FROM users WHERE id = 2
//
// A block is rendered over its own argument followed by every argument not
// consumed yet, and ends at the first '}'; blocks cannot nest.
package query
