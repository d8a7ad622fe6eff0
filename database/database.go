package database

import "context"

// Database is the connection handle callers hand to the query builder.
// The builder only carries it; rendering never issues a statement.
type Database interface {
	QueryContext(ctx context.Context, query string, args ...any) (Rows, error)
	ExecContext(ctx context.Context, query string, args ...any) (Result, error)
	PingContext(ctx context.Context) error
	Close() error
}

type Rows interface {
	Next() bool
	Scan(dest ...any) error
	Close() error
	Columns() ([]string, error)
}

type Result interface {
	RowsAffected() (int64, error)
}
