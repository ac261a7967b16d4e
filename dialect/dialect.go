package dialect

import "context"

// Dialect names.
const (
	MySQL    = "mysql"
	SQLite   = "sqlite"
	Postgres = "postgres"
)

// Names lists the supported dialects.
func Names() []string {
	return []string{SQLite, Postgres, MySQL}
}

// Execer runs statements that do not return rows. Seeding only writes.
type Execer interface {
	// Exec executes a query that does not return records. args is a []any
	// and v, when not nil, receives the result.
	Exec(ctx context.Context, query string, args, v any) error
}

// Driver is the interface that wraps all necessary operations for seeding.
type Driver interface {
	Execer
	// Tx starts and returns a new transaction.
	Tx(ctx context.Context) (Tx, error)
	// Close closes the underlying connection.
	Close() error
	// Dialect returns the dialect name of the driver.
	Dialect() string
}

// Tx wraps Exec in a transaction.
type Tx interface {
	Execer
	Commit() error
	Rollback() error
}
