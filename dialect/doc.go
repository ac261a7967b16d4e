// Package dialect names the databases generated documents can be seeded into
// and defines the driver interfaces the seeders use.
//
// # Dialects
//
//	dialect.SQLite   = "sqlite"
//	dialect.Postgres = "postgres"
//	dialect.MySQL    = "mysql"
//
// The names double as database/sql driver names for modernc.org/sqlite,
// github.com/lib/pq and github.com/go-sql-driver/mysql.
//
// # Driver Interface
//
//	type Driver interface {
//	    Exec(ctx context.Context, query string, args, v any) error
//	    Tx(ctx context.Context) (Tx, error)
//	    Close() error
//	    Dialect() string
//	}
//
// dialect/sql implements it on top of database/sql. Seeding a database:
//
//	drv, err := sql.Open(dialect.SQLite, "file:seed.db")
//	if err != nil {
//	    return err
//	}
//	defer drv.Close()
//	tables, err := schema.Tables(doc, "")
//	if err != nil {
//	    return err
//	}
//	if err := schema.Create(ctx, drv, tables); err != nil {
//	    return err
//	}
//	_, err = sql.NewSeeder(drv).Seed(ctx, tables)
//
// # Sub-packages
//
//   - dialect/sql: database/sql driver, statistics wrappers and the Seeder
//   - dialect/sql/schema: table inference and DDL planning
//   - dialect/redis: Redis list sink
package dialect
