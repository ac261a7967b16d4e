// Package sql seeds generated documents into SQL databases.
//
// Driver adapts a database/sql handle to dialect.Driver. StatsDriver and
// DebugDriver wrap any dialect.Driver with statistics and slog debug logging.
//
// # Seeding
//
// A Seeder inserts the tables inferred by dialect/sql/schema in a single
// transaction, using multi-row INSERT statements:
//
//	drv, err := sql.Open(dialect.Postgres, dsn)
//	if err != nil {
//	    return err
//	}
//	defer drv.Close()
//	res, err := sql.NewSeeder(drv, sql.WithBatchSize(500)).Seed(ctx, tables)
//
// Identifiers are quoted and placeholders numbered per dialect:
//
//	postgres  INSERT INTO "users" ("id", "name") VALUES ($1, $2)
//	sqlite    INSERT INTO "users" ("id", "name") VALUES (?, ?)
//	mysql     INSERT INTO `users` (`id`, `name`) VALUES (?, ?)
//
// # Errors
//
// A row rejected by a database constraint fails the seed with a
// *ConstraintError. IsConstraintError recognizes lib/pq and MySQL error codes
// as well as SQLite messages.
package sql
