package commands

import (
	"fmt"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/syssam/jgd/dialect"
	"github.com/syssam/jgd/dialect/sql"
	"github.com/syssam/jgd/dialect/sql/schema"

	// Database drivers, registered under the dialect names.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

type seedOptions struct {
	runFlags
	dialect      string
	dsn          string
	createTables bool
	rootTable    string
	batchSize    int
}

func newSeedCmd(g *globalOptions) *cobra.Command {
	opts := &seedOptions{}

	cmd := &cobra.Command{
		Use:   "seed FILE",
		Short: "Generate a document and insert it into a SQL database",
		Long: fmt.Sprintf(`Generate a document and insert it into a SQL database.

Every entity becomes a table named after the pluralized entity, every field a
column. Nested objects and arrays are stored as JSON. All rows are inserted in
a single transaction.

The DSN defaults to $%s. Available dialects: %s.`, envDSN, strings.Join(dialect.Names(), ", ")),
		Example: `  # Seed a SQLite file, creating the tables
  jgd seed shop.yaml --dialect sqlite --dsn shop.db --create-tables

  # Seed PostgreSQL
  jgd seed shop.yaml --dialect postgres --dsn "postgres://localhost/shop?sslmode=disable"

  # Seed a root document into the table "products"
  jgd seed product.yaml --dialect mysql --dsn "root:pass@/shop" --root-table product`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSeed(cmd, g, args[0], opts)
		},
	}

	addRunFlags(cmd, &opts.runFlags)
	cmd.Flags().StringVarP(&opts.dialect, "dialect", "d", dialect.SQLite, fmt.Sprintf("SQL dialect (%s)", strings.Join(dialect.Names(), ", ")))
	cmd.Flags().StringVar(&opts.dsn, "dsn", "", "Data source name of the database")
	cmd.Flags().BoolVar(&opts.createTables, "create-tables", false, "Create missing tables before seeding")
	cmd.Flags().StringVar(&opts.rootTable, "root-table", "", "Entity name of a root document (default the root entity name)")
	cmd.Flags().IntVar(&opts.batchSize, "batch-size", sql.DefaultBatchSize, "Rows per INSERT statement")

	return cmd
}

func runSeed(cmd *cobra.Command, g *globalOptions, path string, opts *seedOptions) (rerr error) {
	if !slices.Contains(dialect.Names(), opts.dialect) {
		return fmt.Errorf("unsupported dialect %q. Available dialects: %s", opts.dialect, strings.Join(dialect.Names(), ", "))
	}
	dsn := opts.dsn
	if dsn == "" {
		dsn = g.getenv(envDSN)
	}
	if dsn == "" {
		return fmt.Errorf("--dsn or $%s is required", envDSN)
	}

	log := g.logger(cmd.ErrOrStderr())
	ctx := cmd.Context()
	s, res, err := generateFile(ctx, path, opts.options(cmd, log))
	if err != nil {
		return err
	}
	tables, err := schema.Tables(res.Value, rootName(s, opts.rootTable))
	if err != nil {
		return err
	}

	drv, err := sql.Open(opts.dialect, dsn)
	if err != nil {
		return err
	}
	defer func() {
		if err := drv.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()
	var d dialect.Driver = drv
	if g.verbose {
		d = sql.NewDebugDriver(d, sql.DebugWithLogger(log))
	}
	stats := sql.NewStatsDriver(d, sql.WithSlowQueryLog(log))

	if opts.createTables {
		if err := schema.Create(ctx, stats, tables); err != nil {
			return err
		}
	}
	seeded, err := sql.NewSeeder(stats, sql.WithLogger(log), sql.WithBatchSize(opts.batchSize)).Seed(ctx, tables)
	if err != nil {
		return err
	}
	log.DebugContext(ctx, "query stats", "stats", stats.QueryStats().Stats().String())

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "TABLE\tROWS")
	for _, name := range seeded.Tables {
		_, _ = fmt.Fprintf(w, "%s\t%d\n", name, seeded.Rows[name])
	}
	_, _ = fmt.Fprintf(w, "\nSeeded %d row(s) with seed %d\n", seeded.Total(), res.Seed)
	return w.Flush()
}
