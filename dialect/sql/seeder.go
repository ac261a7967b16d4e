package sql

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/syssam/jgd/dialect"
	"github.com/syssam/jgd/dialect/sql/schema"
)

// DefaultBatchSize is the number of rows inserted per statement.
const DefaultBatchSize = 100

// maxParams bounds the bind parameters of one statement.
var maxParams = map[string]int{
	dialect.SQLite:   32766,
	dialect.Postgres: 65535,
	dialect.MySQL:    65535,
}

// Seeder inserts inferred tables into a database.
type Seeder struct {
	drv       dialect.Driver
	log       *slog.Logger
	batchSize int
}

// SeedOption configures a Seeder.
type SeedOption func(*Seeder)

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) SeedOption {
	return func(s *Seeder) {
		if l != nil {
			s.log = l
		}
	}
}

// WithBatchSize sets the number of rows per INSERT statement.
func WithBatchSize(n int) SeedOption {
	return func(s *Seeder) {
		if n > 0 {
			s.batchSize = n
		}
	}
}

// NewSeeder returns a Seeder writing through drv.
func NewSeeder(drv dialect.Driver, opts ...SeedOption) *Seeder {
	s := &Seeder{
		drv:       drv,
		log:       slog.Default(),
		batchSize: DefaultBatchSize,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SeedResult reports the rows inserted per table, in seeding order.
type SeedResult struct {
	Tables []string
	Rows   map[string]int
}

// Total returns the number of rows inserted.
func (r *SeedResult) Total() int {
	n := 0
	for _, c := range r.Rows {
		n += c
	}
	return n
}

// Seed inserts the rows of tables in a single transaction. Tables are seeded
// in order, so referenced entities are written before the entities pointing
// at them. On error the transaction is rolled back and nothing is written.
func (s *Seeder) Seed(ctx context.Context, tables []*schema.Table) (_ *SeedResult, rerr error) {
	if err := schema.ValidateTables(tables).Err(); err != nil {
		return nil, err
	}
	tx, err := s.drv.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("dialect/sql: begin seed: %w", err)
	}
	defer func() {
		if rerr != nil {
			rerr = errors.Join(rerr, tx.Rollback())
		}
	}()
	start := time.Now()
	res := &SeedResult{Rows: make(map[string]int, len(tables))}
	for _, t := range tables {
		if len(t.Columns) == 0 {
			s.log.WarnContext(ctx, "skipping table without columns", "table", t.Name)
			continue
		}
		if err := s.insert(ctx, tx, t); err != nil {
			return nil, err
		}
		res.Tables = append(res.Tables, t.Name)
		res.Rows[t.Name] = len(t.Rows)
		s.log.DebugContext(ctx, "seeded table", "table", t.Name, "rows", len(t.Rows))
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("dialect/sql: commit seed: %w", err)
	}
	s.log.InfoContext(ctx, "seeded database",
		"dialect", s.drv.Dialect(),
		"tables", len(res.Tables),
		"rows", res.Total(),
		"duration", time.Since(start),
	)
	return res, nil
}

func (s *Seeder) insert(ctx context.Context, tx dialect.Tx, t *schema.Table) error {
	name := s.drv.Dialect()
	size := s.batchSize
	if limit, ok := maxParams[name]; ok && size*len(t.Columns) > limit {
		size = max(1, limit/len(t.Columns))
	}
	for lo := 0; lo < len(t.Rows); lo += size {
		rows := t.Rows[lo:min(lo+size, len(t.Rows))]
		query, args := InsertQuery(name, t, rows)
		if err := tx.Exec(ctx, query, args, nil); err != nil {
			if IsConstraintError(err) {
				return &ConstraintError{Table: t.Name, Err: err}
			}
			return fmt.Errorf("dialect/sql: seeding %s: %w", t.Name, err)
		}
	}
	return nil
}

// InsertQuery builds a multi-row INSERT of rows into t, with identifiers
// quoted and placeholders numbered for the dialect.
func InsertQuery(name string, t *schema.Table, rows [][]any) (string, []any) {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(Quote(name, t.Name))
	b.WriteString(" (")
	for i, c := range t.Columns {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(Quote(name, c.Name))
	}
	b.WriteString(") VALUES ")
	args := make([]any, 0, len(rows)*len(t.Columns))
	for i, row := range rows {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for j := range t.Columns {
			if j > 0 {
				b.WriteString(", ")
			}
			args = append(args, row[j])
			b.WriteString(Placeholder(name, len(args)))
		}
		b.WriteByte(')')
	}
	return b.String(), args
}

// Quote quotes an identifier for the dialect: backticks for MySQL, double
// quotes otherwise.
func Quote(name, ident string) string {
	if name == dialect.MySQL {
		return "`" + strings.ReplaceAll(ident, "`", "``") + "`"
	}
	return `"` + strings.ReplaceAll(ident, `"`, `""`) + `"`
}

// Placeholder returns the n-th (1-based) bind parameter of the dialect.
func Placeholder(name string, n int) string {
	if name == dialect.Postgres {
		return "$" + strconv.Itoa(n)
	}
	return "?"
}
