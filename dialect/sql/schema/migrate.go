package schema

import (
	"context"
	"fmt"

	"ariga.io/atlas/sql/migrate"
	"ariga.io/atlas/sql/mysql"
	"ariga.io/atlas/sql/postgres"
	"ariga.io/atlas/sql/schema"
	"ariga.io/atlas/sql/sqlite"

	"github.com/syssam/jgd/dialect"
)

// columnTypes maps column types to the type names of each dialect.
var columnTypes = map[string]map[Type]string{
	dialect.SQLite: {
		TypeNull: "text", TypeBool: "bool", TypeInt: "integer",
		TypeFloat: "real", TypeString: "text", TypeJSON: "json",
	},
	dialect.Postgres: {
		TypeNull: "text", TypeBool: "boolean", TypeInt: "bigint",
		TypeFloat: "double precision", TypeString: "text", TypeJSON: "jsonb",
	},
	dialect.MySQL: {
		TypeNull: "text", TypeBool: "bool", TypeInt: "bigint",
		TypeFloat: "double", TypeString: "text", TypeJSON: "json",
	},
}

// Migrate plans and runs the DDL of inferred tables.
type Migrate struct {
	dialect     string
	ifNotExists bool
	planner     migrate.PlanApplier
}

// MigrateOption configures a Migrate.
type MigrateOption func(*Migrate)

// WithIfNotExists makes CREATE TABLE statements skip existing tables.
func WithIfNotExists(b bool) MigrateOption {
	return func(m *Migrate) { m.ifNotExists = b }
}

// NewMigrate returns a Migrate for the named dialect.
func NewMigrate(name string, opts ...MigrateOption) (*Migrate, error) {
	m := &Migrate{dialect: name, ifNotExists: true}
	switch name {
	case dialect.SQLite:
		m.planner = sqlite.DefaultPlan
	case dialect.Postgres:
		m.planner = postgres.DefaultPlan
	case dialect.MySQL:
		m.planner = mysql.DefaultPlan
	default:
		return nil, fmt.Errorf("schema: unsupported dialect %q", name)
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Plan returns the statements creating tables, in order. Tables without
// columns are skipped.
func (m *Migrate) Plan(ctx context.Context, tables []*Table) ([]string, error) {
	if err := ValidateTables(tables).Err(); err != nil {
		return nil, err
	}
	changes := make([]schema.Change, 0, len(tables))
	for _, t := range tables {
		if len(t.Columns) == 0 {
			continue
		}
		add := &schema.AddTable{T: m.atlasTable(t)}
		if m.ifNotExists {
			add.Extra = append(add.Extra, &schema.IfNotExists{})
		}
		changes = append(changes, add)
	}
	if len(changes) == 0 {
		return nil, nil
	}
	plan, err := m.planner.PlanChanges(ctx, "jgd", changes)
	if err != nil {
		return nil, fmt.Errorf("schema: planning %s tables: %w", m.dialect, err)
	}
	stmts := make([]string, 0, len(plan.Changes))
	for _, c := range plan.Changes {
		stmts = append(stmts, c.Cmd)
	}
	return stmts, nil
}

// Create plans the tables and executes the statements on ex.
func (m *Migrate) Create(ctx context.Context, ex dialect.Execer, tables []*Table) error {
	stmts, err := m.Plan(ctx, tables)
	if err != nil {
		return err
	}
	for _, stmt := range stmts {
		if err := ex.Exec(ctx, stmt, []any{}, nil); err != nil {
			return fmt.Errorf("schema: create tables: %w", err)
		}
	}
	return nil
}

func (m *Migrate) atlasTable(t *Table) *schema.Table {
	names := columnTypes[m.dialect]
	at := schema.NewTable(t.Name)
	for _, c := range t.Columns {
		at.AddColumns(&schema.Column{
			Name: c.Name,
			Type: &schema.ColumnType{
				Type: atlasType(c.Type, names[c.Type]),
				Raw:  names[c.Type],
				Null: c.Nullable,
			},
		})
	}
	return at
}

func atlasType(t Type, name string) schema.Type {
	switch t {
	case TypeBool:
		return &schema.BoolType{T: name}
	case TypeInt:
		return &schema.IntegerType{T: name}
	case TypeFloat:
		return &schema.FloatType{T: name}
	case TypeJSON:
		return &schema.JSONType{T: name}
	default:
		return &schema.StringType{T: name}
	}
}

// Create plans the tables for the dialect of drv and creates them.
func Create(ctx context.Context, drv dialect.Driver, tables []*Table, opts ...MigrateOption) error {
	m, err := NewMigrate(drv.Dialect(), opts...)
	if err != nil {
		return err
	}
	return m.Create(ctx, drv, tables)
}
