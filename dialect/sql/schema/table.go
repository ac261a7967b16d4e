// Package schema infers relational tables from generated documents and plans
// the DDL that creates them.
package schema

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/go-openapi/inflect"

	"github.com/syssam/jgd"
)

// Type is the storage type of a column, inferred from the values it holds.
type Type uint8

// Column types. TypeNull marks a column that only ever held null.
const (
	TypeNull Type = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeString
	TypeJSON
)

// String returns the type name.
func (t Type) String() string {
	switch t {
	case TypeNull:
		return "null"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeString:
		return "string"
	case TypeJSON:
		return "json"
	default:
		return "Type(" + strconv.Itoa(int(t)) + ")"
	}
}

// merge returns the narrowest type holding values of both t and o. Integers
// widen to floats; any other mix falls back to text.
func (t Type) merge(o Type) Type {
	switch {
	case t == o, o == TypeNull:
		return t
	case t == TypeNull:
		return o
	case t == TypeInt && o == TypeFloat, t == TypeFloat && o == TypeInt:
		return TypeFloat
	default:
		return TypeString
	}
}

func typeOf(v any) Type {
	switch v.(type) {
	case nil:
		return TypeNull
	case bool:
		return TypeBool
	case int64, int:
		return TypeInt
	case float64:
		return TypeFloat
	case string:
		return TypeString
	default:
		return TypeJSON
	}
}

// Column is a table column.
type Column struct {
	Name     string
	Type     Type
	Nullable bool
	// Mixed is set when the column held values of incompatible types and
	// was widened to text.
	Mixed bool
}

// Table is a table inferred from one entity of a generated document.
type Table struct {
	Name    string
	Entity  string
	Columns []*Column
	// Rows hold one value per column, converted to the column type.
	Rows [][]any
}

// Column returns the column named name.
func (t *Table) Column(name string) (*Column, bool) {
	for _, c := range t.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return nil, false
}

// TableName returns the table name of an entity: snake case, pluralized.
func TableName(entity string) string {
	return inflect.Pluralize(inflect.Underscore(entity))
}

// ColumnName returns the column name of a field.
func ColumnName(field string) string {
	return inflect.Underscore(field)
}

// Tables infers one table per entity of doc. A document generated in entities
// mode is a *jgd.Object keyed by entity name; pass rootTable = "". A root
// document, either an object or a list of objects, becomes a single table
// named rootTable.
func Tables(doc any, rootTable string) ([]*Table, error) {
	if rootTable != "" {
		t, err := NewTable(rootTable, doc)
		if err != nil {
			return nil, err
		}
		return []*Table{t}, nil
	}
	obj, ok := doc.(*jgd.Object)
	if !ok {
		return nil, fmt.Errorf("schema: expected an object keyed by entity, got %T", doc)
	}
	tables := make([]*Table, 0, obj.Len())
	for _, name := range obj.Keys() {
		v, _ := obj.Get(name)
		t, err := NewTable(name, v)
		if err != nil {
			return nil, err
		}
		tables = append(tables, t)
	}
	return tables, nil
}

// NewTable builds the table of entity from its generated value: one object,
// or a list of objects. Columns appear in the order fields are first seen.
// Nested objects and arrays are stored as JSON text.
func NewTable(entity string, v any) (*Table, error) {
	var objs []*jgd.Object
	switch v := v.(type) {
	case *jgd.Object:
		objs = []*jgd.Object{v}
	case []any:
		objs = make([]*jgd.Object, 0, len(v))
		for i, e := range v {
			o, ok := e.(*jgd.Object)
			if !ok {
				return nil, fmt.Errorf("schema: %s[%d]: expected an object, got %T", entity, i+1, e)
			}
			objs = append(objs, o)
		}
	default:
		return nil, fmt.Errorf("schema: %s: expected an object or a list of objects, got %T", entity, v)
	}
	t := &Table{Name: TableName(entity), Entity: entity}
	index := make(map[string]int)
	for _, o := range objs {
		for _, k := range o.Keys() {
			if _, ok := index[k]; ok {
				continue
			}
			index[k] = len(t.Columns)
			t.Columns = append(t.Columns, &Column{Name: ColumnName(k)})
		}
	}
	seen := make([]int, len(t.Columns))
	for _, o := range objs {
		for _, k := range o.Keys() {
			i := index[k]
			val, _ := o.Get(k)
			c := t.Columns[i]
			vt := typeOf(val)
			if vt == TypeNull {
				c.Nullable = true
				continue
			}
			merged := c.Type.merge(vt)
			if c.Type != TypeNull && merged == TypeString && (c.Type != TypeString || vt != TypeString) {
				c.Mixed = true
			}
			c.Type = merged
			seen[i]++
		}
	}
	for i, c := range t.Columns {
		// Missing from some rows.
		if seen[i] < len(objs) {
			c.Nullable = true
		}
	}
	t.Rows = make([][]any, 0, len(objs))
	for _, o := range objs {
		row := make([]any, len(t.Columns))
		for k, i := range index {
			val, _ := o.Get(k)
			cv, err := convert(val, t.Columns[i].Type)
			if err != nil {
				return nil, fmt.Errorf("schema: %s.%s: %w", entity, k, err)
			}
			row[i] = cv
		}
		t.Rows = append(t.Rows, row)
	}
	return t, nil
}

// convert returns v in the representation of a column of type t.
func convert(v any, t Type) (any, error) {
	if v == nil {
		return nil, nil
	}
	switch t {
	case TypeFloat:
		if n, ok := v.(int64); ok {
			return float64(n), nil
		}
		return v, nil
	case TypeString:
		switch v := v.(type) {
		case string:
			return v, nil
		case bool:
			return strconv.FormatBool(v), nil
		case int64:
			return strconv.FormatInt(v, 10), nil
		case float64:
			return strconv.FormatFloat(v, 'g', -1, 64), nil
		}
		return marshal(v)
	case TypeJSON:
		return marshal(v)
	default:
		return v, nil
	}
}

func marshal(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
