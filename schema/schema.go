package schema

import (
	"iter"
	"slices"
)

// DefaultFormat is the $format token written by builders.
const DefaultFormat = "jgd/v1"

// Schema is a parsed generator document. Exactly one of Root and Entities is set.
type Schema struct {
	Format        string
	Version       string
	Seed          *uint64
	DefaultLocale string
	Root          *Entity
	Entities      *Entities
}

// Root returns a schema generating a single root entity.
func Root(e *Entity) *Schema {
	if e.Name == "" {
		e.Name = RootName
	}
	return &Schema{Format: DefaultFormat, Version: "1", Root: e}
}

// Multi returns a schema generating the given named entities in order.
func Multi(es ...*Entity) *Schema {
	ents := NewEntities()
	for _, e := range es {
		ents.Add(e.Name, e)
	}
	return &Schema{Format: DefaultFormat, Version: "1", Entities: ents}
}

// IsMulti reports whether the schema declares named entities.
func (s *Schema) IsMulti() bool { return s.Entities != nil }

// WithSeed returns a shallow copy of s with its seed set.
func (s *Schema) WithSeed(seed uint64) *Schema {
	c := *s
	c.Seed = &seed
	return &c
}

// RootName names the root entity in paths and error messages.
const RootName = "root"

// Entities is an insertion-ordered map of entity name to Entity.
type Entities struct {
	names  []string
	byName map[string]*Entity
}

// NewEntities returns an empty set.
func NewEntities() *Entities {
	return &Entities{byName: make(map[string]*Entity)}
}

// Add appends e under name, replacing any entity of the same name in place.
// The entity's Name is set to name.
func (es *Entities) Add(name string, e *Entity) {
	e.Name = name
	if _, ok := es.byName[name]; !ok {
		es.names = append(es.names, name)
	}
	es.byName[name] = e
}

// Get returns the entity named name.
func (es *Entities) Get(name string) (*Entity, bool) {
	if es == nil {
		return nil, false
	}
	e, ok := es.byName[name]
	return e, ok
}

// Names returns entity names in declaration order.
func (es *Entities) Names() []string {
	if es == nil {
		return nil
	}
	return slices.Clone(es.names)
}

// Len returns the number of entities.
func (es *Entities) Len() int {
	if es == nil {
		return 0
	}
	return len(es.names)
}

// All iterates entities in declaration order.
func (es *Entities) All() iter.Seq2[string, *Entity] {
	return func(yield func(string, *Entity) bool) {
		if es == nil {
			return
		}
		for _, n := range es.names {
			if !yield(n, es.byName[n]) {
				return
			}
		}
	}
}

// indexOf returns the declaration position of name, or -1.
func (es *Entities) indexOf(name string) int {
	return slices.Index(es.names, name)
}

// Entity describes one object, or an array of objects when Count is set.
type Entity struct {
	Name     string
	Count    *Count
	Seed     *uint64
	UniqueBy []string
	Fields   []Field
}

// Field returns the spec of the field named name.
func (e *Entity) Field(name string) (FieldSpec, bool) {
	for _, f := range e.Fields {
		if f.Name == name {
			return f.Spec, true
		}
	}
	return nil, false
}

// FieldNames returns field names in declaration order.
func (e *Entity) FieldNames() []string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = f.Name
	}
	return names
}

// Field binds a name to a spec.
type Field struct {
	Name string
	Spec FieldSpec
}

// Build implements FieldBuilder, so plain fields can be passed to EntityBuilder.
func (f Field) Build() (Field, error) { return f, nil }
