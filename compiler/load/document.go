package load

import (
	"math"

	"github.com/syssam/jgd"
	"github.com/syssam/jgd/schema"
)

// Document renders s back into document form, using the explicit
// {number: ...}, {array: ...} and {optional: ...} shapes. Encoding the
// result as JSON or YAML and loading it again yields an equivalent schema.
func Document(s *schema.Schema) *jgd.Object {
	doc := jgd.NewObject(6)
	doc.Set(keyFormat, s.Format)
	doc.Set(keyVersion, s.Version)
	if s.Seed != nil {
		doc.Set(keySeed, *s.Seed)
	}
	if s.DefaultLocale != "" {
		doc.Set(keyDefaultLocale, s.DefaultLocale)
	}
	if s.Root != nil {
		doc.Set(keyRoot, entityDoc(s.Root))
	}
	if s.Entities != nil {
		ents := jgd.NewObject(s.Entities.Len())
		for name, e := range s.Entities.All() {
			ents.Set(name, entityDoc(e))
		}
		doc.Set(keyEntities, ents)
	}
	return doc
}

func entityDoc(e *schema.Entity) *jgd.Object {
	o := jgd.NewObject(4)
	if e.Count != nil {
		o.Set(keyCount, countDoc(*e.Count))
	}
	if e.Seed != nil {
		o.Set(keySeed, *e.Seed)
	}
	if len(e.UniqueBy) > 0 {
		u := make([]any, len(e.UniqueBy))
		for i, name := range e.UniqueBy {
			u[i] = name
		}
		o.Set(keyUniqueBy, u)
	}
	fields := jgd.NewObject(len(e.Fields))
	for _, f := range e.Fields {
		fields.Set(f.Name, specDoc(f.Spec))
	}
	o.Set(keyFields, fields)
	return o
}

func countDoc(c schema.Count) any {
	if c.Fixed {
		return int64(c.Min)
	}
	return []any{int64(c.Min), int64(c.Max)}
}

func specDoc(spec schema.FieldSpec) any {
	switch s := spec.(type) {
	case schema.Literal:
		return s.Value
	case schema.Template:
		return s.Source.Raw
	case schema.NumberRange:
		n := jgd.NewObject(3)
		n.Set(keyMin, numberDoc(s.Min))
		n.Set(keyMax, numberDoc(s.Max))
		if s.Integer {
			n.Set(keyInteger, true)
		}
		return single(keyNumber, n)
	case schema.ArraySpec:
		a := jgd.NewObject(2)
		a.Set(keyCount, countDoc(s.Count))
		a.Set(keyOf, specDoc(s.Of))
		return single(keyArray, a)
	case schema.OptionalSpec:
		o := jgd.NewObject(2)
		o.Set(keyOf, specDoc(s.Of))
		o.Set(keyProb, s.Prob)
		return single(keyOptional, o)
	case schema.Reference:
		return single(keyRef, s.String())
	case schema.NestedEntity:
		return entityDoc(s.Entity)
	default:
		return nil
	}
}

// numberDoc writes integral bounds as integers.
func numberDoc(f float64) any {
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return int64(f)
	}
	return f
}

func single(key string, v any) *jgd.Object {
	o := jgd.NewObject(1)
	o.Set(key, v)
	return o
}
