package schema

import (
	"fmt"
	"math"
	"strings"

	"github.com/syssam/jgd"
	tmpl "github.com/syssam/jgd/schema/template"
)

// SpecKind identifies a FieldSpec variant.
type SpecKind uint8

const (
	KindLiteral SpecKind = iota + 1
	KindTemplate
	KindNumber
	KindArray
	KindOptional
	KindReference
	KindEntity
)

var kindNames = [...]string{
	KindLiteral:   "literal",
	KindTemplate:  "template",
	KindNumber:    "number",
	KindArray:     "array",
	KindOptional:  "optional",
	KindReference: "ref",
	KindEntity:    "entity",
}

// String returns the kind name.
func (k SpecKind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("SpecKind(%d)", k)
}

// FieldSpec is the generation rule of one field. The variant set is closed.
type FieldSpec interface {
	Kind() SpecKind
	fieldSpec()
}

// Literal yields Value unchanged. Value is nil, bool, int64, float64 or string.
type Literal struct {
	Value any
}

// Template substitutes the placeholders of a parsed string.
type Template struct {
	Source *tmpl.Template
}

// NumberRange draws uniformly from [Min, Max]; integers when Integer is set.
type NumberRange struct {
	Min     float64
	Max     float64
	Integer bool
}

// ArraySpec yields Count primitive values produced by Of.
type ArraySpec struct {
	Count Count
	Of    FieldSpec
}

// OptionalSpec yields Of with probability Prob, otherwise null.
type OptionalSpec struct {
	Prob float64
	Of   FieldSpec
}

// Reference samples a value from an instance of an earlier entity.
// Path has at least one element: the top-level field, then nested keys.
type Reference struct {
	Entity string
	Path   []string
}

// NestedEntity generates an embedded entity.
type NestedEntity struct {
	Entity *Entity
}

func (Literal) Kind() SpecKind      { return KindLiteral }
func (Template) Kind() SpecKind     { return KindTemplate }
func (NumberRange) Kind() SpecKind  { return KindNumber }
func (ArraySpec) Kind() SpecKind    { return KindArray }
func (OptionalSpec) Kind() SpecKind { return KindOptional }
func (Reference) Kind() SpecKind    { return KindReference }
func (NestedEntity) Kind() SpecKind { return KindEntity }

func (Literal) fieldSpec()      {}
func (Template) fieldSpec()     {}
func (NumberRange) fieldSpec()  {}
func (ArraySpec) fieldSpec()    {}
func (OptionalSpec) fieldSpec() {}
func (Reference) fieldSpec()    {}
func (NestedEntity) fieldSpec() {}

// DefaultProb is the presence probability of an optional without "prob".
const DefaultProb = 0.5

// Lit returns a literal spec, normalizing Go numeric types to int64 or float64.
func Lit(v any) FieldSpec {
	switch n := v.(type) {
	case int:
		v = int64(n)
	case int8:
		v = int64(n)
	case int16:
		v = int64(n)
	case int32:
		v = int64(n)
	case uint:
		v = int64(n)
	case uint8:
		v = int64(n)
	case uint16:
		v = int64(n)
	case uint32:
		v = int64(n)
	case uint64:
		if n <= math.MaxInt64 {
			v = int64(n)
		} else {
			v = float64(n)
		}
	case float32:
		v = float64(n)
	}
	return Literal{Value: v}
}

// Tpl parses s into a template spec.
func Tpl(s string) (FieldSpec, error) {
	t, err := tmpl.Parse(s)
	if err != nil {
		return nil, err
	}
	return Template{Source: t}, nil
}

// MustTpl is like Tpl but panics on error.
func MustTpl(s string) FieldSpec {
	f, err := Tpl(s)
	if err != nil {
		panic(err)
	}
	return f
}

// Str returns a template spec when s contains a placeholder, and a string
// literal otherwise. Loaders use it for every string value.
func Str(s string) (FieldSpec, error) {
	if tmpl.HasPlaceholder(s) {
		return Tpl(s)
	}
	return Literal{Value: s}, nil
}

// IntRange returns an integer range spec.
func IntRange(lo, hi int64) FieldSpec {
	return NumberRange{Min: float64(lo), Max: float64(hi), Integer: true}
}

// FloatRange returns a float range spec.
func FloatRange(lo, hi float64) FieldSpec {
	return NumberRange{Min: lo, Max: hi}
}

// Array returns an array spec.
func Array(c Count, of FieldSpec) FieldSpec {
	return ArraySpec{Count: c, Of: of}
}

// Optional returns an optional spec.
func Optional(prob float64, of FieldSpec) FieldSpec {
	return OptionalSpec{Prob: prob, Of: of}
}

// Nested returns a nested entity spec.
func Nested(e *Entity) FieldSpec {
	return NestedEntity{Entity: e}
}

// ParseRef parses "entity.field[.key...]".
func ParseRef(s string) (Reference, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) < 2 {
		return Reference{}, jgd.NewSpecError("", jgd.ErrUnknownShape,
			fmt.Sprintf("reference %q must have the form entity.field", s))
	}
	for _, p := range parts {
		if p == "" {
			return Reference{}, jgd.NewSpecError("", jgd.ErrUnknownShape,
				fmt.Sprintf("reference %q has an empty segment", s))
		}
	}
	return Reference{Entity: parts[0], Path: parts[1:]}, nil
}

// Ref returns a reference spec, panicking when s is malformed.
func Ref(s string) FieldSpec {
	r, err := ParseRef(s)
	if err != nil {
		panic(err)
	}
	return r
}

// Field returns the referenced top-level field.
func (r Reference) Field() string {
	if len(r.Path) == 0 {
		return ""
	}
	return r.Path[0]
}

// String returns the reference as written.
func (r Reference) String() string {
	return r.Entity + "." + strings.Join(r.Path, ".")
}

// IsPrimitive reports whether spec always yields a scalar (or null) and may
// therefore be used as an array element.
func IsPrimitive(spec FieldSpec) bool {
	switch s := spec.(type) {
	case Literal, Template, NumberRange, Reference:
		return true
	case OptionalSpec:
		return IsPrimitive(s.Of)
	default:
		return false
	}
}
