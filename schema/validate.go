package schema

import (
	"fmt"
	"math"
	"slices"

	"github.com/syssam/jgd"
)

// Validate checks the whole document: header, root/entities exclusivity,
// counts, numeric ranges, probabilities, array elements, unique_by and
// cross-entity references. It returns the first problem found.
func (s *Schema) Validate() error {
	if s.Format == "" {
		return jgd.NewSchemaError("$format", "missing $format", nil)
	}
	if s.Version == "" {
		return jgd.NewSchemaError("version", "missing version", nil)
	}
	switch {
	case s.Root != nil && s.Entities != nil:
		return jgd.NewSchemaError("", "root and entities are mutually exclusive", nil)
	case s.Root == nil && s.Entities == nil:
		return jgd.NewSchemaError("", "one of root or entities is required", nil)
	}
	v := &validator{schema: s}
	if s.Root != nil {
		return v.entity(RootName, s.Root, -1)
	}
	for i, name := range s.Entities.names {
		if name == "" {
			return jgd.NewSchemaError("entities", "entity name cannot be empty", nil)
		}
		if err := v.entity(name, s.Entities.byName[name], i); err != nil {
			return err
		}
	}
	return nil
}

type validator struct {
	schema *Schema
}

// entity validates e at path. pos is the declaration position of the
// enclosing top-level entity, -1 in root mode.
func (v *validator) entity(path string, e *Entity, pos int) error {
	if e == nil {
		return jgd.NewSchemaError(path, "entity is nil", nil)
	}
	if e.Count != nil {
		if err := ValidateCount(path, *e.Count); err != nil {
			return err
		}
	}
	seen := make(map[string]struct{}, len(e.Fields))
	for _, f := range e.Fields {
		fp := path + "." + f.Name
		if f.Name == "" {
			return jgd.NewSchemaError(path, "field name cannot be empty", nil)
		}
		if _, dup := seen[f.Name]; dup {
			return jgd.NewSchemaError(fp, "duplicate field", nil)
		}
		seen[f.Name] = struct{}{}
		if err := v.spec(fp, f.Spec, pos); err != nil {
			return err
		}
	}
	for _, u := range e.UniqueBy {
		if _, ok := seen[u]; !ok {
			return jgd.NewSchemaError(path+".unique_by", fmt.Sprintf("unknown field %q", u), nil)
		}
	}
	return nil
}

func (v *validator) spec(path string, spec FieldSpec, pos int) error {
	switch s := spec.(type) {
	case Literal:
		switch s.Value.(type) {
		case nil, bool, int64, float64, string:
			return nil
		default:
			return jgd.NewSpecError(path, jgd.ErrUnknownShape, fmt.Sprintf("unsupported literal type %T", s.Value))
		}
	case Template:
		if s.Source == nil {
			return jgd.NewSpecError(path, jgd.ErrUnknownShape, "template has no source")
		}
		return nil
	case NumberRange:
		return ValidateNumber(path, s)
	case ArraySpec:
		if err := ValidateCount(path, s.Count); err != nil {
			return err
		}
		if !IsPrimitive(s.Of) {
			return jgd.NewSpecError(path, jgd.ErrNotPrimitive, fmt.Sprintf("%s element", kindOf(s.Of)))
		}
		return v.spec(path+"[]", s.Of, pos)
	case OptionalSpec:
		if err := ValidateProb(path, s.Prob); err != nil {
			return err
		}
		return v.spec(path, s.Of, pos)
	case Reference:
		return v.reference(path, s, pos)
	case NestedEntity:
		return v.entity(path, s.Entity, pos)
	default:
		return jgd.NewSpecError(path, jgd.ErrUnknownShape, fmt.Sprintf("%T", spec))
	}
}

// reference checks that r names a field of an entity declared before the
// enclosing top-level entity.
func (v *validator) reference(path string, r Reference, pos int) error {
	fail := func(kind error, msg string) error {
		ref := jgd.NewReferenceError(r.String(), kind, msg)
		ref.Path = path
		return jgd.NewSchemaError(path, "invalid reference", ref)
	}
	if pos < 0 {
		return fail(jgd.ErrUndeclaredReference, "references require named entities")
	}
	target, ok := v.schema.Entities.Get(r.Entity)
	if !ok {
		return fail(jgd.ErrUndeclaredReference, fmt.Sprintf("entity %q is not declared", r.Entity))
	}
	if v.schema.Entities.indexOf(r.Entity) >= pos {
		return fail(jgd.ErrForwardReference, fmt.Sprintf("entity %q is not generated before this field", r.Entity))
	}
	if _, ok := target.Field(r.Field()); !ok {
		return fail(jgd.ErrUndeclaredReference, fmt.Sprintf("entity %q has no field %q", r.Entity, r.Field()))
	}
	return nil
}

// ValidateCount rejects negative and inverted counts.
func ValidateCount(path string, c Count) error {
	if c.Min < 0 || c.Max < 0 {
		return jgd.NewSpecError(path, jgd.ErrInvalidRange, fmt.Sprintf("negative count %s", c))
	}
	if c.Min > c.Max {
		return jgd.NewSpecError(path, jgd.ErrInvalidRange, fmt.Sprintf("count min %d > max %d", c.Min, c.Max))
	}
	return nil
}

// ValidateNumber rejects inverted or empty ranges.
func ValidateNumber(path string, n NumberRange) error {
	if math.IsNaN(n.Min) || math.IsNaN(n.Max) || math.IsInf(n.Min, 0) || math.IsInf(n.Max, 0) {
		return jgd.NewSpecError(path, jgd.ErrInvalidRange, "bounds must be finite")
	}
	if n.Min > n.Max {
		return jgd.NewSpecError(path, jgd.ErrInvalidRange, fmt.Sprintf("min %v > max %v", n.Min, n.Max))
	}
	if n.Integer && math.Ceil(n.Min) > math.Floor(n.Max) {
		return jgd.NewSpecError(path, jgd.ErrInvalidRange, fmt.Sprintf("no integer in [%v, %v]", n.Min, n.Max))
	}
	return nil
}

// ValidateProb rejects probabilities outside [0, 1].
func ValidateProb(path string, p float64) error {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return jgd.NewSpecError(path, jgd.ErrInvalidProbability, fmt.Sprintf("prob %v", p))
	}
	return nil
}

func kindOf(spec FieldSpec) string {
	if spec == nil {
		return "missing"
	}
	return spec.Kind().String()
}

// References returns the entities referenced anywhere inside e, sorted and
// without duplicates.
func References(e *Entity) []string {
	var out []string
	var walk func(FieldSpec)
	walk = func(spec FieldSpec) {
		switch s := spec.(type) {
		case Reference:
			out = append(out, s.Entity)
		case ArraySpec:
			walk(s.Of)
		case OptionalSpec:
			walk(s.Of)
		case NestedEntity:
			for _, f := range s.Entity.Fields {
				walk(f.Spec)
			}
		}
	}
	for _, f := range e.Fields {
		walk(f.Spec)
	}
	slices.Sort(out)
	return slices.Compact(out)
}
