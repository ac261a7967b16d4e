package gen

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/syssam/jgd"
	"github.com/syssam/jgd/schema"
)

// field generates one value for spec.
func (g *genContext) field(spec schema.FieldSpec) (any, error) {
	if err := g.consume(1); err != nil {
		return nil, err
	}
	switch s := spec.(type) {
	case schema.Literal:
		return s.Value, nil
	case schema.Template:
		return g.template(s.Source)
	case schema.NumberRange:
		v, err := Number(s, g.rng)
		return v, g.withPath(err)
	case schema.ArraySpec:
		return g.array(s)
	case schema.OptionalSpec:
		return g.optional(s)
	case schema.Reference:
		return g.reference(s)
	case schema.NestedEntity:
		return g.entity(s.Entity, g.stack.entityName())
	default:
		return nil, g.withPath(jgd.NewSpecError("", jgd.ErrUnknownShape, fmt.Sprintf("%T", spec)))
	}
}

// maxExactInt is the largest magnitude at which float64 holds every integer.
const maxExactInt = 1 << 53

// Number draws a value from n: an int64 in [ceil(Min), floor(Max)] for
// integer ranges, a float64 in [Min, Max] otherwise. Equal bounds return
// the bound without drawing from r.
func Number(n schema.NumberRange, r *rand.Rand) (any, error) {
	if n.Min > n.Max || math.IsNaN(n.Min) || math.IsNaN(n.Max) {
		return nil, jgd.NewSpecError("", jgd.ErrInvalidRange, fmt.Sprintf("min %v > max %v", n.Min, n.Max))
	}
	if !n.Integer {
		if n.Min == n.Max {
			return n.Min, nil
		}
		return lerp(n.Min, n.Max, unitClosed(r)), nil
	}
	lo, hi := math.Ceil(n.Min), math.Floor(n.Max)
	switch {
	case lo > hi:
		return nil, jgd.NewSpecError("", jgd.ErrInvalidRange, fmt.Sprintf("no integer in [%v, %v]", n.Min, n.Max))
	case lo < -maxExactInt || hi > maxExactInt:
		return nil, jgd.NewSpecError("", jgd.ErrInvalidRange, fmt.Sprintf("integer bounds beyond ±2^53: [%v, %v]", n.Min, n.Max))
	case lo == hi:
		return int64(lo), nil
	}
	span := uint64(int64(hi)-int64(lo)) + 1
	return int64(lo) + int64(r.Uint64N(span)), nil
}

// array generates a list of primitive values.
func (g *genContext) array(s schema.ArraySpec) (any, error) {
	if !schema.IsPrimitive(s.Of) {
		return nil, g.withPath(jgd.NewSpecError("", jgd.ErrNotPrimitive, "array elements must be primitive"))
	}
	n, err := ResolveCount(s.Count, g.rng)
	if err != nil {
		return nil, g.withPath(err)
	}
	if err := g.reserve(n); err != nil {
		return nil, err
	}
	if err := g.enter(); err != nil {
		return nil, err
	}
	defer g.leave()
	out := make([]any, 0, n)
	for i := 1; i <= n; i++ {
		v, err := g.indexed(i, n, func() (any, error) {
			v, err := g.field(s.Of)
			if err != nil {
				return nil, err
			}
			switch v.(type) {
			case *jgd.Object, []any:
				return nil, g.withPath(jgd.NewSpecError("", jgd.ErrNotPrimitive, "array element produced a structured value"))
			}
			return v, nil
		})
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// unitClosed draws u from the 2^53+1 evenly spaced floats in [0, 1], both
// ends included.
func unitClosed(r *rand.Rand) float64 {
	return float64(r.Uint64N(1<<53+1)) / (1 << 53)
}

// lerp maps u in [0, 1] onto [lo, hi]. It does not overflow when hi-lo
// exceeds MaxFloat64, and u=0 and u=1 give lo and hi exactly.
func lerp(lo, hi, u float64) float64 {
	return max(lo, min(hi, lo*(1-u)+hi*u))
}

// optional draws u in [0, 1) and generates the inner spec when u < Prob.
func (g *genContext) optional(s schema.OptionalSpec) (any, error) {
	if err := schema.ValidateProb(g.pathString(), s.Prob); err != nil {
		return nil, err
	}
	if g.rng.Float64() >= s.Prob {
		return nil, nil
	}
	return g.field(s.Of)
}

// reference samples an instance of an already generated entity and walks
// the reference path into it.
func (g *genContext) reference(r schema.Reference) (any, error) {
	instances, ok := g.results[r.Entity]
	if !ok {
		return nil, g.withPath(jgd.NewReferenceError(r.String(), jgd.ErrForwardReference,
			fmt.Sprintf("entity %q has not been generated", r.Entity)))
	}
	if len(instances) == 0 {
		return nil, nil
	}
	v := instances[g.rng.IntN(len(instances))]
	for _, key := range r.Path {
		obj, ok := v.(*jgd.Object)
		if !ok {
			return nil, g.withPath(jgd.NewReferenceError(r.String(), jgd.ErrUndeclaredReference,
				fmt.Sprintf("cannot read %q from a non-object value", key)))
		}
		if v, ok = obj.Get(key); !ok {
			return nil, g.withPath(jgd.NewReferenceError(r.String(), jgd.ErrUndeclaredReference,
				fmt.Sprintf("instance has no key %q", key)))
		}
	}
	return v, nil
}
