package gen

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/syssam/jgd"
	"github.com/syssam/jgd/schema"
)

// entity generates e: one object, or an array of objects when e has a count.
// name is the value of ${entity.name} inside e. Only a count-bearing entity
// pushes it; other entities keep the enclosing name.
func (g *genContext) entity(e *schema.Entity, name string) (any, error) {
	if err := g.ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.enter(); err != nil {
		return nil, err
	}
	defer g.leave()
	if e.Seed != nil {
		saved := g.rng
		g.rng = NewRand(*e.Seed)
		defer func() { g.rng = saved }()
	}
	if e.Count == nil {
		return g.instance(e)
	}
	g.stack.pushEntity(name)
	defer g.stack.popEntity()
	n, err := ResolveCount(*e.Count, g.rng)
	if err != nil {
		return nil, g.withPath(err)
	}
	if err := g.reserve(n); err != nil {
		return nil, err
	}
	var seen map[string]struct{}
	if len(e.UniqueBy) > 0 {
		seen = make(map[string]struct{}, n)
	}
	out := make([]any, 0, n)
	for i := 1; i <= n; i++ {
		obj, err := g.indexed(i, n, func() (any, error) {
			return g.uniqueInstance(e, seen)
		})
		if err != nil {
			return nil, err
		}
		out = append(out, obj)
	}
	return out, nil
}

// indexed runs fn inside the index frame (i, n).
func (g *genContext) indexed(i, n int, fn func() (any, error)) (any, error) {
	g.stack.pushIndex(i, n)
	defer g.stack.popIndex()
	g.pushPath(indexSeg(i))
	defer g.popPath()
	return fn()
}

// uniqueInstance generates instances of e until one has a fingerprint not in
// seen, up to MaxUniqueAttempts tries. A nil seen accepts the first instance.
func (g *genContext) uniqueInstance(e *schema.Entity, seen map[string]struct{}) (any, error) {
	if seen == nil {
		return g.instance(e)
	}
	for range g.cfg.MaxUniqueAttempts {
		obj, err := g.instance(e)
		if err != nil {
			return nil, err
		}
		fp, err := fingerprint(obj, e.UniqueBy)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[fp]; !dup {
			seen[fp] = struct{}{}
			return obj, nil
		}
	}
	err := jgd.NewResourceError(jgd.ErrUniquenessExhausted, g.cfg.MaxUniqueAttempts,
		fmt.Sprintf("no unique value for %s", strings.Join(e.UniqueBy, ", ")))
	err.Path = g.pathString()
	return nil, err
}

// instance generates one object with the fields of e in declared order.
func (g *genContext) instance(e *schema.Entity) (*jgd.Object, error) {
	if err := g.consume(1); err != nil {
		return nil, err
	}
	obj := jgd.NewObject(len(e.Fields))
	for _, f := range e.Fields {
		v, err := g.namedField(f)
		if err != nil {
			return nil, err
		}
		obj.Set(f.Name, v)
	}
	return obj, nil
}

func (g *genContext) namedField(f schema.Field) (any, error) {
	g.stack.pushField(f.Name)
	defer g.stack.popField()
	g.pushPath(f.Name)
	defer g.popPath()
	return g.field(f.Spec)
}

// fingerprint encodes the unique_by values of obj.
func fingerprint(obj *jgd.Object, fields []string) (string, error) {
	var b strings.Builder
	for i, name := range fields {
		if i > 0 {
			b.WriteByte('|')
		}
		v, _ := obj.Get(name)
		enc, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("fingerprint %s: %w", name, err)
		}
		b.WriteString(name)
		b.WriteByte(':')
		b.Write(enc)
	}
	return b.String(), nil
}

// pool returns the instances a reference can sample from.
func pool(v any) []any {
	switch v := v.(type) {
	case []any:
		return v
	case nil:
		return nil
	default:
		return []any{v}
	}
}
