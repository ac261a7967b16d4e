package gen

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/syssam/jgd"
	"github.com/syssam/jgd/schema/template"
)

// Context keys resolved from the stack.
const (
	keyIndex      = "index"
	keyCount      = "count"
	keyEntityName = "entity.name"
	keyFieldName  = "field.name"
)

// template resolves every placeholder of t. A template made of a single
// placeholder yields the typed value; otherwise values are rendered into
// the surrounding text.
func (g *genContext) template(t *template.Template) (any, error) {
	if p := t.Single(); p != nil {
		return g.placeholder(p)
	}
	var b strings.Builder
	for _, seg := range t.Segments {
		if !seg.IsPlaceholder() {
			b.WriteString(seg.Literal)
			continue
		}
		v, err := g.placeholder(seg.Placeholder)
		if err != nil {
			return nil, err
		}
		s, err := stringify(v)
		if err != nil {
			return nil, g.patternError(seg.Placeholder, nil, "value cannot be rendered", err)
		}
		b.WriteString(s)
	}
	return b.String(), nil
}

// placeholder resolves p against context keys, then custom keys, then the
// provider.
func (g *genContext) placeholder(p *template.Placeholder) (any, error) {
	key := p.Key()
	switch key {
	case keyIndex:
		depth := 1
		if !p.Args.IsNone() {
			if p.Args.Kind() != jgd.ArgsFixed {
				return nil, g.patternError(p, nil, "index takes a single depth argument", nil)
			}
			d, err := strconv.Atoi(p.Args.First())
			if err != nil {
				return nil, g.patternError(p, nil, "index depth must be an integer", err)
			}
			depth = d
		}
		i, ok := g.stack.index(depth)
		if !ok {
			return nil, g.patternError(p, jgd.ErrIndexOutOfRange,
				fmt.Sprintf("depth %d with %d enclosing repetitions", depth, g.stack.depth()), nil)
		}
		return int64(i), nil
	case keyCount:
		return int64(g.stack.count()), nil
	case keyEntityName:
		return g.stack.entityName(), nil
	case keyFieldName:
		return g.stack.fieldName(), nil
	}
	if fn, ok := g.keys[key]; ok {
		v, err := fn(p.Args)
		if err != nil {
			return nil, g.patternError(p, nil, "custom key failed", err)
		}
		return normalize(v), nil
	}
	if len(p.Path) >= 2 && g.provider != nil {
		v, err := g.provider.Generate(g.rng, p.Path[0], strings.Join(p.Path[1:], "."), p.Args, g.locale)
		switch {
		case errors.Is(err, jgd.ErrUnknownPattern):
			return nil, g.patternError(p, jgd.ErrUnknownPattern, "", nil)
		case err != nil:
			return nil, g.patternError(p, nil, "provider failed", err)
		}
		return normalize(v), nil
	}
	return nil, g.patternError(p, jgd.ErrUnknownPattern, "", nil)
}

func (g *genContext) patternError(p *template.Placeholder, kind error, msg string, cause error) *jgd.PatternError {
	e := jgd.NewPatternError(p.Raw, kind, msg)
	e.Path = g.pathString()
	e.Cause = cause
	return e
}

// normalize maps Go values returned by custom keys and providers onto the
// generated value types.
func normalize(v any) any {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case uint:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case float32:
		return float64(n)
	case time.Time:
		return n.Format(time.RFC3339)
	case fmt.Stringer:
		return n.String()
	default:
		return v
	}
}

// stringify renders v for substitution into a larger string.
func stringify(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	case nil:
		return "null", nil
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
}
