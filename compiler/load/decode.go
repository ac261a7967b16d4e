package load

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/syssam/jgd"
	"github.com/syssam/jgd/schema"
)

// Document keys.
const (
	keyFormat        = "$format"
	keyVersion       = "version"
	keySeed          = "seed"
	keyDefaultLocale = "defaultLocale"
	keyRoot          = "root"
	keyEntities      = "entities"
	keyCount         = "count"
	keyUniqueBy      = "unique_by"
	keyFields        = "fields"
	keyNumber        = "number"
	keyArray         = "array"
	keyOptional      = "optional"
	keyRef           = "ref"
	keyMin           = "min"
	keyMax           = "max"
	keyInteger       = "integer"
	keyOf            = "of"
	keyProb          = "prob"
	keyFixed         = "fixed"
	keyRange         = "range"
)

var entityKeys = []string{keyCount, keySeed, keyUniqueBy, keyFields}

type decoder struct{}

// mapping is a decoded mapping node: keys in order, values by key.
type mapping struct {
	node   *yaml.Node
	keys   []string
	values map[string]*yaml.Node
}

func (m *mapping) has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// only reports whether every key of m is in allowed.
func (m *mapping) only(allowed ...string) bool {
	for _, k := range m.keys {
		if !slices.Contains(allowed, k) {
			return false
		}
	}
	return true
}

func schemaErr(n *yaml.Node, path, format string, args ...any) *jgd.SchemaError {
	e := jgd.NewSchemaError(path, fmt.Sprintf(format, args...), nil)
	if n != nil {
		e.Line = n.Line
	}
	return e
}

func (d *decoder) mapping(n *yaml.Node, path string) (*mapping, error) {
	if n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	if n.Kind != yaml.MappingNode {
		return nil, schemaErr(n, path, "expected an object")
	}
	m := &mapping{node: n, values: make(map[string]*yaml.Node, len(n.Content)/2)}
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		if k.Kind != yaml.ScalarNode {
			return nil, schemaErr(k, path, "object keys must be strings")
		}
		if _, dup := m.values[k.Value]; dup {
			return nil, schemaErr(k, path, "duplicate key %q", k.Value)
		}
		if v.Kind == yaml.AliasNode {
			v = v.Alias
		}
		m.keys = append(m.keys, k.Value)
		m.values[k.Value] = v
	}
	return m, nil
}

func (d *decoder) schema(n *yaml.Node) (*schema.Schema, error) {
	m, err := d.mapping(n, "")
	if err != nil {
		return nil, err
	}
	s := &schema.Schema{}
	if v, ok := m.values[keyFormat]; ok {
		if s.Format, err = d.str(v, keyFormat); err != nil {
			return nil, err
		}
	}
	if v, ok := m.values[keyVersion]; ok {
		// Versions are opaque; accept 1 as well as "1".
		if !isScalar(v) || v.ShortTag() == "!!null" {
			return nil, schemaErr(v, keyVersion, "expected a string")
		}
		s.Version = v.Value
	}
	if v, ok := m.values[keySeed]; ok {
		seed, err := d.seed(v, keySeed)
		if err != nil {
			return nil, err
		}
		s.Seed = &seed
	}
	if v, ok := m.values[keyDefaultLocale]; ok {
		if s.DefaultLocale, err = d.str(v, keyDefaultLocale); err != nil {
			return nil, err
		}
	}
	if v, ok := m.values[keyRoot]; ok {
		if s.Root, err = d.entity(v, schema.RootName); err != nil {
			return nil, err
		}
		s.Root.Name = schema.RootName
	}
	if v, ok := m.values[keyEntities]; ok {
		em, err := d.mapping(v, keyEntities)
		if err != nil {
			return nil, err
		}
		s.Entities = schema.NewEntities()
		for _, name := range em.keys {
			e, err := d.entity(em.values[name], name)
			if err != nil {
				return nil, err
			}
			s.Entities.Add(name, e)
		}
	}
	// Header problems carry the line of the document itself.
	switch {
	case s.Format == "":
		return nil, schemaErr(n, keyFormat, "missing $format")
	case s.Version == "":
		return nil, schemaErr(n, keyVersion, "missing version")
	case s.Root != nil && s.Entities != nil:
		return nil, schemaErr(n, "", "root and entities are mutually exclusive")
	case s.Root == nil && s.Entities == nil:
		return nil, schemaErr(n, "", "one of root or entities is required")
	}
	return s, nil
}

func (d *decoder) entity(n *yaml.Node, path string) (*schema.Entity, error) {
	m, err := d.mapping(n, path)
	if err != nil {
		return nil, err
	}
	return d.entityFrom(m, path)
}

func (d *decoder) entityFrom(m *mapping, path string) (*schema.Entity, error) {
	if !m.only(entityKeys...) {
		return nil, schemaErr(m.node, path, "unknown entity key; allowed keys are %s", strings.Join(entityKeys, ", "))
	}
	fv, ok := m.values[keyFields]
	if !ok {
		return nil, schemaErr(m.node, path, "missing fields")
	}
	e := &schema.Entity{}
	if v, ok := m.values[keyCount]; ok {
		c, err := d.count(v, path+"."+keyCount)
		if err != nil {
			return nil, err
		}
		e.Count = &c
	}
	if v, ok := m.values[keySeed]; ok {
		seed, err := d.seed(v, path+"."+keySeed)
		if err != nil {
			return nil, err
		}
		e.Seed = &seed
	}
	if v, ok := m.values[keyUniqueBy]; ok {
		if v.Kind != yaml.SequenceNode {
			return nil, schemaErr(v, path+"."+keyUniqueBy, "expected a list of field names")
		}
		for _, item := range v.Content {
			name, err := d.str(item, path+"."+keyUniqueBy)
			if err != nil {
				return nil, err
			}
			e.UniqueBy = append(e.UniqueBy, name)
		}
	}
	fm, err := d.mapping(fv, path+"."+keyFields)
	if err != nil {
		return nil, err
	}
	for _, name := range fm.keys {
		spec, err := d.field(fm.values[name], path+"."+name)
		if err != nil {
			return nil, err
		}
		e.Fields = append(e.Fields, schema.Field{Name: name, Spec: spec})
	}
	return e, nil
}

// field decodes one field spec by its shape.
func (d *decoder) field(n *yaml.Node, path string) (schema.FieldSpec, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		return d.scalarSpec(n, path)
	case yaml.SequenceNode:
		return nil, jgd.NewSpecError(path, jgd.ErrUnknownShape, "a list is not a field spec; use {array: {count, of}}")
	case yaml.MappingNode:
	default:
		return nil, jgd.NewSpecError(path, jgd.ErrUnknownShape, "unsupported node")
	}
	m, err := d.mapping(n, path)
	if err != nil {
		return nil, err
	}
	switch {
	case m.has(keyFields):
		e, err := d.entityFrom(m, path)
		if err != nil {
			return nil, err
		}
		e.Name = path[strings.LastIndexByte(path, '.')+1:]
		return schema.Nested(e), nil
	case len(m.keys) == 1 && m.has(keyNumber):
		inner, err := d.mapping(m.values[keyNumber], path+"."+keyNumber)
		if err != nil {
			return nil, err
		}
		return d.number(inner, path)
	case len(m.keys) == 1 && m.has(keyArray):
		inner, err := d.mapping(m.values[keyArray], path+"."+keyArray)
		if err != nil {
			return nil, err
		}
		return d.array(inner, path)
	case len(m.keys) == 1 && m.has(keyOptional):
		inner, err := d.mapping(m.values[keyOptional], path+"."+keyOptional)
		if err != nil {
			return nil, err
		}
		return d.optional(inner, path)
	case len(m.keys) == 1 && m.has(keyRef):
		ref, err := d.str(m.values[keyRef], path)
		if err != nil {
			return nil, err
		}
		r, err := schema.ParseRef(ref)
		if se, ok := err.(*jgd.SpecError); ok {
			se.Path = path
		}
		if err != nil {
			return nil, err
		}
		return r, nil
	case m.has(keyMin) && m.has(keyMax) && m.only(keyMin, keyMax, keyInteger):
		return d.number(m, path)
	case m.has(keyOf) && m.only(keyCount, keyOf):
		return d.array(m, path)
	default:
		return nil, jgd.NewSpecError(path, jgd.ErrUnknownShape, fmt.Sprintf("keys [%s]", strings.Join(m.keys, ", ")))
	}
}

func (d *decoder) scalarSpec(n *yaml.Node, path string) (schema.FieldSpec, error) {
	v, err := d.scalar(n, path)
	if err != nil {
		return nil, err
	}
	if s, ok := v.(string); ok {
		spec, err := schema.Str(s)
		if pe, ok := err.(*jgd.PatternError); ok {
			pe.Path = path
		}
		return spec, err
	}
	return schema.Literal{Value: v}, nil
}

func (d *decoder) number(m *mapping, path string) (schema.FieldSpec, error) {
	if !m.only(keyMin, keyMax, keyInteger) || !m.has(keyMin) || !m.has(keyMax) {
		return nil, jgd.NewSpecError(path, jgd.ErrUnknownShape, "number needs min and max, and optionally integer")
	}
	lo, err := d.float(m.values[keyMin], path+"."+keyMin)
	if err != nil {
		return nil, err
	}
	hi, err := d.float(m.values[keyMax], path+"."+keyMax)
	if err != nil {
		return nil, err
	}
	nr := schema.NumberRange{Min: lo, Max: hi}
	if v, ok := m.values[keyInteger]; ok {
		if nr.Integer, err = d.bool(v, path+"."+keyInteger); err != nil {
			return nil, err
		}
	}
	return nr, nil
}

func (d *decoder) array(m *mapping, path string) (schema.FieldSpec, error) {
	if !m.only(keyCount, keyOf) || !m.has(keyOf) {
		return nil, jgd.NewSpecError(path, jgd.ErrUnknownShape, "array needs of, and optionally count")
	}
	c := schema.FixedCount(1)
	if v, ok := m.values[keyCount]; ok {
		var err error
		if c, err = d.count(v, path+"."+keyCount); err != nil {
			return nil, err
		}
	}
	of, err := d.field(m.values[keyOf], path+"[]")
	if err != nil {
		return nil, err
	}
	return schema.Array(c, of), nil
}

func (d *decoder) optional(m *mapping, path string) (schema.FieldSpec, error) {
	if !m.only(keyOf, keyProb) || !m.has(keyOf) {
		return nil, jgd.NewSpecError(path, jgd.ErrUnknownShape, "optional needs of, and optionally prob")
	}
	prob := schema.DefaultProb
	if v, ok := m.values[keyProb]; ok {
		var err error
		if prob, err = d.float(v, path+"."+keyProb); err != nil {
			return nil, err
		}
	}
	of, err := d.field(m.values[keyOf], path)
	if err != nil {
		return nil, err
	}
	return schema.Optional(prob, of), nil
}

// count decodes n, [min, max], {fixed: n} or {range: [min, max]}.
func (d *decoder) count(n *yaml.Node, path string) (schema.Count, error) {
	switch n.Kind {
	case yaml.ScalarNode:
		v, err := d.int(n, path)
		return schema.FixedCount(v), err
	case yaml.SequenceNode:
		if len(n.Content) != 2 {
			return schema.Count{}, schemaErr(n, path, "count range must be [min, max]")
		}
		lo, err := d.int(n.Content[0], path)
		if err != nil {
			return schema.Count{}, err
		}
		hi, err := d.int(n.Content[1], path)
		if err != nil {
			return schema.Count{}, err
		}
		return schema.RangeCount(lo, hi), nil
	case yaml.MappingNode:
		m, err := d.mapping(n, path)
		if err != nil {
			return schema.Count{}, err
		}
		switch {
		case len(m.keys) == 1 && m.has(keyFixed):
			return d.count(m.values[keyFixed], path)
		case len(m.keys) == 1 && m.has(keyRange):
			r := m.values[keyRange]
			if r.Kind != yaml.SequenceNode {
				return schema.Count{}, schemaErr(r, path, "count range must be [min, max]")
			}
			return d.count(r, path)
		}
	}
	return schema.Count{}, schemaErr(n, path, "count must be n, [min, max], {fixed: n} or {range: [min, max]}")
}

// scalar converts a scalar node to nil, bool, int64, float64 or string.
func (d *decoder) scalar(n *yaml.Node, path string) (any, error) {
	switch n.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, schemaErr(n, path, "invalid boolean %q", n.Value)
		}
		return b, nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err == nil {
			return i, nil
		}
		// Out of int64 range.
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, schemaErr(n, path, "invalid integer %q", n.Value)
		}
		return f, nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return nil, schemaErr(n, path, "invalid number %q", n.Value)
		}
		return f, nil
	default:
		return n.Value, nil
	}
}

func (d *decoder) str(n *yaml.Node, path string) (string, error) {
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!str" {
		return "", schemaErr(n, path, "expected a string")
	}
	return n.Value, nil
}

func (d *decoder) bool(n *yaml.Node, path string) (bool, error) {
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!bool" {
		return false, schemaErr(n, path, "expected a boolean")
	}
	v, err := d.scalar(n, path)
	if err != nil {
		return false, err
	}
	return v.(bool), nil
}

func (d *decoder) float(n *yaml.Node, path string) (float64, error) {
	if n.Kind == yaml.ScalarNode {
		switch v, err := d.scalar(n, path); x := v.(type) {
		case int64:
			return float64(x), err
		case float64:
			return x, err
		}
	}
	return 0, schemaErr(n, path, "expected a number")
}

func (d *decoder) int(n *yaml.Node, path string) (int, error) {
	f, err := d.float(n, path)
	if err != nil {
		return 0, schemaErr(n, path, "expected an integer")
	}
	if f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, schemaErr(n, path, "expected an integer, got %s", n.Value)
	}
	return int(f), nil
}

func (d *decoder) seed(n *yaml.Node, path string) (uint64, error) {
	if n.Kind != yaml.ScalarNode || n.ShortTag() != "!!int" {
		return 0, schemaErr(n, path, "seed must be a non-negative integer")
	}
	v, err := strconv.ParseUint(strings.ReplaceAll(n.Value, "_", ""), 0, 64)
	if err != nil {
		return 0, schemaErr(n, path, "seed must be a non-negative integer")
	}
	return v, nil
}

func isScalar(n *yaml.Node) bool { return n.Kind == yaml.ScalarNode }
