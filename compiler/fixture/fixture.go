// Package fixture renders generated documents as Go source, for tests that
// want a generated data set compiled into the binary.
//
//	src, err := fixture.Source(doc, fixture.Options{Package: "testdata", Var: "Users"})
//
// Objects render as map[string]any literals in declared field order, arrays
// as []any, integers as int64 conversions.
package fixture

import (
	"bytes"
	"fmt"
	"go/token"
	"io"
	"math"
	"strconv"

	"github.com/dave/jennifer/jen"
	"golang.org/x/tools/imports"

	"github.com/syssam/jgd"
)

// Defaults for Options.
const (
	DefaultPackage = "fixtures"
	DefaultVar     = "Document"
)

// Options names the generated package and variable.
type Options struct {
	Package string
	Var     string
	// Comment documents the variable. Defaults to "<Var> is a generated document."
	Comment string
	// Seed, when set, is recorded in the header.
	Seed *uint64
}

func (o *Options) defaults() error {
	if o.Package == "" {
		o.Package = DefaultPackage
	}
	if o.Var == "" {
		o.Var = DefaultVar
	}
	if !token.IsIdentifier(o.Package) {
		return fmt.Errorf("fixture: invalid package name %q", o.Package)
	}
	if !token.IsIdentifier(o.Var) {
		return fmt.Errorf("fixture: invalid variable name %q", o.Var)
	}
	if o.Comment == "" {
		o.Comment = o.Var + " is a generated document."
	}
	return nil
}

// File returns the jennifer file declaring v.
func File(v any, opts Options) (*jen.File, error) {
	if err := opts.defaults(); err != nil {
		return nil, err
	}
	val, err := value(v)
	if err != nil {
		return nil, err
	}
	f := jen.NewFile(opts.Package)
	f.HeaderComment("Code generated by jgd. DO NOT EDIT.")
	if opts.Seed != nil {
		f.HeaderComment("Seed: " + strconv.FormatUint(*opts.Seed, 10))
	}
	f.Comment(opts.Comment)
	f.Var().Id(opts.Var).Op("=").Add(val)
	return f, nil
}

// Source returns the formatted Go source declaring v.
func Source(v any, opts Options) ([]byte, error) {
	f, err := File(v, opts)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return nil, fmt.Errorf("fixture: render: %w", err)
	}
	src, err := imports.Process(opts.Var+".go", buf.Bytes(), nil)
	if err != nil {
		return nil, fmt.Errorf("fixture: format: %w", err)
	}
	return src, nil
}

// Write writes the Go source declaring v to w.
func Write(w io.Writer, v any, opts Options) error {
	src, err := Source(v, opts)
	if err != nil {
		return err
	}
	_, err = w.Write(src)
	return err
}

func value(v any) (jen.Code, error) {
	switch v := v.(type) {
	case nil:
		return jen.Nil(), nil
	case bool:
		return jen.Lit(v), nil
	case int64:
		return jen.Lit(v), nil
	case int:
		return jen.Lit(int64(v)), nil
	case float64:
		if math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, fmt.Errorf("fixture: unsupported float %v", v)
		}
		return jen.Lit(v), nil
	case string:
		return jen.Lit(v), nil
	case []any:
		items := make([]jen.Code, 0, len(v))
		for _, e := range v {
			c, err := value(e)
			if err != nil {
				return nil, err
			}
			items = append(items, c)
		}
		return jen.Index().Id("any").ValuesFunc(func(g *jen.Group) {
			for _, c := range items {
				g.Line().Add(c)
			}
			if len(items) > 0 {
				g.Line()
			}
		}), nil
	case *jgd.Object:
		if v == nil {
			return jen.Nil(), nil
		}
		keys := v.Keys()
		items := make([]jen.Code, 0, len(keys))
		for _, k := range keys {
			e, _ := v.Get(k)
			c, err := value(e)
			if err != nil {
				return nil, err
			}
			items = append(items, jen.Lit(k).Op(":").Add(c))
		}
		return jen.Map(jen.String()).Id("any").ValuesFunc(func(g *jen.Group) {
			for _, c := range items {
				g.Line().Add(c)
			}
			if len(items) > 0 {
				g.Line()
			}
		}), nil
	default:
		return nil, fmt.Errorf("fixture: unsupported value of type %T", v)
	}
}
