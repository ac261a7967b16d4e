// Package template parses strings containing ${...} placeholders into a
// sequence of literal and placeholder segments.
//
// The placeholder grammar is
//
//	placeholder = "${" path [ "(" argtext ")" ] "}"
//	path        = identifier { "." identifier }
//	identifier  = [A-Za-z_][A-Za-z0-9_]*
//
// argtext is handed to jgd.ParseArguments.
package template

import (
	"fmt"
	"strings"

	"github.com/syssam/jgd"
)

const (
	openDelim  = "${"
	closeDelim = "}"
)

// Placeholder is one parsed ${...} span.
type Placeholder struct {
	Raw  string   // Source text including the delimiters
	Path []string // Identifier path, e.g. ["name", "firstName"]
	Args jgd.Arguments
}

// Key returns the dotted identifier path, e.g. "name.firstName".
func (p *Placeholder) Key() string {
	return strings.Join(p.Path, ".")
}

// Segment is either a literal run of text or a placeholder.
type Segment struct {
	Literal     string
	Placeholder *Placeholder
}

// IsPlaceholder reports whether the segment is a placeholder.
func (s Segment) IsPlaceholder() bool { return s.Placeholder != nil }

// Template is a parsed string.
type Template struct {
	Raw      string
	Segments []Segment
}

// Single returns the placeholder when the whole string is exactly one
// placeholder, and nil otherwise. A single placeholder yields its typed value
// instead of a string.
func (t *Template) Single() *Placeholder {
	if len(t.Segments) == 1 && t.Segments[0].IsPlaceholder() {
		return t.Segments[0].Placeholder
	}
	return nil
}

// Placeholders returns the placeholders in source order.
func (t *Template) Placeholders() []*Placeholder {
	var ps []*Placeholder
	for _, s := range t.Segments {
		if s.IsPlaceholder() {
			ps = append(ps, s.Placeholder)
		}
	}
	return ps
}

// String returns the source text.
func (t *Template) String() string { return t.Raw }

// HasPlaceholder reports whether s contains a placeholder opening.
func HasPlaceholder(s string) bool {
	return strings.Contains(s, openDelim)
}

// Parse tokenizes s into segments and parses every placeholder.
func Parse(s string) (*Template, error) {
	t := &Template{Raw: s}
	rest := s
	for rest != "" {
		start := strings.Index(rest, openDelim)
		if start < 0 {
			t.appendLiteral(rest)
			break
		}
		if start > 0 {
			t.appendLiteral(rest[:start])
		}
		end := strings.Index(rest[start:], closeDelim)
		if end < 0 {
			return nil, jgd.NewPatternError(rest[start:], nil, "unterminated placeholder")
		}
		raw := rest[start : start+end+1]
		p, err := parsePlaceholder(raw)
		if err != nil {
			return nil, err
		}
		t.Segments = append(t.Segments, Segment{Placeholder: p})
		rest = rest[start+end+1:]
	}
	return t, nil
}

// MustParse is like Parse but panics on error.
func MustParse(s string) *Template {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func (t *Template) appendLiteral(s string) {
	if n := len(t.Segments); n > 0 && !t.Segments[n-1].IsPlaceholder() {
		t.Segments[n-1].Literal += s
		return
	}
	t.Segments = append(t.Segments, Segment{Literal: s})
}

// parsePlaceholder parses raw, which includes both delimiters.
func parsePlaceholder(raw string) (*Placeholder, error) {
	inner := strings.TrimSpace(raw[len(openDelim) : len(raw)-len(closeDelim)])
	if inner == "" {
		return nil, jgd.NewPatternError(raw, nil, "empty placeholder")
	}
	p := &Placeholder{Raw: raw}
	path := inner
	if open := strings.IndexByte(inner, '('); open >= 0 {
		if !strings.HasSuffix(inner, ")") {
			return nil, jgd.NewPatternError(raw, nil, "argument list must end with ')'")
		}
		argtext := inner[open+1 : len(inner)-1]
		if strings.ContainsAny(argtext, "()") {
			return nil, jgd.NewPatternError(raw, nil, "nested parentheses in arguments")
		}
		p.Args = jgd.ParseArguments(argtext)
		path = strings.TrimSpace(inner[:open])
	}
	for _, id := range strings.Split(path, ".") {
		if !isIdentifier(id) {
			return nil, jgd.NewPatternError(raw, nil, fmt.Sprintf("invalid identifier %q", id))
		}
		p.Path = append(p.Path, id)
	}
	return p, nil
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_', c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z':
		case i > 0 && c >= '0' && c <= '9':
		default:
			return false
		}
	}
	return true
}
