package jgd

import (
	"strconv"
	"strings"
	"time"
)

// ArgsKind enumerates the shapes of placeholder arguments.
type ArgsKind uint8

const (
	ArgsNone ArgsKind = iota
	ArgsFixed
	ArgsRange
)

// String returns the kind name.
func (k ArgsKind) String() string {
	switch k {
	case ArgsNone:
		return "none"
	case ArgsFixed:
		return "fixed"
	case ArgsRange:
		return "range"
	default:
		return "unknown"
	}
}

// Arguments holds the parenthesized argument text of a placeholder, either a
// single value or a pair of bounds. Values stay strings until a generator asks
// for a concrete type, so a generator decides its own defaults.
type Arguments struct {
	kind ArgsKind
	a, b string
}

// NoArgs returns empty arguments.
func NoArgs() Arguments { return Arguments{} }

// FixedArg returns arguments holding a single value.
func FixedArg(v string) Arguments { return Arguments{kind: ArgsFixed, a: v} }

// RangeArgs returns arguments holding two bounds.
func RangeArgs(lo, hi string) Arguments { return Arguments{kind: ArgsRange, a: lo, b: hi} }

// ParseArguments parses the text between the parentheses of a placeholder.
// The text is split at the first "," or ".." into a range; an empty second
// part degrades to a fixed value and two empty parts to no arguments.
func ParseArguments(text string) Arguments {
	text = strings.TrimSpace(text)
	if text == "" {
		return NoArgs()
	}
	at, width := -1, 0
	if i := strings.Index(text, ","); i >= 0 {
		at, width = i, 1
	}
	if i := strings.Index(text, ".."); i >= 0 && (at < 0 || i < at) {
		at, width = i, 2
	}
	if at < 0 {
		return FixedArg(text)
	}
	lo := strings.TrimSpace(text[:at])
	hi := strings.TrimSpace(text[at+width:])
	switch {
	case lo == "" && hi == "":
		return NoArgs()
	case hi == "":
		return FixedArg(lo)
	default:
		return RangeArgs(lo, hi)
	}
}

// Kind returns the argument shape.
func (a Arguments) Kind() ArgsKind { return a.kind }

// IsNone reports whether no arguments were given.
func (a Arguments) IsNone() bool { return a.kind == ArgsNone }

// First returns the single value or the lower bound.
func (a Arguments) First() string { return a.a }

// Second returns the upper bound of a range, or "" otherwise.
func (a Arguments) Second() string { return a.b }

// String renders the arguments back to placeholder form, e.g. "(1..5)".
func (a Arguments) String() string {
	switch a.kind {
	case ArgsFixed:
		return "(" + a.a + ")"
	case ArgsRange:
		return "(" + a.a + ".." + a.b + ")"
	default:
		return ""
	}
}

// Str returns the first value, or def when absent.
func (a Arguments) Str(def string) string {
	if a.kind == ArgsNone || a.a == "" {
		return def
	}
	return a.a
}

// StrPair returns both values, substituting defaults for missing ones.
func (a Arguments) StrPair(defLo, defHi string) (string, string) {
	lo, hi := defLo, defHi
	if a.kind != ArgsNone && a.a != "" {
		lo = a.a
	}
	if a.kind == ArgsRange && a.b != "" {
		hi = a.b
	}
	return lo, hi
}

// Int returns the first value as an int, or def when absent or unparsable.
func (a Arguments) Int(def int) int {
	if a.kind == ArgsNone {
		return def
	}
	return parseInt(a.a, def)
}

// IntRange returns both values as ints, substituting defaults.
func (a Arguments) IntRange(defLo, defHi int) (int, int) {
	switch a.kind {
	case ArgsFixed:
		return parseInt(a.a, defLo), defHi
	case ArgsRange:
		return parseInt(a.a, defLo), parseInt(a.b, defHi)
	default:
		return defLo, defHi
	}
}

// FloatRange returns both values as floats, substituting defaults.
func (a Arguments) FloatRange(defLo, defHi float64) (float64, float64) {
	switch a.kind {
	case ArgsFixed:
		return parseFloat(a.a, defLo), defHi
	case ArgsRange:
		return parseFloat(a.a, defLo), parseFloat(a.b, defHi)
	default:
		return defLo, defHi
	}
}

// Time returns the first value as a time, or def when absent or unparsable.
func (a Arguments) Time(def time.Time) time.Time {
	if a.kind == ArgsNone {
		return def
	}
	return parseTime(a.a, def)
}

// TimeRange returns both values as times, substituting defaults.
func (a Arguments) TimeRange(defLo, defHi time.Time) (time.Time, time.Time) {
	switch a.kind {
	case ArgsFixed:
		return parseTime(a.a, defLo), defHi
	case ArgsRange:
		return parseTime(a.a, defLo), parseTime(a.b, defHi)
	default:
		return defLo, defHi
	}
}

func parseInt(s string, def int) int {
	if v, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		return v
	}
	return def
}

func parseFloat(s string, def float64) float64 {
	if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
		return v
	}
	return def
}

// timeLayouts are tried in order after RFC 3339.
var timeLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05.000Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.000",
	"2006-01-02T15:04:05.000",
	"2006-01-02",
}

func parseTime(s string, def time.Time) time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.UTC()
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC()
		}
	}
	// Unix seconds.
	if sec, err := strconv.ParseInt(s, 10, 64); err == nil {
		return time.Unix(sec, 0).UTC()
	}
	return def
}
