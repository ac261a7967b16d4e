package schema

import "strconv"

// Count is a repetition count: either a fixed n or an inclusive range.
type Count struct {
	Min   int
	Max   int
	Fixed bool
}

// FixedCount returns a count of exactly n.
func FixedCount(n int) Count { return Count{Min: n, Max: n, Fixed: true} }

// RangeCount returns a count drawn uniformly from [min, max].
func RangeCount(lo, hi int) Count { return Count{Min: lo, Max: hi} }

// String renders the count the way documents write it.
func (c Count) String() string {
	if c.Fixed {
		return strconv.Itoa(c.Min)
	}
	return "[" + strconv.Itoa(c.Min) + "," + strconv.Itoa(c.Max) + "]"
}
