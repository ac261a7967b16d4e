package gen

import (
	"fmt"
	"math/rand/v2"

	"github.com/syssam/jgd"
	"github.com/syssam/jgd/schema"
)

// ResolveCount returns the number of repetitions for c. Fixed counts and
// ranges with equal bounds never draw from r; other ranges draw one
// inclusive uniform integer.
func ResolveCount(c schema.Count, r *rand.Rand) (int, error) {
	if c.Min < 0 || c.Max < 0 {
		return 0, jgd.NewSpecError("", jgd.ErrInvalidRange, fmt.Sprintf("negative count %s", c))
	}
	if c.Fixed {
		return c.Min, nil
	}
	switch {
	case c.Min > c.Max:
		return 0, jgd.NewSpecError("", jgd.ErrInvalidRange, fmt.Sprintf("count min %d > max %d", c.Min, c.Max))
	case c.Min == c.Max:
		return c.Min, nil
	default:
		return c.Min + r.IntN(c.Max-c.Min+1), nil
	}
}
