package gen

import (
	"math/rand/v2"

	"github.com/syssam/jgd"
	"github.com/syssam/jgd/fake"
)

// Provider produces realistic leaf values for category.method patterns such
// as ${name.firstName}. It draws all randomness from r so runs stay
// deterministic. Unknown keys are reported with an error matching
// jgd.ErrUnknownPattern.
type Provider interface {
	Generate(r *rand.Rand, category, method string, args jgd.Arguments, locale string) (any, error)
}

// LocaleCatalog reports whether a locale code is supported.
type LocaleCatalog interface {
	Supports(code string) bool
}

var (
	_ Provider      = (*fake.Faker)(nil)
	_ LocaleCatalog = (*fake.Faker)(nil)
)
