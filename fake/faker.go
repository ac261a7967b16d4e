package fake

import (
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"golang.org/x/text/language"

	"github.com/syssam/jgd"
)

// DefaultAnchor is the instant relative to which date and time values are
// generated. A fixed anchor keeps output independent of the wall clock.
var DefaultAnchor = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// method generates one value for a category.method key.
type method func(f *Faker, r *rand.Rand, c *catalog, args jgd.Arguments) (any, error)

// Faker is the built-in fake-data provider. It is safe for concurrent use:
// all randomness comes from the *rand.Rand passed to Generate.
type Faker struct {
	anchor  time.Time
	locale  *catalog
	matcher language.Matcher
}

// Option configures a Faker.
type Option func(*Faker)

// WithAnchor sets the reference instant for chrono values.
func WithAnchor(t time.Time) Option {
	return func(f *Faker) { f.anchor = t.UTC() }
}

// WithDefaultLocale sets the locale used when a run does not select one.
// Unsupported codes leave the default unchanged.
func WithDefaultLocale(code string) Option {
	return func(f *Faker) {
		if c, ok := f.lookup(code); ok {
			f.locale = c
		}
	}
}

// New returns a Faker. The default locale is EN.
func New(opts ...Option) *Faker {
	tags := make([]language.Tag, len(catalogs))
	for i, c := range catalogs {
		tags[i] = c.tag
	}
	f := &Faker{
		anchor:  DefaultAnchor,
		locale:  catalogs[0],
		matcher: language.NewMatcher(tags),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Generate produces the value of category.method. Keys the Faker does not
// know return an error wrapping jgd.ErrUnknownPattern.
func (f *Faker) Generate(r *rand.Rand, category, method string, args jgd.Arguments, locale string) (any, error) {
	key := category + "." + method
	m, ok := methods[key]
	if !ok {
		return nil, fmt.Errorf("fake: %s: %w", key, jgd.ErrUnknownPattern)
	}
	c := f.locale
	if locale != "" {
		if lc, ok := f.lookup(locale); ok {
			c = lc
		}
	}
	return m(f, r, c, args)
}

// Supports reports whether code names a locale with a catalog. Codes are
// matched case-insensitively and may use "_" or "-" as separator, so
// "FR_FR", "fr-FR" and "fr" all select the French catalog.
func (f *Faker) Supports(code string) bool {
	_, ok := f.lookup(code)
	return ok
}

// Locales returns the supported locale codes.
func (f *Faker) Locales() []string {
	codes := make([]string, len(catalogs))
	for i, c := range catalogs {
		codes[i] = c.code
	}
	return codes
}

// Keys returns every category.method key the Faker generates, sorted.
func (f *Faker) Keys() []string {
	return slices.Sorted(maps.Keys(methods))
}

func (f *Faker) lookup(code string) (*catalog, bool) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, false
	}
	for _, c := range catalogs {
		if strings.EqualFold(c.code, code) {
			return c, true
		}
	}
	tag, err := language.Parse(strings.ReplaceAll(code, "_", "-"))
	if err != nil {
		return nil, false
	}
	_, idx, conf := f.matcher.Match(tag)
	if conf < language.High {
		return nil, false
	}
	return catalogs[idx], true
}
