package gen

import (
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/syssam/jgd"
	"github.com/syssam/jgd/fake"
)

// Defaults for the run budgets.
const (
	DefaultMaxDepth          = 64
	DefaultMaxNodes          = 1_000_000
	DefaultMaxUniqueAttempts = 1000
)

// Config holds the settings of a generation run.
type Config struct {
	// Seed overrides the schema seed when set.
	Seed *uint64
	// Registry supplies custom keys. It is snapshotted when a run starts.
	Registry *jgd.Registry
	// Provider resolves category.method patterns.
	Provider Provider
	// Catalog reports which locales Provider supports.
	Catalog LocaleCatalog
	// Locale overrides the schema defaultLocale when set.
	Locale string
	// MaxDepth bounds entity and array nesting.
	MaxDepth int
	// MaxNodes bounds the number of generated values.
	MaxNodes int
	// MaxUniqueAttempts bounds retries of unique_by entities per instance.
	MaxUniqueAttempts int
	// Logger receives run diagnostics.
	Logger *slog.Logger
	// TracerProvider creates the run spans.
	TracerProvider trace.TracerProvider
}

// Option configures a generation run.
type Option func(*Config) error

// WithSeed fixes the seed of the run, overriding the document seed.
func WithSeed(seed uint64) Option {
	return func(c *Config) error {
		c.Seed = &seed
		return nil
	}
}

// WithRegistry sets the custom-key registry. Defaults to jgd.DefaultRegistry.
func WithRegistry(r *jgd.Registry) Option {
	return func(c *Config) error {
		if r == nil {
			return NewConfigError("Registry", nil, "registry cannot be nil")
		}
		c.Registry = r
		return nil
	}
}

// WithProvider sets the fake-data provider. If p also implements
// LocaleCatalog it becomes the catalog as well.
func WithProvider(p Provider) Option {
	return func(c *Config) error {
		if p == nil {
			return NewConfigError("Provider", nil, "provider cannot be nil")
		}
		c.Provider = p
		if cat, ok := p.(LocaleCatalog); ok {
			c.Catalog = cat
		}
		return nil
	}
}

// WithLocaleCatalog sets the catalog consulted before a locale is used.
func WithLocaleCatalog(cat LocaleCatalog) Option {
	return func(c *Config) error {
		if cat == nil {
			return NewConfigError("Catalog", nil, "catalog cannot be nil")
		}
		c.Catalog = cat
		return nil
	}
}

// WithLocale overrides the document defaultLocale.
func WithLocale(code string) Option {
	return func(c *Config) error {
		if code == "" {
			return NewConfigError("Locale", nil, "locale cannot be empty")
		}
		c.Locale = code
		return nil
	}
}

// WithMaxDepth bounds entity and array nesting.
func WithMaxDepth(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("MaxDepth", n, "must be positive")
		}
		c.MaxDepth = n
		return nil
	}
}

// WithMaxNodes bounds the number of generated values.
func WithMaxNodes(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("MaxNodes", n, "must be positive")
		}
		c.MaxNodes = n
		return nil
	}
}

// WithMaxUniqueAttempts bounds unique_by retries.
func WithMaxUniqueAttempts(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("MaxUniqueAttempts", n, "must be positive")
		}
		c.MaxUniqueAttempts = n
		return nil
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// WithTracerProvider sets the OpenTelemetry tracer provider. Defaults to the
// global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *Config) error {
		if tp == nil {
			return NewConfigError("TracerProvider", nil, "tracer provider cannot be nil")
		}
		c.TracerProvider = tp
		return nil
	}
}

// ApplyAll applies every option, including those after a failing one, and
// returns the joined errors.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with defaults and the given options. All
// invalid options are reported together.
func NewConfig(opts ...Option) (*Config, error) {
	faker := fake.New()
	c := &Config{
		Registry:          jgd.DefaultRegistry,
		Provider:          faker,
		Catalog:           faker,
		MaxDepth:          DefaultMaxDepth,
		MaxNodes:          DefaultMaxNodes,
		MaxUniqueAttempts: DefaultMaxUniqueAttempts,
	}
	if err := c.ApplyAll(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c *Config) tracer() trace.Tracer {
	tp := c.TracerProvider
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	return tp.Tracer(tracerName)
}
