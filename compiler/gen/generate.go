package gen

import (
	"context"
	"math/rand/v2"
	"strconv"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/syssam/jgd"
	"github.com/syssam/jgd/schema"
)

// Result is the outcome of a run.
type Result struct {
	// Value is the generated document: a *jgd.Object, or a []any for a
	// counted root entity.
	Value any
	// Seed is the seed the run used, drawn at random when neither the
	// options nor the document set one.
	Seed uint64
	// Nodes is the number of values generated.
	Nodes int
}

// Generate runs s and returns the generated document.
func Generate(ctx context.Context, s *schema.Schema, opts ...Option) (any, error) {
	res, err := Run(ctx, s, opts...)
	if err != nil {
		return nil, err
	}
	return res.Value, nil
}

// Run validates s and generates one document. A run is single-threaded and
// deterministic: the same schema, seed and registry contents produce the same
// document. The first error aborts the run and no partial document is
// returned.
func Run(ctx context.Context, s *schema.Schema, opts ...Option) (*Result, error) {
	cfg, err := NewConfig(opts...)
	if err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	seed := runSeed(cfg, s)
	log := cfg.logger()
	ctx, span := cfg.tracer().Start(ctx, spanGenerate, trace.WithAttributes(
		attribute.String(attrSeed, strconv.FormatUint(seed, 10)),
	))
	defer span.End()

	start := time.Now()
	g := newGenContext(ctx, cfg, seed, runLocale(cfg, s))
	v, err := g.schema(s)
	span.SetAttributes(attribute.Int(attrNodes, g.nodes))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.DebugContext(ctx, "generation failed", "seed", seed, "nodes", g.nodes, "error", err)
		return nil, err
	}
	log.DebugContext(ctx, "generated document",
		"seed", seed,
		"nodes", g.nodes,
		"duration", time.Since(start),
	)
	return &Result{Value: v, Seed: seed, Nodes: g.nodes}, nil
}

func runSeed(cfg *Config, s *schema.Schema) uint64 {
	switch {
	case cfg.Seed != nil:
		return *cfg.Seed
	case s.Seed != nil:
		return *s.Seed
	default:
		return rand.Uint64()
	}
}

// runLocale picks the locale of the run. An unsupported locale falls back to
// the provider default with a warning.
func runLocale(cfg *Config, s *schema.Schema) string {
	locale := s.DefaultLocale
	if cfg.Locale != "" {
		locale = cfg.Locale
	}
	if locale != "" && cfg.Catalog != nil && !cfg.Catalog.Supports(locale) {
		cfg.logger().Warn("unsupported locale, using provider default", "locale", locale)
		return ""
	}
	return locale
}

// schema generates the root entity, or each named entity in order.
func (g *genContext) schema(s *schema.Schema) (any, error) {
	if s.Root != nil {
		g.pushPath(s.Root.Name)
		defer g.popPath()
		return g.entity(s.Root, "")
	}
	out := jgd.NewObject(s.Entities.Len())
	for name, e := range s.Entities.All() {
		v, err := g.topLevel(name, e)
		if err != nil {
			return nil, err
		}
		out.Set(name, v)
		g.results[name] = pool(v)
	}
	return out, nil
}

func (g *genContext) topLevel(name string, e *schema.Entity) (any, error) {
	ctx, span := g.cfg.tracer().Start(g.ctx, spanEntity, trace.WithAttributes(
		attribute.String(attrEntity, name),
	))
	defer span.End()
	parent := g.ctx
	g.ctx = ctx
	defer func() { g.ctx = parent }()

	g.pushPath(name)
	defer g.popPath()
	before := g.nodes
	v, err := g.entity(e, name)
	span.SetAttributes(attribute.Int(attrNodes, g.nodes-before))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return v, err
}
