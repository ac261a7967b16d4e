package gen

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/syssam/jgd"
)

// seedStream selects the PCG stream; the seed selects the state.
const seedStream = 0x9e3779b97f4a7c15

// NewRand returns the generator used for a seed. Two generators created with
// the same seed produce the same sequence.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seedStream))
}

// genContext is the state of one run. It is owned by a single goroutine.
type genContext struct {
	ctx      context.Context
	cfg      *Config
	rng      *rand.Rand
	keys     map[string]jgd.CustomKeyFunc
	provider Provider
	locale   string

	stack stack
	path  []string
	depth int
	nodes int

	// results holds the instances of completed top-level entities.
	results map[string][]any
}

func newGenContext(ctx context.Context, cfg *Config, seed uint64, locale string) *genContext {
	return &genContext{
		ctx:      ctx,
		cfg:      cfg,
		rng:      NewRand(seed),
		keys:     cfg.Registry.Snapshot(),
		provider: cfg.Provider,
		locale:   locale,
		results:  make(map[string][]any),
	}
}

func (g *genContext) pushPath(seg string) { g.path = append(g.path, seg) }

func (g *genContext) popPath() { g.path = g.path[:len(g.path)-1] }

// pathString renders the current location, e.g. "users[2].address.city".
func (g *genContext) pathString() string {
	var b strings.Builder
	for i, seg := range g.path {
		if i > 0 && !strings.HasPrefix(seg, "[") {
			b.WriteByte('.')
		}
		b.WriteString(seg)
	}
	return b.String()
}

func indexSeg(i int) string { return "[" + strconv.Itoa(i) + "]" }

// enter descends one nesting level.
func (g *genContext) enter() error {
	if g.depth >= g.cfg.MaxDepth {
		e := jgd.NewResourceError(jgd.ErrBudgetExceeded, g.cfg.MaxDepth, "nesting depth")
		e.Path = g.pathString()
		return e
	}
	g.depth++
	return nil
}

func (g *genContext) leave() { g.depth-- }

// consume accounts for n generated values.
func (g *genContext) consume(n int) error {
	if n > g.cfg.MaxNodes-g.nodes {
		e := jgd.NewResourceError(jgd.ErrBudgetExceeded, g.cfg.MaxNodes,
			fmt.Sprintf("node budget: %d generated, %d more requested", g.nodes, n))
		e.Path = g.pathString()
		return e
	}
	g.nodes += n
	return nil
}

// reserve fails when n more values cannot fit in the node budget. It does
// not consume anything.
func (g *genContext) reserve(n int) error {
	if n > g.cfg.MaxNodes-g.nodes {
		e := jgd.NewResourceError(jgd.ErrBudgetExceeded, g.cfg.MaxNodes,
			fmt.Sprintf("count %d exceeds the remaining node budget of %d", n, g.cfg.MaxNodes-g.nodes))
		e.Path = g.pathString()
		return e
	}
	return nil
}

// withPath sets the path of errors created without one.
func (g *genContext) withPath(err error) error {
	switch e := err.(type) {
	case *jgd.SpecError:
		if e.Path == "" {
			e.Path = g.pathString()
		}
	case *jgd.PatternError:
		if e.Path == "" {
			e.Path = g.pathString()
		}
	case *jgd.ReferenceError:
		if e.Path == "" {
			e.Path = g.pathString()
		}
	}
	return err
}
