package gen

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/jgd/schema"
)

// GenerateMany runs s once per seed, in parallel, and returns the documents
// in seed order. Each run owns its own random stream, so the result for a
// seed is the same as a lone Run with that seed.
func GenerateMany(ctx context.Context, s *schema.Schema, seeds []uint64, opts ...Option) ([]any, error) {
	// Fail once on bad options or an invalid schema instead of once per run.
	if _, err := NewConfig(opts...); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	out := make([]any, len(seeds))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, seed := range seeds {
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			runOpts := append(opts[:len(opts):len(opts)], WithSeed(seed))
			v, err := Generate(ctx, s, runOpts...)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
