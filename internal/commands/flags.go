package commands

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/syssam/jgd/compiler/gen"
	"github.com/syssam/jgd/compiler/load"
	"github.com/syssam/jgd/schema"
)

// runFlags are the generation flags shared by generate, seed and push.
type runFlags struct {
	seed     uint64
	locale   string
	maxDepth int
	maxNodes int
}

func addRunFlags(cmd *cobra.Command, f *runFlags) {
	cmd.Flags().Uint64Var(&f.seed, "seed", 0, "Seed of the run, overriding the schema seed")
	cmd.Flags().StringVar(&f.locale, "locale", "", "Locale of fake data, overriding the schema defaultLocale")
	cmd.Flags().IntVar(&f.maxDepth, "max-depth", gen.DefaultMaxDepth, "Maximum entity and array nesting")
	cmd.Flags().IntVar(&f.maxNodes, "max-nodes", gen.DefaultMaxNodes, "Maximum number of generated values")
}

func (f *runFlags) options(cmd *cobra.Command, log *slog.Logger) []gen.Option {
	opts := []gen.Option{
		gen.WithMaxDepth(f.maxDepth),
		gen.WithMaxNodes(f.maxNodes),
		gen.WithLogger(log),
	}
	if cmd.Flags().Changed("seed") {
		opts = append(opts, gen.WithSeed(f.seed))
	}
	if f.locale != "" {
		opts = append(opts, gen.WithLocale(f.locale))
	}
	return opts
}

// generateFile loads path and runs it once.
func generateFile(ctx context.Context, path string, opts []gen.Option) (*schema.Schema, *gen.Result, error) {
	s, err := load.File(path)
	if err != nil {
		return nil, nil, err
	}
	res, err := gen.Run(ctx, s, opts...)
	if err != nil {
		return nil, nil, err
	}
	return s, res, nil
}

// rootName returns the table or list name of a root document: name when set,
// otherwise the root entity name. It returns "" for entities documents.
func rootName(s *schema.Schema, name string) string {
	if s.Root == nil {
		return ""
	}
	if name != "" {
		return name
	}
	return s.Root.Name
}
