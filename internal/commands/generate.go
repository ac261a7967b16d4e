package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"

	"github.com/spf13/cobra"

	"github.com/syssam/jgd/compiler/fixture"
	"github.com/syssam/jgd/compiler/gen"
	"github.com/syssam/jgd/compiler/load"
	"github.com/syssam/jgd/output"
)

// formatGo renders the document as a Go source fixture.
const formatGo = "go"

type generateOptions struct {
	runFlags
	output  string
	format  string
	pretty  bool
	indent  int
	pkg     string
	varName string
	runs    int
	watch   bool
}

func newGenerateCmd(g *globalOptions) *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate FILE",
		Short: "Generate a document from a schema",
		Long: `Generate a document from a JSON or YAML schema.

Available formats: json, yaml, msgpack, go.`,
		Example: `  # Print a document
  jgd generate users.yaml --pretty

  # Reproduce a document
  jgd generate users.yaml --seed 42 -o users.json

  # Generate five documents, seeded 42 to 46
  jgd generate users.yaml --seed 42 --runs 5

  # Write a Go fixture
  jgd generate users.yaml --format go --package testdata --var Users -o testdata/users.go

  # Regenerate on every change of the schema
  jgd generate users.yaml -o users.json --watch`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, g, args[0], opts)
		},
	}

	addRunFlags(cmd, &opts.runFlags)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default stdout)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "json", "Output format (json, yaml, msgpack, go)")
	cmd.Flags().BoolVarP(&opts.pretty, "pretty", "p", false, "Indent JSON output")
	cmd.Flags().IntVar(&opts.indent, "indent", 2, "Indentation width of pretty JSON and YAML")
	cmd.Flags().StringVar(&opts.pkg, "package", fixture.DefaultPackage, "Package name of Go output")
	cmd.Flags().StringVar(&opts.varName, "var", fixture.DefaultVar, "Variable name of Go output")
	cmd.Flags().IntVar(&opts.runs, "runs", 1, "Number of documents, generated in parallel with consecutive seeds")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "Regenerate whenever the schema changes")

	return cmd
}

func runGenerate(cmd *cobra.Command, g *globalOptions, path string, opts *generateOptions) error {
	if opts.runs < 1 {
		return fmt.Errorf("--runs must be at least 1, got %d", opts.runs)
	}
	if opts.format != formatGo {
		if _, err := output.ParseFormat(opts.format); err != nil {
			return err
		}
	}
	log := g.logger(cmd.ErrOrStderr())
	ctx := cmd.Context()
	once := func() error {
		return generateOnce(ctx, cmd, log, path, opts)
	}
	if opts.watch {
		return watch(ctx, log, path, once)
	}
	return once()
}

func generateOnce(ctx context.Context, cmd *cobra.Command, log *slog.Logger, path string, opts *generateOptions) error {
	genOpts := opts.options(cmd, log)
	var (
		doc  any
		seed uint64
	)
	if opts.runs == 1 {
		_, res, err := generateFile(ctx, path, genOpts)
		if err != nil {
			return err
		}
		doc, seed = res.Value, res.Seed
	} else {
		s, err := load.File(path)
		if err != nil {
			return err
		}
		switch {
		case cmd.Flags().Changed("seed"):
			seed = opts.seed
		case s.Seed != nil:
			seed = *s.Seed
		default:
			seed = rand.Uint64()
		}
		seeds := make([]uint64, opts.runs)
		for i := range seeds {
			seeds[i] = seed + uint64(i)
		}
		docs, err := gen.GenerateMany(ctx, s, seeds, genOpts...)
		if err != nil {
			return err
		}
		doc = docs
	}

	data, err := opts.encode(doc, seed)
	if err != nil {
		return err
	}
	if err := write(cmd.OutOrStdout(), opts.output, data); err != nil {
		return err
	}
	log.InfoContext(ctx, "generated document", "schema", path, "seed", seed, "runs", opts.runs, "output", opts.output)
	return nil
}

func (o *generateOptions) encode(doc any, seed uint64) ([]byte, error) {
	if o.format == formatGo {
		return fixture.Source(doc, fixture.Options{Package: o.pkg, Var: o.varName, Seed: &seed})
	}
	f, err := output.ParseFormat(o.format)
	if err != nil {
		return nil, err
	}
	encOpts := []output.Option{output.Indent(o.indent)}
	if o.pretty {
		encOpts = append(encOpts, output.Pretty())
	}
	return output.Marshal(f, doc, encOpts...)
}

// write writes data to path, or to w when path is empty.
func write(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
