package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/syssam/jgd/dialect/redis"
)

type pushOptions struct {
	runFlags
	addr    string
	prefix  string
	list    string
	replace bool
}

func newPushCmd(g *globalOptions) *cobra.Command {
	opts := &pushOptions{}

	cmd := &cobra.Command{
		Use:   "push FILE",
		Short: "Generate a document and push it to Redis lists",
		Long: fmt.Sprintf(`Generate a document and push it to Redis lists.

Every entity is pushed to the list <prefix><entity>, one JSON element per
instance, and its name is added to the set <prefix>%s. Lists are appended to
unless --replace is set.

The address defaults to $%s, then to localhost:6379.`, redis.EntitiesKey, envRedisURL),
		Example: `  # Push to a local Redis
  jgd push shop.yaml --prefix shop:

  # Replace existing lists on a remote database
  jgd push shop.yaml --redis-addr redis://cache:6379/2 --replace`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPush(cmd, g, args[0], opts)
		},
	}

	addRunFlags(cmd, &opts.runFlags)
	cmd.Flags().StringVar(&opts.addr, "redis-addr", "", "Redis URL or host:port")
	cmd.Flags().StringVar(&opts.prefix, "prefix", "", "Prefix of every key")
	cmd.Flags().StringVar(&opts.list, "list", "", "Entity name of a root document (default the root entity name)")
	cmd.Flags().BoolVar(&opts.replace, "replace", false, "Delete existing lists before pushing")

	return cmd
}

func runPush(cmd *cobra.Command, g *globalOptions, path string, opts *pushOptions) (rerr error) {
	log := g.logger(cmd.ErrOrStderr())
	ctx := cmd.Context()
	s, res, err := generateFile(ctx, path, opts.options(cmd, log))
	if err != nil {
		return err
	}

	addr := opts.addr
	if addr == "" {
		addr = g.getenv(envRedisURL)
	}
	sink, err := redis.New(redis.Options{
		URL:     addr,
		Prefix:  opts.prefix,
		Replace: opts.replace,
		Logger:  log,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := sink.Close(); err != nil && rerr == nil {
			rerr = err
		}
	}()

	pushed, err := sink.Push(ctx, res.Value, rootName(s, opts.list))
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "KEY\tELEMENTS")
	total := 0
	for _, key := range pushed.Keys {
		_, _ = fmt.Fprintf(w, "%s\t%d\n", key, pushed.Counts[key])
		total += pushed.Counts[key]
	}
	_, _ = fmt.Fprintf(w, "\nPushed %d element(s) with seed %d\n", total, res.Seed)
	return w.Flush()
}
