package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syssam/jgd"
	"github.com/syssam/jgd/fake"
)

type keysOptions struct {
	locales bool
}

func newKeysCmd() *cobra.Command {
	opts := &keysOptions{}

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "List the placeholder keys available in templates",
		Long: `List the category.method keys of the built-in fake data provider, followed
by the custom keys registered in this binary.`,
		Example: `  # List keys
  jgd keys

  # List supported locales
  jgd keys --locales`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.locales, "locales", false, "List supported locales instead of keys")

	return cmd
}

func runKeys(cmd *cobra.Command, opts *keysOptions) error {
	out := cmd.OutOrStdout()
	f := fake.New()
	if opts.locales {
		for _, code := range f.Locales() {
			if _, err := fmt.Fprintln(out, code); err != nil {
				return err
			}
		}
		return nil
	}
	for _, key := range f.Keys() {
		if _, err := fmt.Fprintln(out, key); err != nil {
			return err
		}
	}
	custom := jgd.DefaultRegistry.Keys()
	if len(custom) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(out, "\n# custom"); err != nil {
		return err
	}
	for _, key := range custom {
		if _, err := fmt.Fprintln(out, key); err != nil {
			return err
		}
	}
	return nil
}
