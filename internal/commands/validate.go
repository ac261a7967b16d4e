package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/syssam/jgd/compiler/load"
)

func newValidateCmd(g *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a schema without generating",
		Long: `Load and validate a schema: document shape, field specs, count and number
ranges, placeholder syntax and references.`,
		Example: `  jgd validate users.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, g, args[0])
		},
	}

	return cmd
}

func runValidate(cmd *cobra.Command, g *globalOptions, path string) error {
	s, err := load.File(path)
	if err != nil {
		return err
	}
	if err := s.Validate(); err != nil {
		return err
	}
	g.logger(cmd.ErrOrStderr()).DebugContext(cmd.Context(), "schema is valid", "schema", path)

	out := cmd.OutOrStdout()
	if s.Root != nil {
		_, err = fmt.Fprintf(out, "%s: ok (root, %d fields)\n", path, len(s.Root.Fields))
		return err
	}
	_, err = fmt.Fprintf(out, "%s: ok (entities: %s)\n", path, strings.Join(s.Entities.Names(), ", "))
	return err
}
