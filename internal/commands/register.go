// Package commands contains all CLI command definitions.
package commands

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// Environment variables read by the commands.
const (
	envDSN      = "JGD_DSN"
	envRedisURL = "JGD_REDIS_URL"
	envLogLevel = "JGD_LOG_LEVEL"
)

// globalOptions are shared by every command.
type globalOptions struct {
	getenv  func(string) string
	verbose bool
}

// logger returns a text logger writing to w. --verbose, or JGD_LOG_LEVEL=debug,
// lowers the level to debug. An unparsable JGD_LOG_LEVEL keeps info and is
// reported as a warning.
func (g *globalOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	var invalid string
	if g.verbose {
		level = slog.LevelDebug
	} else if v := g.getenv(envLogLevel); v != "" {
		if err := level.UnmarshalText([]byte(v)); err != nil {
			level, invalid = slog.LevelInfo, v
		}
	}
	log := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	if invalid != "" {
		log.Warn("invalid log level, using info", "env", envLogLevel, "value", invalid)
	}
	return log
}

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd(getenv func(string) string) *cobra.Command {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	g := &globalOptions{getenv: getenv}
	rootCmd := &cobra.Command{
		Use:   "jgd",
		Short: "Generate JSON documents from declarative schemas",
		Long: `jgd generates fake JSON documents from a JSON or YAML schema.

A schema declares a root entity or a set of named entities. Field values are
literals, templates with ${...} placeholders, number ranges, arrays, optional
values, nested entities or references to previously generated entities.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Enable debug logging")

	registerGenerateCmd(rootCmd, g)
	registerValidateCmd(rootCmd, g)
	registerSeedCmd(rootCmd, g)
	registerPushCmd(rootCmd, g)
	registerKeysCmd(rootCmd)

	return rootCmd
}

func registerGenerateCmd(parent *cobra.Command, g *globalOptions) {
	parent.AddCommand(newGenerateCmd(g))
}

func registerValidateCmd(parent *cobra.Command, g *globalOptions) {
	parent.AddCommand(newValidateCmd(g))
}

func registerSeedCmd(parent *cobra.Command, g *globalOptions) {
	parent.AddCommand(newSeedCmd(g))
}

func registerPushCmd(parent *cobra.Command, g *globalOptions) {
	parent.AddCommand(newPushCmd(g))
}

func registerKeysCmd(parent *cobra.Command) {
	parent.AddCommand(newKeysCmd())
}
