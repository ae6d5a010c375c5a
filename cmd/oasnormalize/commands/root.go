// Package commands provides the CLI commands of oasnormalize.
package commands

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/erraggy/oasnormalize/parser"
)

// NewRootCommand builds the oasnormalize command tree.
func NewRootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "oasnormalize",
		Short: "Normalize OpenAPI operations for client generation",
		Long: `oasnormalize reads an OpenAPI 2.0 or 3.x document and produces, for every
operation, the canonical parameter set a client generator needs: parameters
grouped by location, $ref'd query and form objects expanded into their
properties, JSON request bodies exploded into body fields, and the API version
parameter left out.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "write debug logs to stderr")

	logger := func(cmd *cobra.Command) parser.Logger {
		if !verbose {
			return parser.NopLogger{}
		}
		h := slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug})
		return parser.NewSlogAdapter(slog.New(h))
	}

	root.AddCommand(
		newNormalizeCommand(logger),
		newValidateCommand(logger),
		newMCPCommand(),
		newVersionCommand(),
	)
	return root
}

// loggerFunc returns the logger configured by the persistent flags.
type loggerFunc func(cmd *cobra.Command) parser.Logger
