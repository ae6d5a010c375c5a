package commands

import (
	"github.com/spf13/cobra"

	"github.com/erraggy/oasnormalize"
)

func newVersionCommand() *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			if verbose {
				Writef(cmd.OutOrStdout(), "oasnormalize\n%s\n", oasnormalize.BuildInfo())
				return
			}
			Writef(cmd.OutOrStdout(), "oasnormalize v%s\n", oasnormalize.Version())
		},
	}
	cmd.Flags().BoolVar(&verbose, "build-info", false, "print commit, build time and Go version")
	return cmd
}
