package commands

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/erraggy/oasnormalize/internal/watch"
	"github.com/erraggy/oasnormalize/normalizer"
	"github.com/erraggy/oasnormalize/parser"
)

// NormalizeFlags contains flags for the normalize command
type NormalizeFlags struct {
	Format        string
	Output        string
	VersionMarker string
	StripHTML     bool
	Validate      bool
	Watch         bool
	Debounce      time.Duration
}

func newNormalizeCommand(logger loggerFunc) *cobra.Command {
	flags := &NormalizeFlags{}

	cmd := &cobra.Command{
		Use:   "normalize [flags] <file>",
		Short: "Normalize the operations of an OpenAPI document",
		Example: `  oasnormalize normalize openapi.yaml
  oasnormalize normalize --format yaml -o operations.yaml swagger.json
  oasnormalize normalize --version-marker "" openapi.yaml
  oasnormalize normalize --watch -o operations.json openapi.yaml`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return ValidateOutputFormat(flags.Format, FormatJSON, FormatYAML)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			run := func(ctx context.Context) error {
				return runNormalize(ctx, cmd.OutOrStdout(), args[0], flags, logger(cmd))
			}
			if !flags.Watch {
				return run(cmd.Context())
			}
			if flags.Output == "" {
				return fmt.Errorf("--watch requires --output")
			}
			if err := run(cmd.Context()); err != nil {
				Writef(cmd.ErrOrStderr(), "Error: %v\n", err)
			}
			w, err := watch.New(args[0], flags.Debounce, logger(cmd))
			if err != nil {
				return err
			}
			defer func() { _ = w.Close() }()
			Writef(cmd.ErrOrStderr(), "Watching %s for changes\n", args[0])
			return w.Run(cmd.Context(), run)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.Format, "format", "f", FormatJSON, "output format: json or yaml")
	f.StringVarP(&flags.Output, "output", "o", "", "write output to a file instead of stdout")
	f.StringVar(&flags.VersionMarker, "version-marker", normalizer.DefaultVersionMarker, "name of the API version parameter to leave out; empty keeps every parameter")
	f.BoolVar(&flags.StripHTML, "strip-html", false, "strip HTML from summaries and descriptions")
	f.BoolVar(&flags.Validate, "validate", false, "validate the document before normalizing")
	f.BoolVarP(&flags.Watch, "watch", "w", false, "re-run whenever the input file changes")
	f.DurationVar(&flags.Debounce, "debounce", watch.DefaultDebounce, "quiet period before a change triggers a re-run")
	return cmd
}

func runNormalize(ctx context.Context, stdout io.Writer, input string, flags *NormalizeFlags, log parser.Logger) error {
	result, err := normalizer.NormalizeWithOptions(ctx,
		normalizer.WithFilePath(input),
		normalizer.WithVersionMarker(flags.VersionMarker),
		normalizer.WithStripHTML(flags.StripHTML),
		normalizer.WithValidation(flags.Validate),
		normalizer.WithLogger(log),
	)
	if err != nil {
		return err
	}
	for _, w := range result.Warnings {
		log.Warn(w)
	}

	data, err := MarshalStructured(result, flags.Format)
	if err != nil {
		return err
	}
	if err := WriteOutput(stdout, flags.Output, input, data); err != nil {
		return err
	}
	log.Info("normalized document",
		"source", result.SourcePath,
		"services", len(result.Services),
		"operations", result.OperationCount)
	return nil
}
