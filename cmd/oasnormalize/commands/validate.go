package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/erraggy/oasnormalize/parser"
	"github.com/erraggy/oasnormalize/validator"
)

// ValidateFlags contains flags for the validate command
type ValidateFlags struct {
	Format           string
	ValidateExamples bool
}

type validateReport struct {
	Valid   bool     `json:"valid" yaml:"valid"`
	Version string   `json:"version" yaml:"version"`
	Errors  []string `json:"errors,omitempty" yaml:"errors,omitempty"`
}

func newValidateCommand(logger loggerFunc) *cobra.Command {
	flags := &ValidateFlags{}

	cmd := &cobra.Command{
		Use:   "validate [flags] <file>",
		Short: "Validate an OpenAPI document",
		Example: `  oasnormalize validate openapi.yaml
  oasnormalize validate --format json swagger.json | jq '.valid'`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(_ *cobra.Command, _ []string) error {
			return ValidateOutputFormat(flags.Format, FormatText, FormatJSON, FormatYAML)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger(cmd)
			pr, err := parser.ParseWithOptions(parser.WithFilePath(args[0]), parser.WithLogger(log))
			if err != nil {
				return err
			}
			v := validator.New()
			v.ValidateExamples = flags.ValidateExamples
			v.Logger = log
			result, err := v.ValidateParsed(cmd.Context(), pr)
			if err != nil {
				return err
			}

			report := validateReport{Valid: result.Valid, Version: result.Version}
			for _, e := range result.Errors {
				report.Errors = append(report.Errors, e.Error())
			}

			out := cmd.OutOrStdout()
			if flags.Format == FormatText {
				Writef(out, "Specification: %s\n", args[0])
				Writef(out, "OAS Version: %s\n", result.Version)
				for _, e := range report.Errors {
					Writef(out, "  - %s\n", e)
				}
				if result.Valid {
					Writef(out, "\n✓ Validation passed\n")
				}
			} else {
				data, err := MarshalStructured(report, flags.Format)
				if err != nil {
					return err
				}
				if _, err := out.Write(data); err != nil {
					return err
				}
			}

			if !result.Valid {
				return fmt.Errorf("validation failed with %d error(s)", len(result.Errors))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.Format, "format", "f", FormatText, "output format: text, json, or yaml")
	cmd.Flags().BoolVar(&flags.ValidateExamples, "validate-examples", false, "also validate example values against their schemas")
	return cmd
}
