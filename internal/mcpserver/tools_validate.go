package mcpserver

import (
	"context"
	"errors"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasnormalize/oaserrors"
	"github.com/erraggy/oasnormalize/validator"
)

type validateInput struct {
	Spec             specInput `json:"spec"                         jsonschema:"The OAS document to validate"`
	ValidateExamples bool      `json:"validate_examples,omitempty"  jsonschema:"Also validate example values against their schemas"`
	Offset           int       `json:"offset,omitempty"             jsonschema:"Skip the first N errors (for pagination)"`
	Limit            int       `json:"limit,omitempty"              jsonschema:"Maximum number of errors to return (default 50)"`
}

type validateIssue struct {
	Path    string `json:"path,omitempty"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

type validateOutput struct {
	Valid      bool            `json:"valid"`
	Version    string          `json:"version"`
	ErrorCount int             `json:"error_count"`
	Returned   int             `json:"returned"`
	Errors     []validateIssue `json:"errors,omitempty"`
}

func handleValidate(ctx context.Context, _ *mcp.CallToolRequest, input validateInput) (*mcp.CallToolResult, validateOutput, error) {
	parseResult, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	v := validator.New()
	v.ValidateExamples = input.ValidateExamples
	result, err := v.ValidateParsed(ctx, parseResult)
	if err != nil {
		return errResult(err), validateOutput{}, nil
	}

	output := validateOutput{
		Valid:      result.Valid,
		Version:    result.Version,
		ErrorCount: len(result.Errors),
	}
	output.Errors = makeSlice[validateIssue](len(result.Errors))
	for _, e := range result.Errors {
		output.Errors = append(output.Errors, toIssue(e))
	}
	output.Errors = paginate(output.Errors, input.Offset, input.Limit)
	output.Returned = len(output.Errors)

	return nil, output, nil
}

func toIssue(err error) validateIssue {
	var ve *oaserrors.ValidationError
	if errors.As(err, &ve) {
		msg := ve.Message
		if ve.Cause != nil {
			if msg != "" {
				msg += ": "
			}
			msg += ve.Cause.Error()
		}
		return validateIssue{Path: ve.Path, Field: ve.Field, Message: sanitizeMessage(msg)}
	}
	return validateIssue{Message: sanitizeError(err)}
}

func sanitizeMessage(msg string) string {
	return pathPattern.ReplaceAllString(msg, "<path>")
}
