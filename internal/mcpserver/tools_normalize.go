package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasnormalize/normalizer"
)

type normalizeInput struct {
	Spec          specInput `json:"spec"                     jsonschema:"The OAS document to normalize"`
	Service       string    `json:"service,omitempty"        jsonschema:"Only return operations of this service, e.g. Pets for the tag pets"`
	VersionMarker *string   `json:"version_marker,omitempty" jsonschema:"Name of the API version parameter to leave out. Empty keeps every parameter."`
	StripHTML     *bool     `json:"strip_html,omitempty"     jsonschema:"Strip HTML from summaries and descriptions"`
	Validate      *bool     `json:"validate,omitempty"       jsonschema:"Validate the document before normalizing"`
	Offset        int       `json:"offset,omitempty"         jsonschema:"Skip the first N operations (for pagination)"`
	Limit         int       `json:"limit,omitempty"          jsonschema:"Maximum number of operations to return (default 50)"`
}

// paramSummary is a flat view of one parameter. Models are recursive, so
// only the type descriptor is returned.
type paramSummary struct {
	Name      string `json:"name"`
	Prop      string `json:"prop"`
	In        string `json:"in"`
	Type      string `json:"type"`
	Required  bool   `json:"required,omitempty"`
	MediaType string `json:"media_type,omitempty"`
}

type resultSummary struct {
	Code int    `json:"code"`
	In   string `json:"in"`
	Type string `json:"type"`
}

type operationSummary struct {
	Service      string          `json:"service"`
	Name         string          `json:"name"`
	Method       string          `json:"method"`
	Path         string          `json:"path"`
	Summary      string          `json:"summary,omitempty"`
	Deprecated   bool            `json:"deprecated,omitempty"`
	Parameters   []paramSummary  `json:"parameters,omitempty"`
	Body         *paramSummary   `json:"body,omitempty"`
	BodyExpanded []paramSummary  `json:"body_expanded,omitempty"`
	Results      []resultSummary `json:"results,omitempty"`
	ErrorCodes   []int           `json:"error_codes,omitempty"`
	Imports      []string        `json:"imports,omitempty"`
}

type normalizeOutput struct {
	Version        string             `json:"version"`
	ServiceCount   int                `json:"service_count"`
	OperationCount int                `json:"operation_count"`
	Matched        int                `json:"matched"`
	Returned       int                `json:"returned"`
	Operations     []operationSummary `json:"operations,omitempty"`
	Warnings       []string           `json:"warnings,omitempty"`
}

func handleNormalize(ctx context.Context, _ *mcp.CallToolRequest, input normalizeInput) (*mcp.CallToolResult, normalizeOutput, error) {
	// Apply config defaults when input fields are omitted (nil).
	marker := cfg.VersionMarker
	if input.VersionMarker != nil {
		marker = *input.VersionMarker
	}
	stripHTML := cfg.StripHTML
	if input.StripHTML != nil {
		stripHTML = *input.StripHTML
	}
	validate := cfg.Validate
	if input.Validate != nil {
		validate = *input.Validate
	}

	parseResult, err := input.Spec.resolve()
	if err != nil {
		return errResult(err), normalizeOutput{}, nil
	}

	result, err := normalizer.NormalizeWithOptions(ctx,
		normalizer.WithParsed(parseResult),
		normalizer.WithVersionMarker(marker),
		normalizer.WithStripHTML(stripHTML),
		normalizer.WithValidation(validate),
	)
	if err != nil {
		return errResult(err), normalizeOutput{}, nil
	}

	output := normalizeOutput{
		Version:        result.Version,
		ServiceCount:   len(result.Services),
		OperationCount: result.OperationCount,
		Warnings:       result.Warnings,
	}

	var matched []*normalizer.Operation
	for _, op := range result.Operations() {
		if input.Service != "" && op.Service != input.Service {
			continue
		}
		matched = append(matched, op)
	}
	output.Matched = len(matched)

	page := paginate(matched, input.Offset, input.Limit)
	output.Operations = makeSlice[operationSummary](len(page))
	for _, op := range page {
		output.Operations = append(output.Operations, summarizeOperation(op))
	}
	output.Returned = len(output.Operations)

	return nil, output, nil
}

func summarizeOperation(op *normalizer.Operation) operationSummary {
	s := operationSummary{
		Service:    op.Service,
		Name:       op.Name,
		Method:     op.Method,
		Path:       op.Path,
		Summary:    op.Summary,
		Deprecated: op.Deprecated,
		Imports:    op.Imports,
	}
	s.Parameters = makeSlice[paramSummary](len(op.All))
	for _, p := range op.All {
		s.Parameters = append(s.Parameters, summarizeParam(p))
	}
	if op.Body != nil {
		body := summarizeParam(op.Body)
		if body.MediaType == "" {
			body.MediaType = op.BodyMediaType
		}
		s.Body = &body
	}
	s.BodyExpanded = makeSlice[paramSummary](len(op.BodyExpanded))
	for _, p := range op.BodyExpanded {
		s.BodyExpanded = append(s.BodyExpanded, summarizeParam(p))
	}
	s.Results = makeSlice[resultSummary](len(op.Results))
	for _, r := range op.Results {
		s.Results = append(s.Results, resultSummary{Code: r.Code, In: r.In, Type: r.Type})
	}
	s.ErrorCodes = makeSlice[int](len(op.Errors))
	for _, e := range op.Errors {
		s.ErrorCodes = append(s.ErrorCodes, e.Code)
	}
	return s
}

func summarizeParam(p *normalizer.Parameter) paramSummary {
	return paramSummary{
		Name:      p.Name,
		Prop:      p.Prop,
		In:        string(p.In),
		Type:      p.Type,
		Required:  p.IsRequired,
		MediaType: p.MediaType,
	}
}
