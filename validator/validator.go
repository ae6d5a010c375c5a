package validator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/getkin/kin-openapi/openapi2"
	"github.com/getkin/kin-openapi/openapi2conv"
	"github.com/getkin/kin-openapi/openapi3"
	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasnormalize/oaserrors"
	"github.com/erraggy/oasnormalize/parser"
)

// ValidationResult contains the outcome of validating one document.
type ValidationResult struct {
	// Valid is true when no errors were found
	Valid bool
	// Version is the declared OAS version string
	Version string
	// OASVersion is the enumerated OAS version
	OASVersion parser.OASVersion
	// SourcePath is the document's source path
	SourcePath string
	// Errors holds one *oaserrors.ValidationError per problem
	Errors []error
}

// Err joins Errors into a single error, or returns nil when the document is
// valid.
func (r *ValidationResult) Err() error {
	if r == nil || r.Valid {
		return nil
	}
	return &oaserrors.ValidationError{
		Path:    r.SourcePath,
		Message: fmt.Sprintf("document has %d validation error(s)", len(r.Errors)),
		Cause:   errors.Join(r.Errors...),
	}
}

// Validator validates parsed documents with kin-openapi.
type Validator struct {
	// IncludeStructureErrors adds the parser's own structural findings
	// (ParseResult.Errors) to the result.
	IncludeStructureErrors bool
	// ValidateExamples enables validation of example values against their
	// schemas. Off by default.
	ValidateExamples bool
	// Logger receives diagnostic output. Nil means parser.NopLogger.
	Logger parser.Logger
}

// New creates a new Validator instance with default settings
func New() *Validator {
	return &Validator{IncludeStructureErrors: true}
}

func (v *Validator) log() parser.Logger {
	if v.Logger == nil {
		return parser.NopLogger{}
	}
	return v.Logger
}

// ValidateParsed validates an already parsed document. The document's raw
// bytes are loaded by kin-openapi, so the result reflects the source as
// written. The returned error is reserved for failures to run validation
// at all; document problems are reported in the result.
func (v *Validator) ValidateParsed(ctx context.Context, pr *parser.ParseResult) (*ValidationResult, error) {
	if pr == nil {
		return nil, &oaserrors.ConfigError{Option: "parse result", Message: "cannot be nil"}
	}
	if len(pr.Raw) == 0 {
		return nil, &oaserrors.ConfigError{Option: "parse result", Message: "raw document bytes are required"}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := &ValidationResult{
		Version:    pr.Version,
		OASVersion: pr.OASVersion,
		SourcePath: pr.SourcePath,
		Errors:     make([]error, 0),
	}
	if v.IncludeStructureErrors {
		result.Errors = append(result.Errors, pr.Errors...)
	}

	var (
		doc *openapi3.T
		err error
	)
	if pr.IsOAS2() {
		doc, err = v.loadOAS2(ctx, pr.Raw)
	} else {
		doc, err = v.loadOAS3(ctx, pr.Raw)
	}
	if err != nil {
		result.Errors = append(result.Errors, &oaserrors.ValidationError{
			Path:    pr.SourcePath,
			Message: "document could not be loaded",
			Cause:   err,
		})
	} else if err := doc.Validate(ctx, v.validationOptions()...); err != nil {
		result.Errors = append(result.Errors, flatten(pr.SourcePath, err)...)
	}

	result.Valid = len(result.Errors) == 0
	v.log().Debug("validated document",
		"source", pr.SourcePath,
		"version", pr.Version,
		"errors", len(result.Errors))
	return result, nil
}

func (v *Validator) validationOptions() []openapi3.ValidationOption {
	opts := []openapi3.ValidationOption{openapi3.EnableSchemaFormatValidation()}
	if !v.ValidateExamples {
		opts = append(opts, openapi3.DisableExamplesValidation())
	}
	return opts
}

func newLoader(ctx context.Context) *openapi3.Loader {
	return &openapi3.Loader{
		Context:               ctx,
		IsExternalRefsAllowed: false,
	}
}

func (v *Validator) loadOAS3(ctx context.Context, raw []byte) (*openapi3.T, error) {
	return newLoader(ctx).LoadFromData(raw)
}

// loadOAS2 decodes a Swagger 2.0 document and converts it to OAS 3.0.
// openapi2.T only decodes JSON, so YAML sources are re-encoded first.
func (v *Validator) loadOAS2(ctx context.Context, raw []byte) (*openapi3.T, error) {
	var tree any
	if err := yaml.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	data, err := json.Marshal(jsonCompatible(tree))
	if err != nil {
		return nil, fmt.Errorf("re-encode as json: %w", err)
	}
	var doc2 openapi2.T
	if err := json.Unmarshal(data, &doc2); err != nil {
		return nil, fmt.Errorf("decode swagger 2.0: %w", err)
	}
	doc3, err := openapi2conv.ToV3(&doc2)
	if err != nil {
		return nil, fmt.Errorf("convert to openapi 3: %w", err)
	}
	if err := newLoader(ctx).ResolveRefsIn(doc3, nil); err != nil {
		return nil, fmt.Errorf("resolve references: %w", err)
	}
	return doc3, nil
}

// flatten splits a kin-openapi error into ValidationErrors. MultiError
// values are unpacked one level.
func flatten(source string, err error) []error {
	var multi openapi3.MultiError
	if errors.As(err, &multi) {
		out := make([]error, 0, len(multi))
		for _, e := range multi {
			out = append(out, &oaserrors.ValidationError{Path: source, Cause: e})
		}
		return out
	}
	return []error{&oaserrors.ValidationError{Path: source, Message: "openapi validation failed", Cause: err}}
}

// jsonCompatible rewrites mappings with non-string keys, such as unquoted
// status codes, into string-keyed maps.
func jsonCompatible(v any) any {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			t[k] = jsonCompatible(val)
		}
		return t
	case map[any]any:
		m := make(map[string]any, len(t))
		for k, val := range t {
			m[fmt.Sprint(k)] = jsonCompatible(val)
		}
		return m
	case []any:
		for i, val := range t {
			t[i] = jsonCompatible(val)
		}
		return t
	default:
		return v
	}
}
