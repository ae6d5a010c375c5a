package normalizer

import (
	"context"
	"fmt"

	"github.com/erraggy/oasnormalize/oaserrors"
	"github.com/erraggy/oasnormalize/parser"
)

// Option is a function that configures a normalize operation
type Option func(*normalizeConfig) error

// normalizeConfig holds configuration for a normalize operation
type normalizeConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	parsed   *parser.ParseResult
	bytes    []byte

	versionMarker  string
	stripHTML      bool
	validate       bool
	maxSchemaDepth int
	logger         parser.Logger
}

// NormalizeWithOptions parses (when needed) and normalizes a document using
// functional options.
//
// Example:
//
//	result, err := normalizer.NormalizeWithOptions(ctx,
//	    normalizer.WithFilePath("openapi.yaml"),
//	    normalizer.WithVersionMarker("api-version"),
//	)
func NormalizeWithOptions(ctx context.Context, opts ...Option) (*NormalizeResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("normalizer: invalid options: %w", err)
	}

	n := &Normalizer{
		VersionMarker:  cfg.versionMarker,
		StripHTML:      cfg.stripHTML,
		Validate:       cfg.validate,
		MaxSchemaDepth: cfg.maxSchemaDepth,
		Logger:         cfg.logger,
	}

	pr := cfg.parsed
	if pr == nil {
		parseOpts := []parser.Option{parser.WithLogger(n.log())}
		if cfg.filePath != nil {
			parseOpts = append(parseOpts, parser.WithFilePath(*cfg.filePath))
		} else {
			parseOpts = append(parseOpts, parser.WithBytes(cfg.bytes))
		}
		pr, err = parser.ParseWithOptions(parseOpts...)
		if err != nil {
			return nil, err
		}
	}
	return n.Normalize(ctx, pr)
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*normalizeConfig, error) {
	cfg := &normalizeConfig{
		versionMarker:  DefaultVersionMarker,
		maxSchemaDepth: DefaultMaxSchemaDepth,
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	sources := 0
	if cfg.filePath != nil {
		sources++
	}
	if cfg.parsed != nil {
		sources++
	}
	if cfg.bytes != nil {
		sources++
	}
	if sources != 1 {
		return nil, &oaserrors.ConfigError{
			Option:  "input source",
			Message: fmt.Sprintf("exactly one of WithFilePath, WithParsed or WithBytes is required, got %d", sources),
		}
	}
	return cfg, nil
}

// WithFilePath specifies a file path as the input source
func WithFilePath(path string) Option {
	return func(cfg *normalizeConfig) error {
		if path == "" {
			return &oaserrors.ConfigError{Option: "WithFilePath", Message: "path cannot be empty"}
		}
		cfg.filePath = &path
		return nil
	}
}

// WithParsed specifies an already parsed document as the input source
func WithParsed(result *parser.ParseResult) Option {
	return func(cfg *normalizeConfig) error {
		if result == nil {
			return &oaserrors.ConfigError{Option: "WithParsed", Message: "parse result cannot be nil"}
		}
		cfg.parsed = result
		return nil
	}
}

// WithBytes specifies raw document bytes as the input source
func WithBytes(data []byte) Option {
	return func(cfg *normalizeConfig) error {
		if data == nil {
			return &oaserrors.ConfigError{Option: "WithBytes", Message: "data cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithVersionMarker sets the name of the parameter excluded from every
// operation. An empty name keeps every parameter.
// Default: DefaultVersionMarker
func WithVersionMarker(name string) Option {
	return func(cfg *normalizeConfig) error {
		cfg.versionMarker = name
		return nil
	}
}

// WithStripHTML enables or disables HTML removal in descriptions
// Default: false
func WithStripHTML(enabled bool) Option {
	return func(cfg *normalizeConfig) error {
		cfg.stripHTML = enabled
		return nil
	}
}

// WithValidation enables or disables kin-openapi validation of the input
// Default: false
func WithValidation(enabled bool) Option {
	return func(cfg *normalizeConfig) error {
		cfg.validate = enabled
		return nil
	}
}

// WithMaxSchemaDepth bounds schema nesting
// Default: DefaultMaxSchemaDepth
func WithMaxSchemaDepth(depth int) Option {
	return func(cfg *normalizeConfig) error {
		if depth <= 0 {
			return &oaserrors.ConfigError{Option: "WithMaxSchemaDepth", Value: depth, Message: "must be positive"}
		}
		cfg.maxSchemaDepth = depth
		return nil
	}
}

// WithLogger sets the logger for debug output
func WithLogger(l parser.Logger) Option {
	return func(cfg *normalizeConfig) error {
		cfg.logger = l
		return nil
	}
}
