// Package oaserrors provides structured error types for the oasnormalize library.
//
// Import path: github.com/erraggy/oasnormalize/oaserrors
//
// Callers distinguish error categories with [errors.Is] and pull details out
// with [errors.As].
//
// # Error Types
//
//   - [ParseError]: YAML/JSON decoding failures and unreadable sources
//   - [ReferenceError]: a $ref that does not resolve, or a circular one
//   - [ValidationError]: structural or schema-level OpenAPI violations
//   - [ResourceLimitError]: schema nesting beyond the model builder's limit
//   - [ConfigError]: invalid options or conflicting inputs
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrReference]: Matches any [ReferenceError]
//   - [ErrCircularReference]: Matches [ReferenceError] with IsCircular=true
//   - [ErrValidation]: Matches any [ValidationError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage
//
//	result, err := normalizer.NormalizeWithOptions(normalizer.WithFilePath("api.yaml"))
//	var refErr *oaserrors.ReferenceError
//	if errors.As(err, &refErr) {
//	    fmt.Printf("unresolved %s at %s\n", refErr.Ref, refErr.Source)
//	}
//
// All error types with a Cause field support Unwrap, so root causes such as
// [os.ErrNotExist] stay reachable through the chain.
package oaserrors
