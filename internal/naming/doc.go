// Package naming provides shared case conversion utilities for oasnormalize.
//
// The normalizer builds every generated identifier from these helpers:
// parameter names, operation names and the fallback words of service names.
// Word boundaries are any rune that is neither a letter nor a digit, so
// "x-request.id" and "x_request id" produce the same identifier.
//
// As an internal package, these functions are not part of the public API
// and may change without notice.
package naming
