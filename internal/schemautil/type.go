// Package schemautil provides utilities for working with OpenAPI schema types.
//
// This package centralizes type assertion patterns for OAS version-specific fields,
// particularly handling the differences between OAS 2.0/3.0 (string types and
// boolean exclusive bounds) and OAS 3.1+ (type arrays and numeric exclusive bounds).
package schemautil

import "github.com/erraggy/oasnormalize/parser"

// GetSchemaTypes returns the type(s) from a schema, handling both
// string (OAS 2.0/3.0) and []any (OAS 3.1+) representations.
//
// Examples:
//   - OAS 3.0: {"type": "string"} returns ["string"]
//   - OAS 3.1: {"type": ["string", "null"]} returns ["string", "null"]
func GetSchemaTypes(schema *parser.Schema) []string {
	if schema == nil {
		return nil
	}
	switch t := schema.Type.(type) {
	case string:
		if t == "" {
			return nil
		}
		return []string{t}
	case []any:
		result := make([]string, 0, len(t))
		for _, v := range t {
			if s, ok := v.(string); ok {
				result = append(result, s)
			}
		}
		return result
	case []string:
		return t
	}
	return nil
}

// PrimaryType returns the first non-null type from a schema. When no type is
// declared it is inferred from the schema's shape: properties or
// additionalProperties mean "object", items means "array".
//
// Returns an empty string if nothing can be inferred.
func PrimaryType(schema *parser.Schema) string {
	types := GetSchemaTypes(schema)
	for _, t := range types {
		if t != "null" {
			return t
		}
	}
	if len(types) > 0 {
		return types[0]
	}
	if schema == nil {
		return ""
	}
	switch {
	case len(schema.Properties) > 0 || schema.AdditionalProperties != nil:
		return "object"
	case schema.Items != nil:
		return "array"
	}
	return ""
}

// IsNullable checks if the schema allows null values, either through the
// OAS 3.0 nullable keyword or a "null" entry in an OAS 3.1+ type array.
func IsNullable(schema *parser.Schema) bool {
	if schema == nil {
		return false
	}
	if schema.Nullable {
		return true
	}
	for _, t := range GetSchemaTypes(schema) {
		if t == "null" {
			return true
		}
	}
	return false
}

// IsSingleType returns true if the schema has exactly one type (not counting null).
func IsSingleType(schema *parser.Schema) bool {
	nonNullCount := 0
	for _, t := range GetSchemaTypes(schema) {
		if t != "null" {
			nonNullCount++
		}
	}
	return nonNullCount == 1
}

// ExclusiveBound normalizes an exclusiveMinimum/exclusiveMaximum value.
// OAS 2.0/3.0 use a boolean that modifies the paired bound; OAS 3.1+ use a
// number that is itself the bound. The returned pointer is non-nil only for
// the numeric form.
func ExclusiveBound(v any) (exclusive bool, bound *float64) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case float64:
		return true, &b
	case int:
		f := float64(b)
		return true, &f
	case int64:
		f := float64(b)
		return true, &f
	case uint64:
		f := float64(b)
		return true, &f
	}
	return false, nil
}
