// This file maps OpenAPI type/format pairs and references to Go type descriptors.

package normalizer

import (
	"github.com/erraggy/oasnormalize/internal/naming"
	"github.com/erraggy/oasnormalize/internal/pathutil"
)

const (
	anyType  = "any"
	voidType = "void"
)

// stringFormatToGoType maps OpenAPI string formats to Go types.
func stringFormatToGoType(format string) string {
	switch format {
	case "date-time":
		return "time.Time"
	case "byte", "binary":
		return "[]byte"
	default:
		return "string"
	}
}

// integerFormatToGoType maps OpenAPI integer formats to Go types.
func integerFormatToGoType(format string) string {
	if format == "int32" {
		return "int32"
	}
	return "int64"
}

// numberFormatToGoType maps OpenAPI number formats to Go types.
func numberFormatToGoType(format string) string {
	if format == "float" {
		return "float32"
	}
	return "float64"
}

// primitiveGoType converts an OAS primitive type/format pair to a Go type.
// Unknown and structural types map to any.
func primitiveGoType(oasType, format string) string {
	switch oasType {
	case "string":
		return stringFormatToGoType(format)
	case "integer":
		return integerFormatToGoType(format)
	case "number":
		return numberFormatToGoType(format)
	case "boolean":
		return "bool"
	case "file":
		return "[]byte"
	default:
		return anyType
	}
}

// refTypeName returns the Go type name of the model a reference points at.
func refTypeName(ref string) string {
	name := naming.ToPascalCase(pathutil.RefName(ref))
	if name == "" {
		return anyType
	}
	return escapeReservedWord(name)
}
