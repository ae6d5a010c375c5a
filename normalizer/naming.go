// This file implements name conversion from OpenAPI identifiers to Go identifiers.

package normalizer

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/oasnormalize/internal/naming"
	"github.com/erraggy/oasnormalize/internal/pathutil"
)

// DefaultServiceName is used for operations without tags.
const DefaultServiceName = "Default"

// goReservedWords contains Go reserved keywords that cannot be used as identifiers.
// Predeclared identifiers like "error" can be shadowed and are left alone.
var goReservedWords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

// escapeReservedWord appends an underscore to Go keywords. The check is
// case-insensitive so "Type" and "type" are both escaped.
func escapeReservedWord(name string) string {
	if goReservedWords[strings.ToLower(name)] {
		return name + "_"
	}
	return name
}

// parameterName sanitizes a raw parameter or property key into a camelCase
// identifier: leading non-letters are dropped, "[]" becomes "Array" and every
// other non-alphanumeric run is a word break.
func parameterName(raw string) string {
	clean := naming.TrimLeadingNonLetters(raw)
	clean = strings.Replace(clean, "[]", "Array", 1)
	return escapeReservedWord(naming.ToCamelCase(clean))
}

// serviceName converts a tag into a PascalCase service name.
func serviceName(tag string) string {
	words := naming.Words(naming.TrimLeadingNonLetters(tag))
	if len(words) == 0 {
		return DefaultServiceName
	}
	// A Caser is stateful, so each call gets its own.
	caser := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(caser.String(w))
	}
	return b.String()
}

// operationName derives the camelCase operation name. An operationId wins;
// otherwise the name is built from the method and path, with "{id}" read
// as "by-id" and segments carrying the version marker removed.
func operationName(path, method, operationID, versionMarker string) string {
	if operationID != "" {
		if name := naming.ToCamelCase(naming.TrimLeadingNonLetters(operationID)); name != "" {
			return escapeReservedWord(name)
		}
	}

	segments := strings.Split(path, "/")
	kept := make([]string, 0, len(segments))
	for _, seg := range segments {
		if versionMarker != "" && strings.Contains(seg, "{"+versionMarker+"}") {
			continue
		}
		kept = append(kept, pathutil.ReadableSegment(seg))
	}
	return escapeReservedWord(naming.ToCamelCase(strings.ToLower(method) + "-" + strings.Join(kept, "-")))
}
