package pathutil

import "regexp"

// PathParamRegex matches path template parameters like {paramName}.
// It captures the parameter name inside the braces.
var PathParamRegex = regexp.MustCompile(`\{([^}]+)\}`)

// ReadableSegment rewrites every "{name}" in a path segment as "by-name",
// the form operation names are derived from.
func ReadableSegment(seg string) string {
	return PathParamRegex.ReplaceAllString(seg, "by-$1")
}
