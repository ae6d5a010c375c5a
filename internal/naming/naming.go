// Package naming provides shared string case conversion utilities.
package naming

import (
	"strings"
	"unicode"
)

// isSeparator reports whether r breaks words. Any rune that is neither a
// letter nor a digit separates words.
func isSeparator(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}

// Words splits s into words on every non-alphanumeric rune.
// Example: "x-request_id.v2" -> ["x", "request", "id", "v2"]
func Words(s string) []string {
	return strings.FieldsFunc(s, isSeparator)
}

// TrimLeadingNonLetters drops everything before the first letter.
// Example: "123_abc" -> "abc"
func TrimLeadingNonLetters(s string) string {
	return strings.TrimLeftFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
}

// ToPascalCase converts a string to PascalCase.
// Separators trigger capitalization of the next letter; the rest of each
// word is kept as written.
// Example: "user_profile" -> "UserProfile"
// Example: "api-client" -> "ApiClient"
func ToPascalCase(s string) string {
	if s == "" {
		return ""
	}

	var result strings.Builder
	capitalizeNext := true

	for _, r := range s {
		if isSeparator(r) {
			capitalizeNext = true
			continue
		}
		if capitalizeNext {
			result.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		} else {
			result.WriteRune(r)
		}
	}

	return result.String()
}

// ToCamelCase converts a string to camelCase.
// Like PascalCase but with the first letter lowercase.
// Example: "user_profile" -> "userProfile"
// Example: "UserProfile" -> "userProfile"
func ToCamelCase(s string) string {
	pascal := ToPascalCase(s)
	if pascal == "" {
		return ""
	}
	runes := []rune(pascal)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}
