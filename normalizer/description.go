package normalizer

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	stripPolicyOnce sync.Once
	stripPolicy     *bluemonday.Policy
)

// htmlStripper returns the shared policy that removes every tag.
// bluemonday policies are safe for concurrent use once built.
func htmlStripper() *bluemonday.Policy {
	stripPolicyOnce.Do(func() {
		stripPolicy = bluemonday.StrictPolicy()
	})
	return stripPolicy
}

// describer cleans description text copied onto models and operations.
type describer struct {
	stripHTML bool
}

// clean normalizes line endings and trims surrounding space. With HTML
// stripping on, tags are removed and entities decoded so the text is plain.
func (d describer) clean(s string) string {
	if s == "" {
		return ""
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if d.stripHTML && strings.ContainsAny(s, "<&") {
		s = html.UnescapeString(htmlStripper().Sanitize(s))
	}
	return strings.TrimSpace(s)
}
