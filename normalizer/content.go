package normalizer

import (
	"mime"
	"slices"
	"strings"

	"github.com/erraggy/oasnormalize/parser"
)

// Media types the content extractor prefers, in order.
var preferredMediaTypes = []string{
	"application/json-patch+json",
	"application/json",
	"application/x-www-form-urlencoded",
	"text/json",
	"text/plain",
	"multipart/form-data",
	"multipart/mixed",
	"multipart/related",
	"multipart/batch",
}

// content is the media type and schema picked from a content map.
type content struct {
	mediaType string
	schema    *parser.Schema
}

// extractContent picks the entry of a content map that carries a schema:
// the most preferred known media type first, then the first remaining
// media type in sorted order. It returns nil when no entry has a schema.
func extractContent(media map[string]*parser.MediaType) *content {
	keys := make([]string, 0, len(media))
	for key, mt := range media {
		if mt != nil && mt.Schema != nil {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return nil
	}
	slices.Sort(keys)

	for _, preferred := range preferredMediaTypes {
		for _, key := range keys {
			if baseMediaType(key) == preferred {
				return &content{mediaType: key, schema: media[key].Schema}
			}
		}
	}
	return &content{mediaType: keys[0], schema: media[keys[0]].Schema}
}

// baseMediaType lowercases a media type and drops its parameters.
func baseMediaType(mediaType string) string {
	if base, _, err := mime.ParseMediaType(mediaType); err == nil {
		return base
	}
	base, _, _ := strings.Cut(mediaType, ";")
	return strings.ToLower(strings.TrimSpace(base))
}

// isJSONMediaType reports whether a request body of this media type may be
// exploded. Only plain application/json qualifies; vendor +json types and
// JSON patch documents are kept whole.
func isJSONMediaType(mediaType string) bool {
	return baseMediaType(mediaType) == "application/json"
}

func isFormMediaType(mediaType string) bool {
	switch baseMediaType(mediaType) {
	case "application/x-www-form-urlencoded", "multipart/form-data":
		return true
	}
	return false
}
