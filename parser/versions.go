package parser

import (
	"strconv"
	"strings"
)

// OASVersion represents each canonical version of the OpenAPI Specification that may be found at:
// https://github.com/OAI/OpenAPI-Specification/releases
type OASVersion int

const (
	// Unknown represents an unknown or invalid OAS version
	Unknown OASVersion = iota
	// OASVersion20 OpenAPI Specification Version 2.0 (Swagger)
	OASVersion20
	// OASVersion300 OpenAPI Specification Version 3.0.0
	OASVersion300
	// OASVersion301 OpenAPI Specification Version 3.0.1
	OASVersion301
	// OASVersion302 OpenAPI Specification Version 3.0.2
	OASVersion302
	// OASVersion303 OpenAPI Specification Version 3.0.3
	OASVersion303
	// OASVersion304 OpenAPI Specification Version 3.0.4
	OASVersion304
	// OASVersion310 OpenAPI Specification Version 3.1.0
	OASVersion310
	// OASVersion311 OpenAPI Specification Version 3.1.1
	OASVersion311
	// OASVersion312 OpenAPI Specification Version 3.1.2
	OASVersion312
	// OASVersion320 OpenAPI Specification Version 3.2.0
	OASVersion320
)

var versionToString = map[OASVersion]string{
	OASVersion20:  "2.0",
	OASVersion300: "3.0.0",
	OASVersion301: "3.0.1",
	OASVersion302: "3.0.2",
	OASVersion303: "3.0.3",
	OASVersion304: "3.0.4",
	OASVersion310: "3.1.0",
	OASVersion311: "3.1.1",
	OASVersion312: "3.1.2",
	OASVersion320: "3.2.0",
}

// series maps "major.minor" to the known patch releases, in patch order.
var series = map[string][]OASVersion{
	"3.0": {OASVersion300, OASVersion301, OASVersion302, OASVersion303, OASVersion304},
	"3.1": {OASVersion310, OASVersion311, OASVersion312},
	"3.2": {OASVersion320},
}

func (v OASVersion) String() string {
	if s, ok := versionToString[v]; ok {
		return s
	}
	return "unknown"
}

// IsValid returns true if this is a valid version
func (v OASVersion) IsValid() bool {
	_, ok := versionToString[v]
	return ok
}

// IsOAS2 reports whether v is the Swagger 2.0 dialect.
func (v OASVersion) IsOAS2() bool {
	return v == OASVersion20
}

// IsOAS3 reports whether v belongs to the 3.x dialect.
func (v OASVersion) IsOAS3() bool {
	return v.IsValid() && v != OASVersion20
}

// ParseVersion will attempt to parse the string s into an OASVersion, and returns false if not valid.
// Exact releases map to themselves. A future patch release of a known series
// (e.g. "3.0.9") maps to the newest known patch of that series, and a
// pre-release (e.g. "3.1.0-rc1") maps to its base release.
func ParseVersion(s string) (OASVersion, bool) {
	s = strings.TrimSpace(s)
	if s == "2.0" {
		return OASVersion20, true
	}

	base, _, _ := strings.Cut(s, "-")
	parts := strings.Split(base, ".")
	if len(parts) != 3 {
		return Unknown, false
	}
	patch, err := strconv.Atoi(parts[2])
	if err != nil || patch < 0 {
		return Unknown, false
	}
	known, ok := series[parts[0]+"."+parts[1]]
	if !ok {
		return Unknown, false
	}
	if patch >= len(known) {
		return known[len(known)-1], true
	}
	return known[patch], true
}
