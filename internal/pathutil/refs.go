// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

package pathutil

import "strings"

// OAS 2.0 reference prefixes
const (
	RefPrefixDefinitions = "#/definitions/"
	RefPrefixParameters  = "#/parameters/"
	RefPrefixResponses   = "#/responses/"
)

// OAS 3.x reference prefixes
const (
	RefPrefixSchemas       = "#/components/schemas/"
	RefPrefixParameters3   = "#/components/parameters/"
	RefPrefixResponses3    = "#/components/responses/"
	RefPrefixRequestBodies = "#/components/requestBodies/"
)

// IsLocalRef reports whether ref points into the current document.
func IsLocalRef(ref string) bool {
	return strings.HasPrefix(ref, "#/")
}

// SplitPointer decodes a local reference into its JSON Pointer segments.
// It returns nil for references that are not local.
func SplitPointer(ref string) []string {
	if !IsLocalRef(ref) {
		return nil
	}
	segments := strings.Split(ref[2:], "/")
	for i, seg := range segments {
		seg = strings.ReplaceAll(seg, "~1", "/")
		segments[i] = strings.ReplaceAll(seg, "~0", "~")
	}
	return segments
}

// RefName returns the last pointer segment of ref, which for component
// references is the component name.
func RefName(ref string) string {
	if segments := SplitPointer(ref); len(segments) > 0 {
		return segments[len(segments)-1]
	}
	if i := strings.LastIndexAny(ref, "/#"); i >= 0 {
		return ref[i+1:]
	}
	return ref
}
