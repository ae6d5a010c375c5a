// Copyright 2024 Erraggy
// SPDX-License-Identifier: MIT

// Package pathutil provides helpers for OpenAPI reference strings, path
// templates and output paths.
//
// # Reference Helpers
//
// Local references are JSON Pointers into the current document. The
// prefix constants name the component sections for both OAS 2.0 and 3.x,
// and [RefName] extracts the component name a reference points at:
//
//	pathutil.RefName("#/components/schemas/Pet")  // "Pet"
//	pathutil.IsLocalRef("other.yaml#/Pet")        // false
//
// [SplitPointer] decodes a local pointer into its unescaped segments
// ("~1" becomes "/", "~0" becomes "~").
//
// # Path Templates
//
// [PathParamRegex] matches "{name}" segments of a path template.
//
// # Output Path Sanitization
//
// [SanitizeOutputPath] validates and cleans output file paths. It resolves
// ".." components and rejects symlinks:
//
//	safe, err := pathutil.SanitizeOutputPath(userProvidedPath)
//	if err != nil {
//	    return err
//	}
package pathutil
