package parser

import (
	"fmt"
	"sort"

	"github.com/erraggy/oasnormalize/oaserrors"
)

// validateStructure performs basic structure validation
func (p *Parser) validateStructure(result *ParseResult) []error {
	switch doc := result.Document.(type) {
	case *OAS2Document:
		return p.validateOAS2(doc)
	case *OAS3Document:
		return p.validateOAS3(doc)
	default:
		return []error{fmt.Errorf("parser: internal error: unexpected document type %T", result.Document)}
	}
}

func (p *Parser) validateOAS2(doc *OAS2Document) []error {
	errs := make([]error, 0)
	if doc.Swagger != "2.0" {
		errs = append(errs, &oaserrors.ValidationError{
			Path:    "swagger",
			Value:   doc.Swagger,
			Message: "must be set to \"2.0\"",
		})
	}
	errs = append(errs, validateInfo(doc.Info)...)
	if doc.Paths == nil {
		errs = append(errs, &oaserrors.ValidationError{
			Path:    "paths",
			Message: "Paths object is required",
			SpecRef: "https://spec.openapis.org/oas/v2.0.html#pathsObject",
		})
	}
	errs = append(errs, validatePaths(doc.Paths, oas2Locations)...)
	return errs
}

func (p *Parser) validateOAS3(doc *OAS3Document) []error {
	errs := make([]error, 0)
	errs = append(errs, validateInfo(doc.Info)...)
	if doc.Paths == nil && len(doc.Webhooks) == 0 {
		errs = append(errs, &oaserrors.ValidationError{
			Path:    "paths",
			Message: "document must have either 'paths' or 'webhooks'",
			SpecRef: "https://spec.openapis.org/oas/v3.1.0.html#openapi-object",
		})
	}
	errs = append(errs, validatePaths(doc.Paths, oas3Locations)...)
	return errs
}

var (
	oas2Locations = map[string]bool{
		ParamInQuery:    true,
		ParamInHeader:   true,
		ParamInPath:     true,
		ParamInFormData: true,
		ParamInBody:     true,
	}
	oas3Locations = map[string]bool{
		ParamInQuery:  true,
		ParamInHeader: true,
		ParamInPath:   true,
		ParamInCookie: true,
	}
)

func validateInfo(info *Info) []error {
	if info == nil {
		return []error{&oaserrors.ValidationError{Path: "info", Message: "Info object is required"}}
	}
	var errs []error
	if info.Title == "" {
		errs = append(errs, &oaserrors.ValidationError{Path: "info", Field: "title", Message: "Info object must have a title"})
	}
	if info.Version == "" {
		errs = append(errs, &oaserrors.ValidationError{Path: "info", Field: "version", Message: "Info object must have a version string"})
	}
	return errs
}

// validatePaths checks path patterns, operationId uniqueness and parameter
// locations. Paths are visited in sorted order so the error list is stable.
func validatePaths(paths Paths, locations map[string]bool) []error {
	var errs []error
	operationIDs := make(map[string]string)

	patterns := make([]string, 0, len(paths))
	for pattern := range paths {
		patterns = append(patterns, pattern)
	}
	sort.Strings(patterns)

	for _, pattern := range patterns {
		item := paths[pattern]
		if item == nil {
			continue
		}
		if pattern == "" || pattern[0] != '/' {
			errs = append(errs, &oaserrors.ValidationError{
				Path:    "paths." + pattern,
				Message: "path must begin with '/'",
			})
		}
		errs = append(errs, validateParameters(item.Parameters, "paths."+pattern, locations)...)

		for _, method := range Methods {
			op := item.Operation(method)
			if op == nil {
				continue
			}
			opPath := fmt.Sprintf("paths.%s.%s", pattern, method)
			if op.OperationID != "" {
				if previous, exists := operationIDs[op.OperationID]; exists {
					errs = append(errs, &oaserrors.ValidationError{
						Path:    opPath,
						Field:   "operationId",
						Value:   op.OperationID,
						Message: fmt.Sprintf("duplicate operationId: previously defined at '%s'", previous),
					})
				} else {
					operationIDs[op.OperationID] = opPath
				}
			}
			errs = append(errs, validateParameters(op.Parameters, opPath, locations)...)
		}
	}
	return errs
}

func validateParameters(params []*Parameter, path string, locations map[string]bool) []error {
	var errs []error
	for i, param := range params {
		if param == nil || param.Ref != "" {
			continue
		}
		paramPath := fmt.Sprintf("%s.parameters[%d]", path, i)
		if param.Name == "" {
			errs = append(errs, &oaserrors.ValidationError{Path: paramPath, Field: "name", Message: "Parameter must have a name"})
		}
		if !locations[param.In] {
			errs = append(errs, &oaserrors.ValidationError{
				Path:    paramPath,
				Field:   "in",
				Value:   param.In,
				Message: "not a valid parameter location",
			})
		}
	}
	return errs
}
