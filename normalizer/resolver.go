package normalizer

import (
	"strconv"
	"strings"

	"github.com/erraggy/oasnormalize/internal/pathutil"
	"github.com/erraggy/oasnormalize/oaserrors"
	"github.com/erraggy/oasnormalize/parser"
)

// resolver follows local references inside one parsed document. Only
// component references are supported: "#/definitions/..." style pointers
// for OAS 2.0 and "#/components/..." pointers for OAS 3.x. Schema pointers
// may continue into properties, items, additionalProperties and the
// composition lists.
type resolver struct {
	schemas       map[string]*parser.Schema
	parameters    map[string]*parser.Parameter
	responses     map[string]*parser.Response
	requestBodies map[string]*parser.RequestBody

	schemaPrefix    string
	parameterPrefix string
	responsePrefix  string
}

func newOAS2Resolver(doc *parser.OAS2Document) *resolver {
	return &resolver{
		schemas:         doc.Definitions,
		parameters:      doc.Parameters,
		responses:       doc.Responses,
		schemaPrefix:    pathutil.RefPrefixDefinitions,
		parameterPrefix: pathutil.RefPrefixParameters,
		responsePrefix:  pathutil.RefPrefixResponses,
	}
}

func newOAS3Resolver(doc *parser.OAS3Document) *resolver {
	r := &resolver{
		schemaPrefix:    pathutil.RefPrefixSchemas,
		parameterPrefix: pathutil.RefPrefixParameters3,
		responsePrefix:  pathutil.RefPrefixResponses3,
	}
	if c := doc.Components; c != nil {
		r.schemas = c.Schemas
		r.parameters = c.Parameters
		r.responses = c.Responses
		r.requestBodies = c.RequestBodies
	}
	return r
}

// schema follows s through any chain of references and returns the first
// schema without one.
func (r *resolver) schema(s *parser.Schema, source string) (*parser.Schema, error) {
	return resolveChain(s, func(v *parser.Schema) string { return v.Ref }, r.lookupSchema, "schema", source)
}

func (r *resolver) parameter(p *parser.Parameter, source string) (*parser.Parameter, error) {
	return resolveChain(p, func(v *parser.Parameter) string { return v.Ref }, func(ref string) (*parser.Parameter, bool) {
		return lookupComponent(r.parameters, r.parameterPrefix, ref)
	}, "parameter", source)
}

func (r *resolver) response(resp *parser.Response, source string) (*parser.Response, error) {
	return resolveChain(resp, func(v *parser.Response) string { return v.Ref }, func(ref string) (*parser.Response, bool) {
		return lookupComponent(r.responses, r.responsePrefix, ref)
	}, "response", source)
}

func (r *resolver) requestBody(rb *parser.RequestBody, source string) (*parser.RequestBody, error) {
	return resolveChain(rb, func(v *parser.RequestBody) string { return v.Ref }, func(ref string) (*parser.RequestBody, bool) {
		return lookupComponent(r.requestBodies, pathutil.RefPrefixRequestBodies, ref)
	}, "requestBody", source)
}

func resolveChain[T any](v *T, refOf func(*T) string, lookup func(string) (*T, bool), kind, source string) (*T, error) {
	seen := make(map[string]struct{})
	for v != nil && refOf(v) != "" {
		ref := refOf(v)
		if _, loop := seen[ref]; loop {
			return nil, &oaserrors.ReferenceError{
				Ref:        ref,
				RefType:    "local",
				Source:     source,
				IsCircular: true,
				Message:    kind + " reference chain loops back on itself",
			}
		}
		seen[ref] = struct{}{}

		if !pathutil.IsLocalRef(ref) {
			return nil, &oaserrors.ReferenceError{
				Ref:     ref,
				RefType: "external",
				Source:  source,
				Message: "external references are not supported",
			}
		}
		next, ok := lookup(ref)
		if !ok || next == nil {
			return nil, &oaserrors.ReferenceError{
				Ref:     ref,
				RefType: "local",
				Source:  source,
				Message: kind + " not found",
			}
		}
		v = next
	}
	return v, nil
}

// splitComponentRef splits ref into the component name and the pointer
// segments that follow it.
func splitComponentRef(ref, prefix string) (string, []string, bool) {
	if prefix == "" || !strings.HasPrefix(ref, prefix) {
		return "", nil, false
	}
	segments := pathutil.SplitPointer("#/" + ref[len(prefix):])
	if len(segments) == 0 || segments[0] == "" {
		return "", nil, false
	}
	return segments[0], segments[1:], true
}

func lookupComponent[T any](table map[string]*T, prefix, ref string) (*T, bool) {
	name, rest, ok := splitComponentRef(ref, prefix)
	if !ok || len(rest) > 0 {
		return nil, false
	}
	v, ok := table[name]
	return v, ok
}

func (r *resolver) lookupSchema(ref string) (*parser.Schema, bool) {
	name, rest, ok := splitComponentRef(ref, r.schemaPrefix)
	if !ok {
		return nil, false
	}
	s, ok := r.schemas[name]
	if !ok {
		return nil, false
	}
	for i := 0; i < len(rest) && s != nil; i++ {
		switch rest[i] {
		case "properties":
			i++
			if i >= len(rest) {
				return nil, false
			}
			s = s.Properties[rest[i]]
		case "items":
			s = s.Items
		case "additionalProperties":
			s = s.AdditionalProperties
		case "allOf", "anyOf", "oneOf":
			list := compositionList(s, rest[i])
			i++
			if i >= len(rest) {
				return nil, false
			}
			idx, err := strconv.Atoi(rest[i])
			if err != nil || idx < 0 || idx >= len(list) {
				return nil, false
			}
			s = list[idx]
		default:
			return nil, false
		}
	}
	return s, s != nil
}

func compositionList(s *parser.Schema, keyword string) []*parser.Schema {
	switch keyword {
	case "allOf":
		return s.AllOf
	case "anyOf":
		return s.AnyOf
	default:
		return s.OneOf
	}
}
