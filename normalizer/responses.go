package normalizer

import (
	"slices"
	"strconv"
	"strings"

	"github.com/erraggy/oasnormalize/parser"
)

type codedResponse struct {
	key  string
	code int
	raw  *parser.Response
}

// responseCode maps a responses key to a status code. "default" reads as
// 200 and an OAS 3.x range such as "2XX" as its first code.
func responseCode(key string) (int, bool) {
	if key == parser.ResponseDefault {
		return 200, true
	}
	if len(key) == 3 && strings.EqualFold(key[1:], "XX") && key[0] >= '1' && key[0] <= '5' {
		return int(key[0]-'0') * 100, true
	}
	code, err := strconv.Atoi(key)
	if err != nil || code < 0 {
		return 0, false
	}
	return code, true
}

// processResponses derives the results, errors and response header of an
// operation. Results are the distinct 2xx responses other than 204, or a
// single void result when there are none. Errors are the described
// responses with codes of 300 and above.
func (s *session) processResponses(responses *parser.Responses, source string) ([]*Response, []*OperationError, string, error) {
	if responses == nil {
		responses = &parser.Responses{}
	}
	entries := make([]codedResponse, 0, len(responses.Codes)+1)
	if responses.Default != nil {
		entries = append(entries, codedResponse{key: parser.ResponseDefault, code: 200, raw: responses.Default})
	}
	for key, raw := range responses.Codes {
		if code, ok := responseCode(key); ok {
			entries = append(entries, codedResponse{key: key, code: code, raw: raw})
		}
	}
	slices.SortFunc(entries, func(a, b codedResponse) int {
		if a.code != b.code {
			return a.code - b.code
		}
		return strings.Compare(a.key, b.key)
	})

	all := make([]*Response, 0, len(entries))
	for _, e := range entries {
		respSource := source + "." + e.key
		resolved, err := s.res.response(e.raw, respSource)
		if err != nil {
			return nil, nil, "", err
		}
		resp, err := s.operationResponse(resolved, e.code, respSource)
		if err != nil {
			return nil, nil, "", err
		}
		all = append(all, resp)
	}

	results := operationResults(all)
	errs := make([]*OperationError, 0)
	for _, r := range all {
		if r.Code >= 300 && r.Description != "" {
			errs = append(errs, &OperationError{Code: r.Code, Description: r.Description})
		}
	}
	var header string
	for _, r := range results {
		if r.In == ResponseInHeader {
			header = r.Name
			break
		}
	}
	return results, errs, header, nil
}

// operationResponse models one response. A body schema wins; failing that,
// the first header (sorted by name) makes this a string header result.
func (s *session) operationResponse(resp *parser.Response, code int, source string) (*Response, error) {
	r := &Response{
		Model: Model{
			Export:      ExportGeneric,
			Type:        anyType,
			Base:        anyType,
			Description: s.desc.clean(resp.Description),
		},
		In:   ResponseInBody,
		Code: code,
	}

	schema := resp.Schema
	if c := extractContent(resp.Content); c != nil {
		schema = c.schema
	}
	if schema != nil {
		if schema.Ref != "" {
			setReference(&r.Model, schema.Ref)
			return r, nil
		}
		model, err := s.models.build(schema, "", source+".schema")
		if err != nil {
			return nil, err
		}
		adoptModel(&r.Model, model)
		return r, nil
	}

	if len(resp.Headers) > 0 {
		names := make([]string, 0, len(resp.Headers))
		for name := range resp.Headers {
			names = append(names, name)
		}
		slices.Sort(names)
		r.In = ResponseInHeader
		r.Name = names[0]
		r.Type, r.Base = "string", "string"
	}
	return r, nil
}

func operationResults(responses []*Response) []*Response {
	results := make([]*Response, 0, len(responses))
	for _, r := range responses {
		if r.Code >= 200 && r.Code < 300 && r.Code != 204 {
			results = append(results, r)
		}
	}
	if len(results) == 0 {
		results = append(results, &Response{
			Model: Model{Export: ExportGeneric, Type: voidType, Base: voidType},
			In:    ResponseInBody,
			Code:  200,
		})
	}

	distinct := results[:0:0]
	for _, r := range results {
		if !slices.ContainsFunc(distinct, func(d *Response) bool { return sameType(&d.Model, &r.Model) }) {
			distinct = append(distinct, r)
		}
	}
	return distinct
}

// sameType compares type descriptors, following element links.
func sameType(a, b *Model) bool {
	if a.Type != b.Type || a.Base != b.Base {
		return false
	}
	if a.Link != nil && b.Link != nil {
		return sameType(a.Link, b.Link)
	}
	return true
}
