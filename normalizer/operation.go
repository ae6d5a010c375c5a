package normalizer

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasnormalize/parser"
)

// newOperation fills the identity of an operation record.
func (s *session) newOperation(path, method, tag string, op *parser.Operation) *Operation {
	return &Operation{
		Service:     serviceName(tag),
		Name:        operationName(path, method, op.OperationID, s.versionMarker),
		OperationID: op.OperationID,
		Summary:     s.desc.clean(op.Summary),
		Description: s.desc.clean(op.Description),
		Deprecated:  op.Deprecated,
		Method:      strings.ToUpper(method),
		Path:        path,
	}
}

// assembleOAS3Operation builds the record of one OAS 3.x operation. The
// path-level bucket set is inherited first; operation parameters whose
// names were inherited are dropped. The request body is exploded or kept
// whole, responses are processed and All is sorted required first.
func (s *session) assembleOAS3Operation(path, method, tag string, op *parser.Operation, inherited Parameters) (*Operation, error) {
	rec := s.newOperation(path, method, tag, op)
	source := fmt.Sprintf("paths.%s.%s", path, method)

	b := seededBucketBuilder(s.log, inherited)
	own, err := s.aggregateOAS3Parameters(op.Parameters, source, inherited.Names()...)
	if err != nil {
		return nil, operationError(method, path, err)
	}
	b.merge(own)

	if op.RequestBody != nil {
		if err := s.assembleRequestBody(b, rec, op.RequestBody, source+".requestBody"); err != nil {
			return nil, operationError(method, path, err)
		}
	}

	if err := s.assembleResponses(b, rec, op.Responses, source+".responses"); err != nil {
		return nil, operationError(method, path, err)
	}
	rec.Parameters = b.build()
	rec.Imports = uniqueSorted(rec.Imports)
	sortByRequired(rec.All)

	s.log.Debug("assembled operation",
		"method", rec.Method,
		"path", path,
		"name", rec.Name,
		"parameters", len(rec.All),
		"bodyExpanded", len(rec.BodyExpanded))
	return rec, nil
}

// assembleOAS2Operation builds the record of one OAS 2.0 operation. Path
// and operation declarations are concatenated without deduplication and the
// body comes from the "body" declaration, the operation's last one winning
// over any inherited from the path.
func (s *session) assembleOAS2Operation(path, method, tag string, op *parser.Operation, inherited Parameters) (*Operation, error) {
	rec := s.newOperation(path, method, tag, op)
	source := fmt.Sprintf("paths.%s.%s", path, method)

	b := seededBucketBuilder(s.log, inherited)
	own, err := s.aggregateOAS2Parameters(op.Parameters, source)
	if err != nil {
		return nil, operationError(method, path, err)
	}
	b.merge(own)

	if err := s.assembleResponses(b, rec, op.Responses, source+".responses"); err != nil {
		return nil, operationError(method, path, err)
	}
	rec.Parameters = b.build()
	rec.Imports = uniqueSorted(rec.Imports)
	if rec.Body != nil {
		rec.BodyMediaType = firstOf(op.Consumes, s.consumes)
	}
	sortByRequired(rec.All)

	s.log.Debug("assembled operation",
		"method", rec.Method,
		"path", path,
		"name", rec.Name,
		"parameters", len(rec.All))
	return rec, nil
}

// assembleResponses leaves Results empty when the operation declares no
// responses at all.
func (s *session) assembleResponses(b *bucketBuilder, rec *Operation, responses *parser.Responses, source string) error {
	if responses == nil {
		return nil
	}
	results, errs, header, err := s.processResponses(responses, source)
	if err != nil {
		return err
	}
	rec.Results, rec.Errors, rec.ResponseHeader = results, errs, header
	for _, r := range results {
		b.addImports(r.Imports...)
	}
	return nil
}

func operationError(method, path string, err error) error {
	return fmt.Errorf("%s %s: %w", strings.ToUpper(method), path, err)
}

// firstOf returns the first entry of the first non-empty list.
func firstOf(lists ...[]string) string {
	for _, l := range lists {
		if len(l) > 0 {
			return l[0]
		}
	}
	return ""
}
