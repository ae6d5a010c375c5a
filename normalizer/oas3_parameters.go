package normalizer

import (
	"fmt"

	"github.com/erraggy/oasnormalize/parser"
)

var oas3Locations = map[Location]bool{
	LocationPath:   true,
	LocationQuery:  true,
	LocationHeader: true,
	LocationForm:   true,
	LocationCookie: true,
}

// aggregateOAS3Parameters buckets OAS 3.x declarations in document order.
// Each sanitized name is admitted once across all buckets: the first
// occurrence wins and later ones, expanded or not, are dropped without
// contributing entries or imports. Names in admitted count as taken, which
// lets operation-level declarations defer to path-level ones.
func (s *session) aggregateOAS3Parameters(decls []*parser.Parameter, source string, admitted ...string) (Parameters, error) {
	b := newGuardedBucketBuilder(s.log, admitted...)
	for i, decl := range decls {
		params, err := s.parameterCandidates(decl, fmt.Sprintf("%s.parameters[%d]", source, i), oas3Locations)
		if err != nil {
			return Parameters{}, err
		}
		for _, p := range params {
			b.admit(p)
		}
	}
	return b.build(), nil
}
