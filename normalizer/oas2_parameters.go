package normalizer

import (
	"fmt"

	"github.com/erraggy/oasnormalize/parser"
)

var oas2Locations = map[Location]bool{
	LocationPath:   true,
	LocationQuery:  true,
	LocationHeader: true,
	LocationForm:   true,
	LocationBody:   true,
}

// aggregateOAS2Parameters buckets OAS 2.0 declarations in document order.
// Declarations are taken as unique, so nothing is deduplicated. A body
// declaration takes the body slot; with several, the last one wins.
func (s *session) aggregateOAS2Parameters(decls []*parser.Parameter, source string) (Parameters, error) {
	b := newBucketBuilder(s.log)
	for i, decl := range decls {
		params, err := s.parameterCandidates(decl, fmt.Sprintf("%s.parameters[%d]", source, i), oas2Locations)
		if err != nil {
			return Parameters{}, err
		}
		for _, p := range params {
			b.admit(p)
		}
	}
	return b.build(), nil
}
