package normalizer

import "github.com/erraggy/oasnormalize/parser"

// session binds one document to the collaborators that read it. It lives
// for a single Normalize call and is never shared.
type session struct {
	res           *resolver
	models        *modelBuilder
	desc          describer
	log           parser.Logger
	versionMarker string
	// consumes is the document-level OAS 2.0 consumes list
	consumes []string
}

func (n *Normalizer) newSession(doc any) *session {
	desc := describer{stripHTML: n.StripHTML}
	maxDepth := n.MaxSchemaDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxSchemaDepth
	}
	s := &session{
		desc:          desc,
		log:           n.log(),
		versionMarker: n.VersionMarker,
	}
	switch d := doc.(type) {
	case *parser.OAS2Document:
		s.res = newOAS2Resolver(d)
		s.consumes = d.Consumes
	case *parser.OAS3Document:
		s.res = newOAS3Resolver(d)
	default:
		s.res = &resolver{}
	}
	s.models = &modelBuilder{res: s.res, desc: desc, maxDepth: maxDepth}
	return s
}
