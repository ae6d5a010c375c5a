package normalizer

import (
	"slices"

	"github.com/erraggy/oasnormalize/parser"
)

// Parameters is the bucket set of one operation. All holds every admitted
// parameter; the location buckets hold the same pointers split by In.
// The path bucket is PathParams so it does not clash with Operation.Path.
type Parameters struct {
	All        []*Parameter `json:"parameters" yaml:"parameters"`
	PathParams []*Parameter `json:"parametersPath" yaml:"parametersPath"`
	Query      []*Parameter `json:"parametersQuery" yaml:"parametersQuery"`
	Form       []*Parameter `json:"parametersForm" yaml:"parametersForm"`
	Cookie     []*Parameter `json:"parametersCookie" yaml:"parametersCookie"`
	Header     []*Parameter `json:"parametersHeader" yaml:"parametersHeader"`
	// Body is the request body as one parameter. It is nil whenever the
	// body was exploded into BodyExpanded.
	Body         *Parameter   `json:"parametersBody" yaml:"parametersBody"`
	BodyExpanded []*Parameter `json:"parametersBodyExpanded" yaml:"parametersBodyExpanded"`
	Imports      []string     `json:"imports" yaml:"imports"`
}

// Names returns the sanitized names of every parameter in All.
func (p Parameters) Names() []string {
	names := make([]string, 0, len(p.All))
	for _, param := range p.All {
		names = append(names, param.Name)
	}
	return names
}

// bucketBuilder accumulates a Parameters value. A builder belongs to one
// aggregation call and is discarded once build returns.
type bucketBuilder struct {
	params Parameters
	// names is the collision guard; nil disables it
	names map[string]struct{}
	log   parser.Logger
}

func newBucketBuilder(log parser.Logger) *bucketBuilder {
	return &bucketBuilder{params: emptyParameters(), log: log}
}

// newGuardedBucketBuilder returns a builder that admits each sanitized name
// once. Names in seed count as already admitted.
func newGuardedBucketBuilder(log parser.Logger, seed ...string) *bucketBuilder {
	b := newBucketBuilder(log)
	b.names = make(map[string]struct{}, len(seed))
	for _, name := range seed {
		b.names[name] = struct{}{}
	}
	return b
}

// seededBucketBuilder returns an unguarded builder that starts with copies
// of every bucket in inherited.
func seededBucketBuilder(log parser.Logger, inherited Parameters) *bucketBuilder {
	b := newBucketBuilder(log)
	b.params.All = append(b.params.All, inherited.All...)
	b.params.PathParams = append(b.params.PathParams, inherited.PathParams...)
	b.params.Query = append(b.params.Query, inherited.Query...)
	b.params.Form = append(b.params.Form, inherited.Form...)
	b.params.Cookie = append(b.params.Cookie, inherited.Cookie...)
	b.params.Header = append(b.params.Header, inherited.Header...)
	b.params.Body = inherited.Body
	b.params.BodyExpanded = append(b.params.BodyExpanded, inherited.BodyExpanded...)
	b.params.Imports = append(b.params.Imports, inherited.Imports...)
	return b
}

func emptyParameters() Parameters {
	return Parameters{
		All:          []*Parameter{},
		PathParams:   []*Parameter{},
		Query:        []*Parameter{},
		Form:         []*Parameter{},
		Cookie:       []*Parameter{},
		Header:       []*Parameter{},
		BodyExpanded: []*Parameter{},
		Imports:      []string{},
	}
}

// admit appends p to All and to the bucket matching p.In. A body parameter
// takes the body slot; a later body replaces an earlier one. When the
// collision guard is on, a name that was already admitted is dropped and
// admit reports false.
func (b *bucketBuilder) admit(p *Parameter) bool {
	if b.names != nil {
		if _, dup := b.names[p.Name]; dup {
			b.log.Debug("dropped duplicate parameter", "name", p.Name, "in", string(p.In), "prop", p.Prop)
			return false
		}
		b.names[p.Name] = struct{}{}
	}

	switch p.In {
	case LocationPath:
		b.params.PathParams = append(b.params.PathParams, p)
	case LocationQuery:
		b.params.Query = append(b.params.Query, p)
	case LocationForm:
		b.params.Form = append(b.params.Form, p)
	case LocationCookie:
		b.params.Cookie = append(b.params.Cookie, p)
	case LocationHeader:
		b.params.Header = append(b.params.Header, p)
	case LocationBody:
		b.setBody(p)
	}
	b.params.All = append(b.params.All, p)
	b.params.Imports = append(b.params.Imports, p.Imports...)
	return true
}

// setBody fills the body slot without touching All.
func (b *bucketBuilder) setBody(p *Parameter) {
	if b.params.Body != nil && b.params.Body != p {
		b.log.Debug("body parameter replaced", "previous", b.params.Body.Prop, "current", p.Prop)
	}
	b.params.Body = p
}

// keepBody records p as the whole request body, whatever its location.
func (b *bucketBuilder) keepBody(p *Parameter) {
	b.setBody(p)
	b.params.All = append(b.params.All, p)
	b.params.Imports = append(b.params.Imports, p.Imports...)
}

// explodeBody records the properties of an exploded request body. The body
// slot is cleared.
func (b *bucketBuilder) explodeBody(params []*Parameter) {
	for _, p := range params {
		b.params.BodyExpanded = append(b.params.BodyExpanded, p)
		b.params.All = append(b.params.All, p)
		b.params.Imports = append(b.params.Imports, p.Imports...)
	}
	b.params.Body = nil
}

// merge appends every bucket of other. other's body, when set, takes the
// body slot.
func (b *bucketBuilder) merge(other Parameters) {
	b.params.All = append(b.params.All, other.All...)
	b.params.PathParams = append(b.params.PathParams, other.PathParams...)
	b.params.Query = append(b.params.Query, other.Query...)
	b.params.Form = append(b.params.Form, other.Form...)
	b.params.Cookie = append(b.params.Cookie, other.Cookie...)
	b.params.Header = append(b.params.Header, other.Header...)
	b.params.BodyExpanded = append(b.params.BodyExpanded, other.BodyExpanded...)
	b.params.Imports = append(b.params.Imports, other.Imports...)
	if other.Body != nil {
		b.setBody(other.Body)
	}
}

// addImports merges imports that do not belong to any parameter.
func (b *bucketBuilder) addImports(imports ...string) {
	b.params.Imports = append(b.params.Imports, imports...)
}

// build hands the accumulated set to the caller and resets the builder.
func (b *bucketBuilder) build() Parameters {
	params := b.params
	params.Imports = slices.Clip(params.Imports)
	b.params = emptyParameters()
	b.names = nil
	return params
}
