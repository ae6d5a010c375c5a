package normalizer

import "github.com/erraggy/oasnormalize/parser"

// expandSchema explodes an object schema into one parameter per property,
// in property order. Each parameter carries the property's model, is
// located at in and gets mediaType, which is empty except for request body
// explosion. A schema whose model has no properties yields an empty list;
// callers then keep the declaration as a single parameter.
func (s *session) expandSchema(schema *parser.Schema, in Location, mediaType, source string) ([]*Parameter, error) {
	resolved, err := s.res.schema(schema, source)
	if err != nil {
		return nil, err
	}
	model, err := s.models.build(resolved, "", source)
	if err != nil {
		return nil, err
	}
	if !model.HasProperties() {
		return nil, nil
	}

	params := make([]*Parameter, 0, len(model.Properties))
	for _, prop := range model.Properties {
		p := &Parameter{
			Model:     *prop,
			In:        in,
			Prop:      prop.Name,
			MediaType: mediaType,
		}
		p.Name = parameterName(prop.Name)
		p.IsDefinition = false
		params = append(params, p)
	}
	return params, nil
}
