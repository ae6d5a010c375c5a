package normalizer

import "github.com/erraggy/oasnormalize/parser"

const (
	requestBodyName = "requestBody"
	formDataName    = "formData"
)

// normalizeRequestBody converts a resolved request body into the parameter
// that stands for the body as a whole, along with the content entry it was
// built from (nil when the body declares no content with a schema).
// x-body-name renames the parameter; form media types move it to formData.
func (s *session) normalizeRequestBody(rb *parser.RequestBody, source string) (*Parameter, *content, error) {
	body := &Parameter{
		Model: Model{
			Name:        requestBodyName,
			Export:      ExportInterface,
			Type:        anyType,
			Base:        anyType,
			Description: s.desc.clean(rb.Description),
			IsRequired:  rb.Required,
			IsNullable:  extensionTrue(rb.Extra, "x-nullable"),
		},
		In:   LocationBody,
		Prop: requestBodyName,
	}
	if v, ok := rb.Extension("x-body-name"); ok {
		if name, ok := v.(string); ok && name != "" {
			body.Prop = name
			body.Name = parameterName(name)
		}
	}

	c := extractContent(rb.Content)
	if c == nil {
		return body, nil, nil
	}
	if isFormMediaType(c.mediaType) {
		body.In = LocationForm
		body.Name = formDataName
		body.Prop = formDataName
	}
	if c.schema.Ref != "" {
		setReference(&body.Model, c.schema.Ref)
		return body, c, nil
	}
	model, err := s.models.build(c.schema, body.Name, source+".content."+c.mediaType+".schema")
	if err != nil {
		return nil, nil, err
	}
	adoptModel(&body.Model, model)
	return body, c, nil
}

// assembleRequestBody records an OAS 3.x request body on b. A JSON body
// whose schema references an object with properties is exploded into
// BodyExpanded; any other body is kept as the single body parameter.
func (s *session) assembleRequestBody(b *bucketBuilder, op *Operation, raw *parser.RequestBody, source string) error {
	rb, err := s.res.requestBody(raw, source)
	if err != nil {
		return err
	}
	body, c, err := s.normalizeRequestBody(rb, source)
	if err != nil {
		return err
	}
	if c == nil {
		b.keepBody(body)
		return nil
	}

	op.BodyMediaType = c.mediaType
	if c.schema.Ref != "" && isJSONMediaType(c.mediaType) {
		expanded, err := s.expandSchema(c.schema, LocationBody, c.mediaType, source+".content."+c.mediaType+".schema")
		if err != nil {
			return err
		}
		if len(expanded) > 0 {
			b.explodeBody(expanded)
			return nil
		}
		s.log.Debug("request body schema has no properties to explode, keeping body", "source", source, "ref", c.schema.Ref)
	}
	b.keepBody(body)
	return nil
}
