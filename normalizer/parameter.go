package normalizer

import "github.com/erraggy/oasnormalize/parser"

// normalizeParameter converts a resolved declaration into a canonical
// parameter. OAS 2.0 inline type/format/items declarations and OAS 3.x
// schema or content declarations are both understood.
func (s *session) normalizeParameter(p *parser.Parameter, source string) (*Parameter, error) {
	param := &Parameter{
		Model: Model{
			Name:        parameterName(p.Name),
			Export:      ExportInterface,
			Type:        anyType,
			Base:        anyType,
			Description: s.desc.clean(p.Description),
			Deprecated:  p.Deprecated,
			IsRequired:  p.Required,
			IsNullable:  extensionTrue(p.Extra, "x-nullable"),
		},
		In:   Location(p.In),
		Prop: p.Name,
	}

	schema := p.Schema
	if schema == nil && len(p.Content) > 0 {
		if c := extractContent(p.Content); c != nil {
			schema = c.schema
		}
	}

	switch {
	case schema != nil:
		if schema.Ref != "" {
			setReference(&param.Model, schema.Ref)
			param.Default = schema.Default
			return param, nil
		}
		model, err := s.models.build(schema, param.Name, source+".schema")
		if err != nil {
			return nil, err
		}
		adoptModel(&param.Model, model)
	case p.Type != "":
		applyValidations(&param.Model, p.Format, p.Validations)
		switch {
		case len(p.Enum) > 0:
			t := primitiveGoType(p.Type, p.Format)
			param.Export, param.Type, param.Base = ExportEnum, t, t
			param.Enum = buildEnum(p.Enum)
		case p.Type == "array" && p.Items != nil:
			t := itemsGoType(p.Items)
			param.Export, param.Type, param.Base = ExportArray, t, t
		default:
			t := primitiveGoType(p.Type, p.Format)
			param.Export, param.Type, param.Base = ExportGeneric, t, t
		}
	}
	return param, nil
}

// adoptModel copies the shape of src onto dst. Identity and documentation
// (name, description, required, deprecated) stay with dst.
func adoptModel(dst, src *Model) {
	dst.Export = src.Export
	dst.Type = src.Type
	dst.Base = src.Base
	dst.Link = src.Link
	dst.IsReadOnly = src.IsReadOnly
	dst.IsNullable = dst.IsNullable || src.IsNullable
	dst.Format = src.Format
	dst.Constraints = src.Constraints
	dst.Default = src.Default
	dst.Enum = src.Enum
	dst.Properties = src.Properties
	dst.Alternatives = src.Alternatives
	dst.Imports = src.Imports
}

// applyValidations copies OAS 2.0 inline validation keywords.
func applyValidations(m *Model, format string, v parser.Validations) {
	m.Format = format
	m.Default = v.Default
	m.Maximum, m.ExclusiveMaximum = v.Maximum, v.ExclusiveMaximum
	m.Minimum, m.ExclusiveMinimum = v.Minimum, v.ExclusiveMinimum
	m.MultipleOf = v.MultipleOf
	m.MaxLength, m.MinLength, m.Pattern = v.MaxLength, v.MinLength, v.Pattern
	m.MaxItems, m.MinItems, m.UniqueItems = v.MaxItems, v.MinItems, v.UniqueItems
}

// itemsGoType returns the element type of an OAS 2.0 items declaration.
// Nested arrays keep their inner element type behind "[]".
func itemsGoType(items *parser.Items) string {
	if items.Type == "array" && items.Items != nil {
		return "[]" + itemsGoType(items.Items)
	}
	return primitiveGoType(items.Type, items.Format)
}

// parameterCandidates resolves and normalizes one declaration and returns
// what it contributes to the bucket set: nothing for the version marker or
// an unsupported location, the exploded properties for a query or form
// declaration whose schema is a reference to an object, and otherwise the
// declaration itself.
func (s *session) parameterCandidates(decl *parser.Parameter, source string, locations map[Location]bool) ([]*Parameter, error) {
	resolved, err := s.res.parameter(decl, source)
	if err != nil {
		return nil, err
	}
	param, err := s.normalizeParameter(resolved, source)
	if err != nil {
		return nil, err
	}
	if s.isVersionMarker(param) {
		s.log.Debug("skipped version marker parameter", "source", source, "prop", param.Prop)
		return nil, nil
	}
	if !locations[param.In] {
		s.log.Debug("skipped parameter with unsupported location", "source", source, "in", string(param.In))
		return nil, nil
	}

	if (param.In == LocationQuery || param.In == LocationForm) && resolved.Schema != nil && resolved.Schema.Ref != "" {
		expanded, err := s.expandSchema(resolved.Schema, param.In, "", source+".schema")
		if err != nil {
			return nil, err
		}
		if len(expanded) > 0 {
			return expanded, nil
		}
		s.log.Debug("schema has no properties to expand, keeping parameter", "source", source, "ref", resolved.Schema.Ref)
	}
	return []*Parameter{param}, nil
}

func (s *session) isVersionMarker(p *Parameter) bool {
	return s.versionMarker != "" && p.Prop == s.versionMarker
}
