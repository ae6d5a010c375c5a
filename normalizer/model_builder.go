package normalizer

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/erraggy/oasnormalize/internal/schemautil"
	"github.com/erraggy/oasnormalize/oaserrors"
	"github.com/erraggy/oasnormalize/parser"
)

// DefaultMaxSchemaDepth bounds how deep inline schemas may nest.
const DefaultMaxSchemaDepth = 64

// modelBuilder converts schemas into models. A $ref schema becomes a
// reference model naming its target and is not followed, so cyclic
// documents terminate. allOf is the exception: referenced members are
// resolved and flattened, and each reference is visited once per build.
type modelBuilder struct {
	res      *resolver
	desc     describer
	maxDepth int
}

func (mb *modelBuilder) build(schema *parser.Schema, name, source string) (*Model, error) {
	return mb.buildDepth(schema, name, source, 0)
}

func (mb *modelBuilder) buildDepth(schema *parser.Schema, name, source string, depth int) (*Model, error) {
	if depth > mb.maxDepth {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "schema_depth",
			Limit:        int64(mb.maxDepth),
			Message:      "schema nesting too deep at " + source,
		}
	}

	m := &Model{Name: name, Export: ExportGeneric, Type: anyType, Base: anyType}
	if schema == nil {
		return m, nil
	}
	mb.applyCommon(m, schema)

	if schema.Ref != "" {
		setReference(m, schema.Ref)
		return m, nil
	}

	oasType := schemautil.PrimaryType(schema)
	if len(schema.Enum) > 0 && oasType != "boolean" {
		if oasType == "" {
			oasType = "string"
		}
		t := primitiveGoType(oasType, schema.Format)
		m.Export, m.Type, m.Base = ExportEnum, t, t
		m.Enum = buildEnum(schema.Enum)
		return m, nil
	}

	switch {
	case len(schemautil.GetSchemaTypes(schema)) > 1 && !schemautil.IsSingleType(schema):
		// OAS 3.1 multi-type: no single Go type fits
		return m, nil
	case oasType == "array" && schema.Items != nil:
		return mb.container(m, ExportArray, schema.Items, source+".items", depth)
	case oasType == "object" && len(schema.Properties) == 0 && schema.AdditionalProperties != nil:
		return mb.container(m, ExportDictionary, schema.AdditionalProperties, source+".additionalProperties", depth)
	case len(schema.AllOf) > 0:
		return mb.allOf(m, schema, source, depth)
	case len(schema.OneOf) > 0:
		return mb.alternatives(m, ExportOneOf, schema.OneOf, source+".oneOf", depth)
	case len(schema.AnyOf) > 0:
		return mb.alternatives(m, ExportAnyOf, schema.AnyOf, source+".anyOf", depth)
	case oasType == "object":
		m.Export = ExportInterface
		acc := newPropertyAccumulator()
		if err := mb.collectProperties(acc, schema, source, depth); err != nil {
			return nil, err
		}
		acc.finish(m)
		return m, nil
	case oasType == "array":
		m.Export = ExportArray
		return m, nil
	default:
		t := primitiveGoType(oasType, schema.Format)
		m.Type, m.Base = t, t
		return m, nil
	}
}

func setReference(m *Model, ref string) {
	t := refTypeName(ref)
	m.Export, m.Type, m.Base = ExportReference, t, t
	m.Imports = []string{t}
}

// applyCommon copies documentation, flags and constraints.
func (mb *modelBuilder) applyCommon(m *Model, s *parser.Schema) {
	m.Description = mb.desc.clean(s.Description)
	m.Deprecated = s.Deprecated
	m.IsReadOnly = s.ReadOnly
	m.IsNullable = schemautil.IsNullable(s) || extensionTrue(s.Extra, "x-nullable")
	m.Format = s.Format
	m.Default = s.Default

	c := &m.Constraints
	c.Maximum, c.Minimum, c.MultipleOf = s.Maximum, s.Minimum, s.MultipleOf
	if exclusive, bound := schemautil.ExclusiveBound(s.ExclusiveMaximum); exclusive {
		c.ExclusiveMaximum = true
		if bound != nil {
			c.Maximum = bound
		}
	}
	if exclusive, bound := schemautil.ExclusiveBound(s.ExclusiveMinimum); exclusive {
		c.ExclusiveMinimum = true
		if bound != nil {
			c.Minimum = bound
		}
	}
	c.MaxLength, c.MinLength, c.Pattern = s.MaxLength, s.MinLength, s.Pattern
	c.MaxItems, c.MinItems, c.UniqueItems = s.MaxItems, s.MinItems, s.UniqueItems
	c.MaxProperties, c.MinProperties = s.MaxProperties, s.MinProperties
}

// container fills an array or dictionary model from its element schema.
func (mb *modelBuilder) container(m *Model, export Export, elem *parser.Schema, source string, depth int) (*Model, error) {
	m.Export = export
	if elem.Ref != "" {
		t := refTypeName(elem.Ref)
		m.Type, m.Base = t, t
		m.Imports = []string{t}
		return m, nil
	}
	link, err := mb.buildDepth(elem, "", source, depth+1)
	if err != nil {
		return nil, err
	}
	m.Type, m.Base, m.Link = link.Type, link.Base, link
	m.Imports = link.Imports
	return m, nil
}

func (mb *modelBuilder) alternatives(m *Model, export Export, members []*parser.Schema, source string, depth int) (*Model, error) {
	m.Export = export
	for i, member := range members {
		alt, err := mb.buildDepth(member, "", fmt.Sprintf("%s[%d]", source, i), depth+1)
		if err != nil {
			return nil, err
		}
		m.Alternatives = append(m.Alternatives, alt)
		m.Imports = appendUnique(m.Imports, alt.Imports...)
	}
	return m, nil
}

// allOf flattens the properties of every member, then the schema's own.
func (mb *modelBuilder) allOf(m *Model, schema *parser.Schema, source string, depth int) (*Model, error) {
	m.Export = ExportAllOf
	acc := newPropertyAccumulator()
	if err := mb.collectProperties(acc, schema, source, depth); err != nil {
		return nil, err
	}
	acc.finish(m)
	return m, nil
}

// propertyAccumulator gathers properties across allOf members. The first
// declaration of a property name wins its slot.
type propertyAccumulator struct {
	props    []*Model
	index    map[string]int
	required map[string]bool
	visited  map[string]bool
}

func newPropertyAccumulator() *propertyAccumulator {
	return &propertyAccumulator{
		index:    make(map[string]int),
		required: make(map[string]bool),
		visited:  make(map[string]bool),
	}
}

func (mb *modelBuilder) collectProperties(acc *propertyAccumulator, schema *parser.Schema, source string, depth int) error {
	if depth > mb.maxDepth {
		return &oaserrors.ResourceLimitError{
			ResourceType: "schema_depth",
			Limit:        int64(mb.maxDepth),
			Message:      "allOf nesting too deep at " + source,
		}
	}
	for _, name := range schema.Required {
		acc.required[name] = true
	}

	for i, member := range schema.AllOf {
		memberSource := fmt.Sprintf("%s.allOf[%d]", source, i)
		if member == nil {
			continue
		}
		if member.Ref != "" {
			if acc.visited[member.Ref] {
				continue
			}
			acc.visited[member.Ref] = true
			target, err := mb.res.schema(member, memberSource)
			if err != nil {
				return err
			}
			member = target
		}
		if err := mb.collectProperties(acc, member, memberSource, depth+1); err != nil {
			return err
		}
	}

	for _, name := range schema.PropertyNames() {
		if _, seen := acc.index[name]; seen {
			continue
		}
		prop, err := mb.buildDepth(schema.Properties[name], name, source+".properties."+name, depth+1)
		if err != nil {
			return err
		}
		acc.index[name] = len(acc.props)
		acc.props = append(acc.props, prop)
	}
	return nil
}

func (acc *propertyAccumulator) finish(m *Model) {
	for _, prop := range acc.props {
		prop.IsRequired = acc.required[prop.Name]
		m.Imports = appendUnique(m.Imports, prop.Imports...)
	}
	m.Properties = acc.props
}

var (
	nonWordRun     = regexp.MustCompile(`\W+`)
	leadingDigits  = regexp.MustCompile(`^(\d+)`)
	camelHump      = regexp.MustCompile(`([a-z])([A-Z]+)`)
	enumNameFilter = regexp.MustCompile(`[^A-Z0-9_]`)
)

// buildEnum turns enum values into named members. Strings become upper snake
// case names; other literals are prefixed with their kind.
func buildEnum(values []any) []Enum {
	out := make([]Enum, 0, len(values))
	for _, v := range values {
		e := Enum{Value: v}
		switch val := v.(type) {
		case string:
			e.Type = "string"
			e.Name = enumConstName(val)
		case bool:
			e.Type = "bool"
			e.Name = strings.ToUpper(fmt.Sprint(val))
		case nil:
			e.Type = anyType
			e.Name = "NULL"
		case int, int64, uint64:
			e.Type = "int64"
			e.Name = numberConstName(val)
		default:
			e.Type = "float64"
			e.Name = numberConstName(val)
		}
		out = append(out, e)
	}
	return out
}

func enumConstName(value string) string {
	name := nonWordRun.ReplaceAllString(value, "_")
	name = leadingDigits.ReplaceAllString(name, "_$1")
	name = camelHump.ReplaceAllString(name, "${1}_$2")
	name = enumNameFilter.ReplaceAllString(strings.ToUpper(name), "_")
	if strings.Trim(name, "_") == "" {
		return "EMPTY"
	}
	return name
}

func numberConstName(v any) string {
	return "NUMBER_" + nonWordRun.ReplaceAllString(fmt.Sprint(v), "_")
}

func extensionTrue(extra map[string]any, key string) bool {
	v, ok := extra[key].(bool)
	return ok && v
}

func appendUnique(dst []string, values ...string) []string {
	for _, v := range values {
		found := false
		for _, existing := range dst {
			if existing == v {
				found = true
				break
			}
		}
		if !found {
			dst = append(dst, v)
		}
	}
	return dst
}
