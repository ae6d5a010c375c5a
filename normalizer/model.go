package normalizer

// Location is where a parameter travels in the HTTP request.
type Location string

const (
	// LocationPath marks a path template parameter
	LocationPath Location = "path"
	// LocationQuery marks a query string parameter
	LocationQuery Location = "query"
	// LocationHeader marks a request header
	LocationHeader Location = "header"
	// LocationForm marks a form field (OAS 2.0 "formData")
	LocationForm Location = "formData"
	// LocationCookie marks a cookie (OAS 3.x only)
	LocationCookie Location = "cookie"
	// LocationBody marks the request body
	LocationBody Location = "body"
)

// Export classifies how a model is emitted by a code generator.
type Export string

const (
	// ExportGeneric is a primitive or otherwise untyped value
	ExportGeneric Export = "generic"
	// ExportArray is a list; Type holds the element type
	ExportArray Export = "array"
	// ExportEnum is a closed set of values listed in Enum
	ExportEnum Export = "enum"
	// ExportDictionary is a string-keyed map; Type holds the value type
	ExportDictionary Export = "dictionary"
	// ExportInterface is an object with Properties
	ExportInterface Export = "interface"
	// ExportReference names another model; Type is its name
	ExportReference Export = "reference"
	// ExportOneOf is a oneOf composition; see Alternatives
	ExportOneOf Export = "one-of"
	// ExportAnyOf is an anyOf composition; see Alternatives
	ExportAnyOf Export = "any-of"
	// ExportAllOf is an allOf composition with flattened Properties
	ExportAllOf Export = "all-of"
)

// Constraints is the validation keyword set carried from a schema or
// parameter onto its model.
type Constraints struct {
	Maximum          *float64 `json:"maximum,omitempty" yaml:"maximum,omitempty"`
	ExclusiveMaximum bool     `json:"exclusiveMaximum,omitempty" yaml:"exclusiveMaximum,omitempty"`
	Minimum          *float64 `json:"minimum,omitempty" yaml:"minimum,omitempty"`
	ExclusiveMinimum bool     `json:"exclusiveMinimum,omitempty" yaml:"exclusiveMinimum,omitempty"`
	MultipleOf       *float64 `json:"multipleOf,omitempty" yaml:"multipleOf,omitempty"`
	MaxLength        *int     `json:"maxLength,omitempty" yaml:"maxLength,omitempty"`
	MinLength        *int     `json:"minLength,omitempty" yaml:"minLength,omitempty"`
	Pattern          string   `json:"pattern,omitempty" yaml:"pattern,omitempty"`
	MaxItems         *int     `json:"maxItems,omitempty" yaml:"maxItems,omitempty"`
	MinItems         *int     `json:"minItems,omitempty" yaml:"minItems,omitempty"`
	UniqueItems      bool     `json:"uniqueItems,omitempty" yaml:"uniqueItems,omitempty"`
	MaxProperties    *int     `json:"maxProperties,omitempty" yaml:"maxProperties,omitempty"`
	MinProperties    *int     `json:"minProperties,omitempty" yaml:"minProperties,omitempty"`
}

// Enum is one member of an enum model.
type Enum struct {
	// Name is an upper snake case constant name derived from the value
	Name string `json:"name" yaml:"name"`
	// Value is the literal as declared in the document
	Value any `json:"value" yaml:"value"`
	// Type is the Go type of Value
	Type        string `json:"type" yaml:"type"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Model is the resolved, flattened view of a schema node.
type Model struct {
	// Name is the property key, definition name or sanitized parameter name
	Name   string `json:"name" yaml:"name"`
	Export Export `json:"export" yaml:"export"`
	// Type is the Go type descriptor; for arrays and dictionaries it is the
	// element type
	Type string `json:"type" yaml:"type"`
	// Base is Type without container or pointer decoration
	Base string `json:"base" yaml:"base"`
	// Link is the element model of an inline array or dictionary
	Link         *Model `json:"link,omitempty" yaml:"link,omitempty"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`
	Deprecated   bool   `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	IsDefinition bool   `json:"isDefinition" yaml:"isDefinition"`
	IsReadOnly   bool   `json:"isReadOnly,omitempty" yaml:"isReadOnly,omitempty"`
	IsRequired   bool   `json:"isRequired" yaml:"isRequired"`
	IsNullable   bool   `json:"isNullable,omitempty" yaml:"isNullable,omitempty"`
	Format       string `json:"format,omitempty" yaml:"format,omitempty"`

	Constraints `yaml:",inline"`

	Default      any      `json:"default,omitempty" yaml:"default,omitempty"`
	Enum         []Enum   `json:"enum,omitempty" yaml:"enum,omitempty"`
	Properties   []*Model `json:"properties,omitempty" yaml:"properties,omitempty"`
	Alternatives []*Model `json:"alternatives,omitempty" yaml:"alternatives,omitempty"`
	// Imports names the models this one refers to
	Imports []string `json:"imports,omitempty" yaml:"imports,omitempty"`
}

// HasProperties reports whether the model is an object with at least one
// property, which is the precondition for exploding it.
func (m *Model) HasProperties() bool {
	return m != nil && len(m.Properties) > 0
}

// Parameter is a canonical operation parameter.
type Parameter struct {
	Model `yaml:",inline"`

	In Location `json:"in" yaml:"in"`
	// Prop is the original key as declared in the document
	Prop string `json:"prop" yaml:"prop"`
	// MediaType is set only on parameters exploded from a request body
	MediaType string `json:"mediaType,omitempty" yaml:"mediaType,omitempty"`
}

// Response is one result of an operation.
type Response struct {
	Model `yaml:",inline"`

	// In is "response" for a body result or "header" for a header result
	In   string `json:"in" yaml:"in"`
	Code int    `json:"code" yaml:"code"`
}

// Response locations.
const (
	ResponseInBody   = "response"
	ResponseInHeader = "header"
)

// OperationError is a documented non-success response.
type OperationError struct {
	Code        int    `json:"code" yaml:"code"`
	Description string `json:"description" yaml:"description"`
}

// Operation is the normalized record of one operation under one tag.
type Operation struct {
	Service     string `json:"service" yaml:"service"`
	Name        string `json:"name" yaml:"name"`
	OperationID string `json:"operationId,omitempty" yaml:"operationId,omitempty"`
	Summary     string `json:"summary,omitempty" yaml:"summary,omitempty"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Deprecated  bool   `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	// Method is the upper case HTTP method
	Method string `json:"method" yaml:"method"`
	// Path is the path template, e.g. "/pets/{id}"
	Path string `json:"path" yaml:"path"`

	Parameters `yaml:",inline"`

	// BodyMediaType is the media type selected for the request body
	BodyMediaType  string            `json:"bodyMediaType,omitempty" yaml:"bodyMediaType,omitempty"`
	Results        []*Response       `json:"results" yaml:"results"`
	Errors         []*OperationError `json:"errors,omitempty" yaml:"errors,omitempty"`
	ResponseHeader string            `json:"responseHeader,omitempty" yaml:"responseHeader,omitempty"`
}

// Service groups the operations of one tag.
type Service struct {
	Name       string       `json:"name" yaml:"name"`
	Operations []*Operation `json:"operations" yaml:"operations"`
	Imports    []string     `json:"imports,omitempty" yaml:"imports,omitempty"`
}
