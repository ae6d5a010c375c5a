package parser

// Parameter describes a single operation parameter
type Parameter struct {
	Ref string `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	// Name and In are empty when the parameter is a $ref; the referenced
	// definition carries them.
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
	In          string `yaml:"in,omitempty" json:"in,omitempty"` // "query", "header", "path", "cookie" (OAS 3.0+), "formData", "body" (OAS 2.0)
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool   `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"` // OAS 3.0+

	// OAS 3.0+ fields; Schema is also used by OAS 2.0 body parameters
	Style   string                `yaml:"style,omitempty" json:"style,omitempty"`
	Explode *bool                 `yaml:"explode,omitempty" json:"explode,omitempty"`
	Schema  *Schema               `yaml:"schema,omitempty" json:"schema,omitempty"`
	Example any                   `yaml:"example,omitempty" json:"example,omitempty"`
	Content map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`

	// OAS 2.0 fields
	Type             string `yaml:"type,omitempty" json:"type,omitempty"`
	Format           string `yaml:"format,omitempty" json:"format,omitempty"`
	AllowEmptyValue  bool   `yaml:"allowEmptyValue,omitempty" json:"allowEmptyValue,omitempty"`
	Items            *Items `yaml:"items,omitempty" json:"items,omitempty"`
	CollectionFormat string `yaml:"collectionFormat,omitempty" json:"collectionFormat,omitempty"`
	Validations      `yaml:",inline"`

	// Extra captures specification extensions (fields starting with "x-")
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Items represents items object for array parameters (OAS 2.0)
type Items struct {
	Type             string `yaml:"type" json:"type"`
	Format           string `yaml:"format,omitempty" json:"format,omitempty"`
	Items            *Items `yaml:"items,omitempty" json:"items,omitempty"`
	CollectionFormat string `yaml:"collectionFormat,omitempty" json:"collectionFormat,omitempty"`
	Validations      `yaml:",inline"`
	Extra            map[string]any `yaml:",inline" json:"-"`
}

// RequestBody describes a single request body (OAS 3.0+)
type RequestBody struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	// Extra captures specification extensions such as "x-body-name"
	Extra map[string]any `yaml:",inline" json:"-"`
}

// Header represents a header object
type Header struct {
	Ref         string                `yaml:"$ref,omitempty" json:"$ref,omitempty"`
	Description string                `yaml:"description,omitempty" json:"description,omitempty"`
	Required    bool                  `yaml:"required,omitempty" json:"required,omitempty"`
	Deprecated  bool                  `yaml:"deprecated,omitempty" json:"deprecated,omitempty"` // OAS 3.0+
	Schema      *Schema               `yaml:"schema,omitempty" json:"schema,omitempty"`         // OAS 3.0+
	Content     map[string]*MediaType `yaml:"content,omitempty" json:"content,omitempty"`       // OAS 3.0+

	// OAS 2.0 fields
	Type        string `yaml:"type,omitempty" json:"type,omitempty"`
	Format      string `yaml:"format,omitempty" json:"format,omitempty"`
	Items       *Items `yaml:"items,omitempty" json:"items,omitempty"`
	Validations `yaml:",inline"`

	Extra map[string]any `yaml:",inline" json:"-"`
}

// Extension returns the value of the specification extension key (which
// should include the "x-" prefix) and whether it was present.
func (p *Parameter) Extension(key string) (any, bool) {
	return extension(p.Extra, key)
}

// Extension returns the value of the specification extension key and whether
// it was present.
func (rb *RequestBody) Extension(key string) (any, bool) {
	return extension(rb.Extra, key)
}

func extension(extra map[string]any, key string) (any, bool) {
	if extra == nil {
		return nil, false
	}
	v, ok := extra[key]
	return v, ok
}
