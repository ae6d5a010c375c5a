package parser

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasnormalize/oaserrors"
)

// SourceFormat is the serialization format of a parsed document.
type SourceFormat string

const (
	// SourceFormatYAML marks a YAML source
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON marks a JSON source
	SourceFormatJSON SourceFormat = "json"
)

// Parser handles OpenAPI specification parsing
type Parser struct {
	// ValidateStructure enables the light structural checks performed after
	// decoding; problems are reported in ParseResult.Errors.
	ValidateStructure bool
	// Logger receives diagnostic output. Nil means NopLogger.
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{ValidateStructure: true}
}

func (p *Parser) log() Logger {
	if p.Logger == nil {
		return NopLogger{}
	}
	return p.Logger
}

// ParseResult contains the parsed OpenAPI specification and metadata.
type ParseResult struct {
	// SourcePath is the document's input source path that it was read from.
	// For in-memory sources it names the entry point, e.g. "ParseBytes.yaml".
	SourcePath string
	// SourceFormat is the format of the source data (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the declared OAS version string (e.g., "2.0", "3.0.3")
	Version string
	// Document contains the version-specific parsed document:
	// - *OAS2Document for OpenAPI 2.0
	// - *OAS3Document for OpenAPI 3.x
	Document any
	// Errors contains structural problems found in the document
	Errors []error
	// Warnings contains non-fatal issues
	Warnings []string
	// OASVersion is the enumerated version of the OpenAPI specification
	OASVersion OASVersion
	// LoadTime is the time taken to read and decode the source data
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Raw holds the unmodified source bytes
	Raw []byte `json:"-"`
}

// OAS2Document returns the parsed document as an OAS2Document if the specification
// is version 2.0 (Swagger), and a boolean indicating whether the type assertion succeeded.
func (pr *ParseResult) OAS2Document() (*OAS2Document, bool) {
	if pr == nil {
		return nil, false
	}
	doc, ok := pr.Document.(*OAS2Document)
	return doc, ok
}

// OAS3Document returns the parsed document as an OAS3Document if the specification
// is version 3.x, and a boolean indicating whether the type assertion succeeded.
func (pr *ParseResult) OAS3Document() (*OAS3Document, bool) {
	if pr == nil {
		return nil, false
	}
	doc, ok := pr.Document.(*OAS3Document)
	return doc, ok
}

// IsOAS2 reports whether the parsed document is OAS 2.0.
func (pr *ParseResult) IsOAS2() bool {
	return pr != nil && pr.OASVersion.IsOAS2()
}

// IsOAS3 reports whether the parsed document is OAS 3.x.
func (pr *ParseResult) IsOAS3() bool {
	return pr != nil && pr.OASVersion.IsOAS3()
}

// Parse parses an OpenAPI specification file
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	start := time.Now()
	data, err := os.ReadFile(specPath)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: specPath, Message: "failed to read file", Cause: err}
	}
	result, err := p.parse(data, specPath)
	if err != nil {
		return nil, err
	}
	result.LoadTime = time.Since(start)
	return result, nil
}

// ParseReader parses an OpenAPI specification from an io.Reader
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	start := time.Now()
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: "ParseReader", Message: "failed to read data", Cause: err}
	}
	result, err := p.parse(data, "")
	if err != nil {
		return nil, err
	}
	result.SourcePath = "ParseReader." + string(result.SourceFormat)
	result.LoadTime = time.Since(start)
	return result, nil
}

// ParseBytes parses an OpenAPI specification from a byte slice
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	start := time.Now()
	result, err := p.parse(data, "")
	if err != nil {
		return nil, err
	}
	result.SourcePath = "ParseBytes." + string(result.SourceFormat)
	result.LoadTime = time.Since(start)
	return result, nil
}

func (p *Parser) parse(data []byte, sourcePath string) (*ParseResult, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &oaserrors.ParseError{Path: sourcePath, Message: "document is empty"}
	}

	result := &ParseResult{
		SourcePath:   sourcePath,
		SourceFormat: detectFormat(data),
		SourceSize:   int64(len(data)),
		Raw:          data,
	}

	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &oaserrors.ParseError{Path: sourcePath, Message: "failed to decode document", Cause: err}
	}
	node := &root
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return nil, &oaserrors.ParseError{Path: sourcePath, Message: "document root must be a mapping"}
	}

	version, err := detectVersion(node)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: sourcePath, Message: "version detection", Cause: err}
	}
	result.Version = version

	doc, oasVersion, err := p.parseVersionSpecific(node, version)
	if err != nil {
		return nil, &oaserrors.ParseError{Path: sourcePath, Message: "failed to parse document structure", Cause: err}
	}
	result.Document = doc
	result.OASVersion = oasVersion

	p.log().Debug("parsed document",
		"source", sourcePath,
		"version", version,
		"format", string(result.SourceFormat),
		"bytes", result.SourceSize)

	if p.ValidateStructure {
		result.Errors = p.validateStructure(result)
	}
	return result, nil
}

func detectFormat(data []byte) SourceFormat {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return SourceFormatJSON
	}
	return SourceFormatYAML
}

// detectVersion reads the "swagger" or "openapi" root field.
func detectVersion(node *yaml.Node) (string, error) {
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i].Value, node.Content[i+1]
		if (key == "swagger" || key == "openapi") && val.Kind == yaml.ScalarNode {
			return val.Value, nil
		}
	}
	return "", fmt.Errorf("unable to detect OpenAPI version: document must contain either 'swagger: \"2.0\"' (for OAS 2.0) or 'openapi: \"3.x.x\"' (for OAS 3.x) at the root level")
}

// parseVersionSpecific decodes the node into a version-specific structure
func (p *Parser) parseVersionSpecific(node *yaml.Node, version string) (any, OASVersion, error) {
	v, ok := ParseVersion(version)
	if !ok {
		return nil, Unknown, fmt.Errorf("unsupported OpenAPI version: %s (only 2.0 and 3.x versions are supported)", version)
	}
	if v.IsOAS2() {
		var doc OAS2Document
		if err := node.Decode(&doc); err != nil {
			return nil, Unknown, fmt.Errorf("oas 2.0: %w", err)
		}
		doc.OASVersion = v
		return &doc, v, nil
	}

	var doc OAS3Document
	if err := node.Decode(&doc); err != nil {
		return nil, Unknown, fmt.Errorf("oas %s: %w", version, err)
	}
	doc.OASVersion = v
	return &doc, v, nil
}
