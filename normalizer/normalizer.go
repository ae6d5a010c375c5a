package normalizer

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/erraggy/oasnormalize/oaserrors"
	"github.com/erraggy/oasnormalize/parser"
	"github.com/erraggy/oasnormalize/validator"
)

// DefaultVersionMarker is the name of the API version parameter that is
// left out of every operation; clients fill it in themselves.
const DefaultVersionMarker = "api-version"

// NormalizeResult contains the normalized operations of one document.
type NormalizeResult struct {
	// SourcePath is the document's input source path
	SourcePath string `json:"sourcePath" yaml:"sourcePath"`
	// Version is the declared OAS version string
	Version string `json:"version" yaml:"version"`
	// OASVersion is the enumerated OAS version
	OASVersion parser.OASVersion `json:"-" yaml:"-"`
	// Services groups the operations by tag, sorted by name
	Services []*Service `json:"services" yaml:"services"`
	// OperationCount is the number of operation records across services
	OperationCount int `json:"operationCount" yaml:"operationCount"`
	// Warnings lists parts of the document that were skipped
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// Operations returns every operation record in service order.
func (r *NormalizeResult) Operations() []*Operation {
	ops := make([]*Operation, 0, r.OperationCount)
	for _, svc := range r.Services {
		ops = append(ops, svc.Operations...)
	}
	return ops
}

// Normalizer converts parsed documents into operation records. It holds
// configuration only and may be shared between goroutines.
type Normalizer struct {
	// VersionMarker names the parameter excluded from every operation.
	// Empty disables the exclusion.
	VersionMarker string
	// StripHTML removes HTML markup from descriptions and summaries
	StripHTML bool
	// Validate runs kin-openapi validation before normalizing and fails on
	// any finding
	Validate bool
	// MaxSchemaDepth bounds schema nesting; zero means DefaultMaxSchemaDepth
	MaxSchemaDepth int
	// Logger receives diagnostic output. Nil means parser.NopLogger.
	Logger parser.Logger
}

// New creates a new Normalizer instance with default settings
func New() *Normalizer {
	return &Normalizer{
		VersionMarker:  DefaultVersionMarker,
		MaxSchemaDepth: DefaultMaxSchemaDepth,
	}
}

func (n *Normalizer) log() parser.Logger {
	if n.Logger == nil {
		return parser.NopLogger{}
	}
	return n.Logger
}

// Normalize walks every operation of a parsed document. Paths are visited
// in sorted order and methods in [parser.Methods] order; an operation is
// recorded once per tag. A reference that cannot be resolved aborts the
// call with an error naming the operation.
func (n *Normalizer) Normalize(ctx context.Context, pr *parser.ParseResult) (*NormalizeResult, error) {
	if pr == nil || pr.Document == nil {
		return nil, &oaserrors.ConfigError{Option: "parse result", Message: "a parsed document is required"}
	}
	if n.Validate {
		v := validator.New()
		v.Logger = n.log()
		vr, err := v.ValidateParsed(ctx, pr)
		if err != nil {
			return nil, fmt.Errorf("normalizer: %w", err)
		}
		if err := vr.Err(); err != nil {
			return nil, fmt.Errorf("normalizer: %w", err)
		}
	}

	result := &NormalizeResult{
		SourcePath: pr.SourcePath,
		Version:    pr.Version,
		OASVersion: pr.OASVersion,
		Warnings:   slices.Clone(pr.Warnings),
	}
	if !n.Validate {
		for _, e := range pr.Errors {
			result.Warnings = append(result.Warnings, e.Error())
		}
	}

	s := n.newSession(pr.Document)
	var (
		ops []*Operation
		err error
	)
	switch doc := pr.Document.(type) {
	case *parser.OAS2Document:
		ops, err = s.walk(ctx, doc.Paths, s.aggregateOAS2PathParameters, s.assembleOAS2Operation, result)
	case *parser.OAS3Document:
		if len(doc.Webhooks) > 0 {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%d webhook(s) skipped", len(doc.Webhooks)))
		}
		ops, err = s.walk(ctx, doc.Paths, s.aggregateOAS3PathParameters, s.assembleOAS3Operation, result)
	default:
		return nil, fmt.Errorf("normalizer: unsupported document type %T", pr.Document)
	}
	if err != nil {
		return nil, fmt.Errorf("normalizer: %w", err)
	}

	result.Services = groupServices(ops)
	result.OperationCount = len(ops)
	n.log().Debug("normalized document",
		"source", pr.SourcePath,
		"services", len(result.Services),
		"operations", result.OperationCount)
	return result, nil
}

type (
	pathAggregator func(decls []*parser.Parameter, source string) (Parameters, error)
	assembler      func(path, method, tag string, op *parser.Operation, inherited Parameters) (*Operation, error)
)

func (s *session) aggregateOAS2PathParameters(decls []*parser.Parameter, source string) (Parameters, error) {
	return s.aggregateOAS2Parameters(decls, source)
}

func (s *session) aggregateOAS3PathParameters(decls []*parser.Parameter, source string) (Parameters, error) {
	return s.aggregateOAS3Parameters(decls, source)
}

// walk aggregates the path-level parameters of each path once and
// assembles each of its operations under every tag.
func (s *session) walk(ctx context.Context, paths parser.Paths, aggregate pathAggregator, assemble assembler, result *NormalizeResult) ([]*Operation, error) {
	patterns := make([]string, 0, len(paths))
	for pattern := range paths {
		patterns = append(patterns, pattern)
	}
	slices.Sort(patterns)

	ops := make([]*Operation, 0)
	for _, pattern := range patterns {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		item := paths[pattern]
		if item == nil {
			continue
		}
		if item.Ref != "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("paths.%s: path item reference %s skipped", pattern, item.Ref))
			continue
		}
		inherited, err := aggregate(item.Parameters, "paths."+pattern)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", pattern, err)
		}
		for _, method := range parser.Methods {
			op := item.Operation(method)
			if op == nil {
				continue
			}
			for _, tag := range operationTags(op) {
				rec, err := assemble(pattern, method, tag, op, inherited)
				if err != nil {
					return nil, err
				}
				ops = append(ops, rec)
			}
		}
	}
	return ops, nil
}

// operationTags returns the distinct tags of op, or the default service
// when it has none.
func operationTags(op *parser.Operation) []string {
	tags := make([]string, 0, len(op.Tags))
	for _, tag := range op.Tags {
		if !slices.Contains(tags, tag) {
			tags = append(tags, tag)
		}
	}
	if len(tags) == 0 {
		tags = append(tags, DefaultServiceName)
	}
	return tags
}

// groupServices collects operations by service. Services are sorted by
// name; within a service, operations keep walk order and a repeated name
// gets a numeric suffix (getPet, getPet1, getPet2).
func groupServices(ops []*Operation) []*Service {
	byName := make(map[string]*Service)
	seen := make(map[string]map[string]int)
	for _, op := range ops {
		svc, ok := byName[op.Service]
		if !ok {
			svc = &Service{Name: op.Service, Operations: []*Operation{}, Imports: []string{}}
			byName[op.Service] = svc
			seen[op.Service] = make(map[string]int)
		}
		names := seen[op.Service]
		if count := names[op.Name]; count > 0 {
			names[op.Name]++
			op.Name += strconv.Itoa(count)
		} else {
			names[op.Name] = 1
		}
		svc.Operations = append(svc.Operations, op)
		svc.Imports = append(svc.Imports, op.Imports...)
	}

	services := make([]*Service, 0, len(byName))
	for _, svc := range byName {
		svc.Imports = uniqueSorted(svc.Imports)
		services = append(services, svc)
	}
	slices.SortFunc(services, func(a, b *Service) int {
		switch {
		case a.Name < b.Name:
			return -1
		case a.Name > b.Name:
			return 1
		}
		return 0
	})
	return services
}

func uniqueSorted(values []string) []string {
	out := slices.Clone(values)
	slices.Sort(out)
	return slices.Compact(out)
}
