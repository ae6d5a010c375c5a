// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasnormalize capabilities as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasnormalize"
)

const serverInstructions = `oasnormalize MCP server. Normalizes the operations of an OpenAPI 2.0 or 3.x document into per-service parameter buckets for client generation, and validates documents.

Configuration: all defaults are configurable via OASNORMALIZE_* environment variables set in your MCP client config.

Key settings:
- OASNORMALIZE_CACHE_ENABLED (default: true) disables spec caching entirely
- OASNORMALIZE_CACHE_FILE_TTL (default: 15m) is the cache TTL for local file specs
- OASNORMALIZE_CACHE_CONTENT_TTL (default: 15m) is the cache TTL for inline content
- OASNORMALIZE_OPERATION_LIMIT (default: 50) is the default page size of normalize
- OASNORMALIZE_VERSION_MARKER (default: api-version) is the parameter left out of every operation
- OASNORMALIZE_STRIP_HTML (default: false) strips HTML from descriptions
- OASNORMALIZE_VALIDATE (default: false) validates before normalizing

Caching: parsed specs are cached per session. File entries use path+mtime as key, so they are invalidated on change.`

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	if cfg.CacheEnabled {
		specCache.startSweeper(ctx, cfg.CacheSweepInterval)
	}

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasnormalize", Version: oasnormalize.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "normalize",
		Description: "Normalize the operations of an OpenAPI 2.0 or 3.x document. Returns one summary per operation: service, name, method, path, parameters grouped by location (path, query, header, cookie, form, body), exploded body properties and result types. Filter by service to narrow large APIs. Use offset/limit to paginate; the default limit is configurable via OASNORMALIZE_OPERATION_LIMIT.",
	}, handleNormalize)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "validate",
		Description: "Validate an OpenAPI Specification document against its version rules. Returns the error messages found. Use offset/limit to paginate through errors.",
	}, handleValidate)
}

// paginate applies offset/limit pagination to a slice, returning the
// requested page. A non-positive limit defaults to cfg.OperationLimit.
func paginate[T any](items []T, offset, limit int) []T {
	if limit <= 0 {
		limit = cfg.OperationLimit
	}
	if limit > cfg.MaxLimit {
		limit = cfg.MaxLimit
	}
	if offset < 0 || offset >= len(items) {
		return nil
	}
	end := offset + limit
	if end < offset || end > len(items) { // overflow or beyond slice
		end = len(items)
	}
	return items[offset:end]
}

// makeSlice returns nil when n is 0 (preserving omitempty JSON semantics),
// otherwise returns make([]T, 0, n) for pre-allocated appending.
func makeSlice[T any](n int) []T {
	if n == 0 {
		return nil
	}
	return make([]T, 0, n)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
