package normalizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasnormalize/parser"
)

func parseDoc(t *testing.T, doc string) *parser.ParseResult {
	t.Helper()
	pr, err := parser.ParseWithOptions(parser.WithBytes([]byte(doc)))
	require.NoError(t, err)
	return pr
}

func newTestSession(t *testing.T, doc string) *session {
	t.Helper()
	return New().newSession(parseDoc(t, doc).Document)
}

func normalizeDoc(t *testing.T, doc string) *NormalizeResult {
	t.Helper()
	result, err := New().Normalize(context.Background(), parseDoc(t, doc))
	require.NoError(t, err)
	return result
}

// findOperation returns the first record for method and path.
func findOperation(t *testing.T, result *NormalizeResult, method, path string) *Operation {
	t.Helper()
	for _, op := range result.Operations() {
		if op.Method == method && op.Path == path {
			return op
		}
	}
	require.Failf(t, "operation not found", "%s %s", method, path)
	return nil
}

func names(params []*Parameter) []string {
	out := make([]string, 0, len(params))
	for _, p := range params {
		out = append(out, p.Name)
	}
	return out
}

func props(params []*Parameter) []string {
	out := make([]string, 0, len(params))
	for _, p := range params {
		out = append(out, p.Prop)
	}
	return out
}
