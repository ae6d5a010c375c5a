package mcpserver

import (
	"errors"
	"math"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	items := []int{0, 1, 2, 3, 4}

	tests := []struct {
		name   string
		items  []int
		offset int
		limit  int
		want   []int
	}{
		{name: "default limit returns all when under default", items: items, want: []int{0, 1, 2, 3, 4}},
		{name: "explicit limit", items: items, limit: 2, want: []int{0, 1}},
		{name: "offset only", items: items, offset: 2, want: []int{2, 3, 4}},
		{name: "offset and limit", items: items, offset: 1, limit: 2, want: []int{1, 2}},
		{name: "offset at end", items: items, offset: 4, limit: 2, want: []int{4}},
		{name: "offset beyond end", items: items, offset: 5, limit: 2, want: nil},
		{name: "negative offset", items: items, offset: -1, limit: 2, want: nil},
		{name: "limit exceeds remaining", items: items, offset: 3, limit: 10, want: []int{3, 4}},
		{name: "nil slice", items: nil, want: nil},
		{name: "huge limit does not overflow", items: items, offset: 1, limit: math.MaxInt, want: []int{1, 2, 3, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, paginate(tt.items, tt.offset, tt.limit))
		})
	}
}

func TestPaginateCapsAtMaxLimit(t *testing.T) {
	saved := *cfg
	t.Cleanup(func() { *cfg = saved })
	cfg.MaxLimit = 3

	got := paginate([]int{0, 1, 2, 3, 4}, 0, 100)
	assert.Equal(t, []int{0, 1, 2}, got)
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[string](0))
	s := makeSlice[string](4)
	assert.NotNil(t, s)
	assert.Empty(t, s)
	assert.Equal(t, 4, cap(s))
}

func TestSanitizeError(t *testing.T) {
	assert.Empty(t, sanitizeError(nil))
	got := sanitizeError(errors.New("open /home/alice/specs/api.yaml: no such file"))
	assert.Equal(t, "open <path>: no such file", got)
}

func TestErrResult(t *testing.T) {
	res := errResult(errors.New("failed reading /tmp/x.yaml"))
	require.NotNil(t, res)
	assert.True(t, res.IsError)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "failed reading <path>", text.Text)
}

func TestRegisterAllTools(t *testing.T) {
	server := mcp.NewServer(&mcp.Implementation{Name: "test", Version: "0"}, nil)
	assert.NotPanics(t, func() { registerAllTools(server) })
}
