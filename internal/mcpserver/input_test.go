package mcpserver

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpecInput_ResolveFile(t *testing.T) {
	specCache.reset()
	input := specInput{File: writeSpec(t, petstoreOAS3)}
	result, err := input.resolve()
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", result.Version)
}

func TestSpecInput_ResolveContent(t *testing.T) {
	specCache.reset()
	result, err := specInput{Content: petstoreOAS3}.resolve()
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", result.Version)
}

func TestSpecInput_ResolveSourceCount(t *testing.T) {
	tests := []struct {
		name  string
		input specInput
	}{
		{name: "none provided", input: specInput{}},
		{name: "both provided", input: specInput{File: "foo.yaml", Content: "bar"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.input.resolve()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "exactly one of file or content must be provided")
		})
	}
}

func TestSpecInput_ResolveFileNotFound(t *testing.T) {
	specCache.reset()
	_, err := specInput{File: "/nonexistent/path.yaml"}.resolve()
	assert.Error(t, err)
}

func TestSpecInput_ContentTooLarge(t *testing.T) {
	saved := *cfg
	t.Cleanup(func() { *cfg = saved })
	cfg.MaxInlineSize = 10

	_, err := specInput{Content: petstoreOAS3}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exceeds maximum")
}

func TestSpecCache_HitOnSameContent(t *testing.T) {
	specCache.reset()
	first, err := specInput{Content: petstoreOAS3}.resolve()
	require.NoError(t, err)
	second, err := specInput{Content: petstoreOAS3}.resolve()
	require.NoError(t, err)
	assert.Same(t, first, second)
	assert.Equal(t, 1, specCache.size())
}

func TestSpecCache_FileModTimeInvalidates(t *testing.T) {
	specCache.reset()
	path := writeSpec(t, petstoreOAS3)
	first, err := specInput{File: path}.resolve()
	require.NoError(t, err)

	later := time.Now().Add(time.Hour)
	require.NoError(t, os.Chtimes(path, later, later))
	second, err := specInput{File: path}.resolve()
	require.NoError(t, err)

	assert.NotSame(t, first, second)
	assert.Equal(t, 2, specCache.size())
}

func TestSpecCache_Disabled(t *testing.T) {
	saved := *cfg
	t.Cleanup(func() { *cfg = saved })
	cfg.CacheEnabled = false
	specCache.reset()

	_, err := specInput{Content: petstoreOAS3}.resolve()
	require.NoError(t, err)
	assert.Equal(t, 0, specCache.size())
}

func TestSpecCache_EvictsOldest(t *testing.T) {
	c := &specCacheStore{entries: make(map[string]*cacheEntry), maxSize: 2}
	c.putWithTTL("a", nil, time.Minute)
	time.Sleep(time.Millisecond)
	c.putWithTTL("b", nil, time.Minute)
	time.Sleep(time.Millisecond)
	c.putWithTTL("c", nil, time.Minute)

	assert.Equal(t, 2, c.size())
	c.mu.Lock()
	_, hasA := c.entries["a"]
	c.mu.Unlock()
	assert.False(t, hasA)
}

func TestSpecCache_Sweep(t *testing.T) {
	c := &specCacheStore{entries: make(map[string]*cacheEntry), maxSize: 4}
	c.putWithTTL("stale", nil, time.Nanosecond)
	c.putWithTTL("fresh", nil, time.Hour)
	time.Sleep(time.Millisecond)

	c.sweep()
	assert.Equal(t, 1, c.size())
}

func TestMakeCacheKey(t *testing.T) {
	assert.Empty(t, makeCacheKey(specInput{}))
	assert.Empty(t, makeCacheKey(specInput{File: "/does/not/exist.yaml"}))
	key := makeCacheKey(specInput{Content: "x"})
	assert.Equal(t, key, makeCacheKey(specInput{Content: "x"}))
	assert.NotEqual(t, key, makeCacheKey(specInput{Content: "y"}))
}
