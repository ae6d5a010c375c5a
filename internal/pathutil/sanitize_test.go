package pathutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeOutputPath(t *testing.T) {
	t.Run("existing file accepted", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "operations.json")
		require.NoError(t, os.WriteFile(target, []byte("{}"), 0o600))

		got, err := SanitizeOutputPath(target)
		require.NoError(t, err)
		assert.Equal(t, target, got)
	})

	t.Run("new file in existing directory accepted", func(t *testing.T) {
		target := filepath.Join(t.TempDir(), "operations.yaml")

		got, err := SanitizeOutputPath(target)
		require.NoError(t, err)
		assert.Equal(t, target, got)
	})

	t.Run("relative path made absolute", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)

		got, err := SanitizeOutputPath("./out/../operations.json")
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(got), "expected absolute path, got %s", got)
		assert.Equal(t, "operations.json", filepath.Base(got))
	})

	t.Run("symlink file rejected", func(t *testing.T) {
		dir := t.TempDir()
		realFile := filepath.Join(dir, "real.json")
		link := filepath.Join(dir, "link.json")
		require.NoError(t, os.WriteFile(realFile, []byte("{}"), 0o600))
		require.NoError(t, os.Symlink(realFile, link))

		_, err := SanitizeOutputPath(link)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "symlink")
	})

	t.Run("symlink directory rejected", func(t *testing.T) {
		dir := t.TempDir()
		realDir := filepath.Join(dir, "realdir")
		linkDir := filepath.Join(dir, "linkdir")
		require.NoError(t, os.Mkdir(realDir, 0o755))
		require.NoError(t, os.Symlink(realDir, linkDir))

		_, err := SanitizeOutputPath(linkDir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "symlink")
	})
}

func TestResolveOutput(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "petstore.yaml")
	require.NoError(t, os.WriteFile(input, []byte("swagger: \"2.0\"\n"), 0o600))
	hardLink := filepath.Join(dir, "petstore-link.yaml")
	require.NoError(t, os.Link(input, hardLink))
	t.Chdir(dir)

	tests := []struct {
		name    string
		output  string
		input   string
		want    string
		wantErr bool
	}{
		{name: "distinct file", output: filepath.Join(dir, "ops.json"), input: input, want: filepath.Join(dir, "ops.json")},
		{name: "stdin input never collides", output: filepath.Join(dir, "ops.json"), input: "-", want: filepath.Join(dir, "ops.json")},
		{name: "same absolute path", output: input, input: input, wantErr: true},
		{name: "relative output names input", output: "petstore.yaml", input: input, wantErr: true},
		{name: "relative input names output", output: input, input: "./sub/../petstore.yaml", wantErr: true},
		{name: "hard link to input", output: hardLink, input: input, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveOutput(tt.output, tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrOverwritesInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
