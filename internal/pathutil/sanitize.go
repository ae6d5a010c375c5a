package pathutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrOverwritesInput is returned by ResolveOutput when the output path names
// the input document.
var ErrOverwritesInput = errors.New("pathutil: output would overwrite input")

// SanitizeOutputPath validates and cleans an output file path.
// It resolves ".." components via filepath.Clean + filepath.Abs and
// rejects paths that resolve to symlinks. New files in existing
// directories are accepted. Returns the cleaned absolute path.
func SanitizeOutputPath(path string) (string, error) {
	abs, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("pathutil: cannot resolve absolute path: %w", err)
	}

	info, err := os.Lstat(abs)
	switch {
	case err == nil:
		if info.Mode()&os.ModeSymlink != 0 {
			return "", fmt.Errorf("pathutil: refusing to write to symlink: %s", abs)
		}
	case os.IsNotExist(err):
		// New file, nothing to check.
	default:
		return "", fmt.Errorf("pathutil: cannot stat path: %w", err)
	}

	return abs, nil
}

// ResolveOutput sanitizes the output path of a normalization run and
// rejects it when it resolves to the same file as input. An input that
// cannot be resolved, such as "-" for stdin, never collides.
func ResolveOutput(output, input string) (string, error) {
	cleaned, err := SanitizeOutputPath(output)
	if err != nil {
		return "", err
	}
	if input == "" || input == "-" {
		return cleaned, nil
	}
	in, err := filepath.Abs(filepath.Clean(input))
	if err != nil {
		return cleaned, nil
	}
	if in == cleaned {
		return "", fmt.Errorf("%w: %s", ErrOverwritesInput, input)
	}
	// Distinct names can still share a file through a hard link or a
	// symlinked directory.
	outInfo, outErr := os.Stat(cleaned)
	inInfo, inErr := os.Stat(in)
	if outErr == nil && inErr == nil && os.SameFile(outInfo, inInfo) {
		return "", fmt.Errorf("%w: %s", ErrOverwritesInput, input)
	}
	return cleaned, nil
}
