package testing_util

import (
	"os"
	"path/filepath"
	"testing"
)

func MkdirTemp(t *testing.T, prefix string) (path string, cleanup func()) {
	out, err := os.MkdirTemp(os.TempDir(), prefix)
	if err != nil {
		t.Fatalf("failed to create temporary directory: %v", err)
	}

	return out, func() {
		os.RemoveAll(out)
	}
}

// WriteFile writes contents to dir/name and returns the full path.
func WriteFile(t *testing.T, dir, name, contents string) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("failed to write %q: %v", path, err)
	}
	return path
}
