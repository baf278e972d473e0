package testhelpers

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteHeadFile creates <root>/.git/HEAD with the given content, without
// running git. It returns the path of the HEAD file.
func WriteHeadFile(t *testing.T, root, content string) string {
	t.Helper()

	gitDir := filepath.Join(root, ".git")
	if err := os.MkdirAll(gitDir, 0750); err != nil {
		t.Fatalf("Failed to create %s: %v", gitDir, err)
	}
	headPath := filepath.Join(gitDir, "HEAD")
	if err := os.WriteFile(headPath, []byte(content), 0600); err != nil {
		t.Fatalf("Failed to write %s: %v", headPath, err)
	}
	return headPath
}

// MkdirAll creates a directory tree below root and returns its path.
func MkdirAll(t *testing.T, root string, elem ...string) string {
	t.Helper()

	dir := filepath.Join(append([]string{root}, elem...)...)
	if err := os.MkdirAll(dir, 0750); err != nil {
		t.Fatalf("Failed to create %s: %v", dir, err)
	}
	return dir
}
