package testhelpers

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sync"
	"testing"
)

var (
	sharedBinaryPath string
	binaryOnce       sync.Once
	binaryErr        error
)

// GetSharedBinaryPath returns the gitprompt binary path, building it on first use.
func GetSharedBinaryPath() string {
	binaryOnce.Do(func() {
		if sharedBinaryPath != "" {
			return
		}
		path, err := buildBinary()
		if err != nil {
			binaryErr = err
			return
		}
		sharedBinaryPath = path
	})
	return sharedBinaryPath
}

// GetBinaryError returns any error that occurred during binary building.
func GetBinaryError() error {
	return binaryErr
}

// TestMain builds the gitprompt binary once, runs the package's tests, and
// removes the binary afterwards.
func TestMain(m *testing.M) {
	path := GetSharedBinaryPath()
	if path == "" {
		fmt.Fprintf(os.Stderr, "Failed to build gitprompt binary: %v\n", binaryErr)
		os.Exit(1)
	}

	code := m.Run()

	_ = os.RemoveAll(filepath.Dir(path))
	os.Exit(code)
}

// buildBinary builds ./cmd/gitprompt into a temp directory and returns its path.
func buildBinary() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}

	moduleRoot := findModuleRoot(wd)
	if moduleRoot == "" {
		return "", fmt.Errorf("could not find module root (go.mod) starting from %s", wd)
	}

	tmpDir, err := os.MkdirTemp("", "gitprompt-test-binary-*")
	if err != nil {
		return "", fmt.Errorf("failed to create temp directory: %w", err)
	}

	binaryPath := filepath.Join(tmpDir, "gitprompt")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/gitprompt")
	cmd.Dir = moduleRoot
	if output, err := cmd.CombinedOutput(); err != nil {
		_ = os.RemoveAll(tmpDir)
		return "", fmt.Errorf("failed to build: %s: %w", string(output), err)
	}

	return binaryPath, nil
}

// findModuleRoot walks up from startDir to the directory containing go.mod.
func findModuleRoot(startDir string) string {
	dir := startDir
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
