package testhelpers

import (
	"path/filepath"
	"testing"
)

// Scene represents a test scene with a temporary directory and Git repository.
// The process working directory is switched to Dir for the duration of the test.
type Scene struct {
	Dir  string
	Repo *GitRepo
}

// SceneSetup is a function type for setting up a scene.
type SceneSetup func(*Scene) error

// NewScene creates a new test scene with a temporary directory and Git repository.
// It uses t.Chdir, so tests using it cannot run in parallel.
func NewScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	scene := newScene(t, setup)
	t.Chdir(scene.Dir)
	return scene
}

// NewSceneParallel creates a scene without changing the working directory.
func NewSceneParallel(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()
	return newScene(t, setup)
}

func newScene(t *testing.T, setup SceneSetup) *Scene {
	t.Helper()

	// Normalize path (on macOS /var is symlinked to /private/var)
	tmpDir, err := filepath.EvalSymlinks(t.TempDir())
	if err != nil {
		t.Fatalf("Failed to resolve temp dir: %v", err)
	}

	repo, err := NewGitRepo(tmpDir)
	if err != nil {
		t.Fatalf("Failed to create Git repo: %v", err)
	}

	scene := &Scene{
		Dir:  tmpDir,
		Repo: repo,
	}

	if setup != nil {
		if err := setup(scene); err != nil {
			t.Fatalf("Setup failed: %v", err)
		}
	}

	return scene
}

// BasicSceneSetup is a setup function that creates a basic scene with a single commit.
func BasicSceneSetup(scene *Scene) error {
	return scene.Repo.CreateChangeAndCommit("1", "1")
}
