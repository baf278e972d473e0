package testhelpers_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"gitprompt.dev/gitprompt/testhelpers"
)

func TestSceneBasics(t *testing.T) {
	scene := testhelpers.NewScene(t, testhelpers.BasicSceneSetup)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.Equal(t, scene.Dir, wd)

	branch, err := scene.Repo.RunGitCommandAndGetOutput("rev-parse", "--abbrev-ref", "HEAD")
	require.NoError(t, err)
	require.Equal(t, "main", branch)

	_, err = os.Stat(filepath.Join(scene.Repo.MetadataDir(), "HEAD"))
	require.NoError(t, err)
}

func TestGitRepoDetached(t *testing.T) {
	t.Parallel()

	scene := testhelpers.NewSceneParallel(t, testhelpers.BasicSceneSetup)

	sha, err := scene.Repo.GetCurrentSHA()
	require.NoError(t, err)
	require.NoError(t, scene.Repo.CheckoutDetached(sha))

	head, err := os.ReadFile(filepath.Join(scene.Repo.MetadataDir(), "HEAD"))
	require.NoError(t, err)
	require.Equal(t, sha+"\n", string(head))
}

func TestWriteHeadFile(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	path := testhelpers.WriteHeadFile(t, root, "ref: refs/heads/main\n")

	require.Equal(t, filepath.Join(root, ".git", "HEAD"), path)
	require.Equal(t, "ref: refs/heads/main\n", string(testhelpers.Must(os.ReadFile(path))))
}
