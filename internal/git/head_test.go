package git_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gperrors "gitprompt.dev/gitprompt/internal/errors"
	"gitprompt.dev/gitprompt/internal/git"
	"gitprompt.dev/gitprompt/testhelpers"
)

func TestParseHead(t *testing.T) {
	t.Parallel()

	const sha = "3f786850e387550fdab836ed7e6dc881de23001b"

	tests := []struct {
		name      string
		content   string
		want      string
		symbolic  bool
		branchRef bool
	}{
		{name: "branch", content: "ref: refs/heads/main\n", want: "main", symbolic: true, branchRef: true},
		{name: "branch with slashes", content: "ref: refs/heads/feature/x\n", want: "feature/x", symbolic: true, branchRef: true},
		{name: "surrounding whitespace", content: "  ref: refs/heads/dev \r\n", want: "dev", symbolic: true, branchRef: true},
		{name: "detached hash", content: sha + "\n", want: sha},
		{name: "remote ref kept verbatim", content: "ref: refs/remotes/origin/main\n", want: "ref: refs/remotes/origin/main", symbolic: true},
		{name: "tag ref kept verbatim", content: "ref: refs/tags/v1.0\n", want: "ref: refs/tags/v1.0", symbolic: true},
		{name: "missing space after ref", content: "ref:refs/heads/main\n", want: "ref:refs/heads/main"},
		{name: "empty file", content: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			info := git.ParseHead(tt.content)
			assert.Equal(t, tt.want, info.BranchLabel())
			assert.Equal(t, tt.symbolic, info.Symbolic)
			assert.Equal(t, tt.branchRef, info.IsBranch())
		})
	}
}

func TestReadBranch(t *testing.T) {
	t.Parallel()

	t.Run("round trip through a HEAD file", func(t *testing.T) {
		t.Parallel()
		root := t.TempDir()
		testhelpers.WriteHeadFile(t, root, "ref: refs/heads/feature/x\n")
		start := testhelpers.MkdirAll(t, root, "src")

		headPath, ok := git.FindHeadFile(start)
		require.True(t, ok)

		branch, err := git.ReadBranch(headPath)
		require.NoError(t, err)
		require.Equal(t, "feature/x", branch)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()
		headPath := filepath.Join(t.TempDir(), ".git", "HEAD")

		_, err := git.ReadBranch(headPath)
		require.ErrorIs(t, err, gperrors.ErrHeadUnreadable)
		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("unreadable file", func(t *testing.T) {
		t.Parallel()
		if runtime.GOOS == "windows" || os.Geteuid() == 0 {
			t.Skip("file permissions are not enforced")
		}
		headPath := testhelpers.WriteHeadFile(t, t.TempDir(), "ref: refs/heads/main\n")
		require.NoError(t, os.Chmod(headPath, 0))

		_, err := git.ReadBranch(headPath)
		require.ErrorIs(t, err, gperrors.ErrHeadUnreadable)
	})

	t.Run("real repository", func(t *testing.T) {
		t.Parallel()
		scene := testhelpers.NewSceneParallel(t, testhelpers.BasicSceneSetup)
		require.NoError(t, scene.Repo.CreateAndCheckoutBranch("topic/one"))

		branch, err := git.ReadBranch(filepath.Join(scene.Repo.MetadataDir(), "HEAD"))
		require.NoError(t, err)
		require.Equal(t, "topic/one", branch)
	})
}
