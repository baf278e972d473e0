package errors_test

import (
	"errors"
	"io/fs"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gperrors "gitprompt.dev/gitprompt/internal/errors"
)

func TestHeadReadError(t *testing.T) {
	t.Parallel()

	err := gperrors.NewHeadReadError("/repo/.git/HEAD", fs.ErrPermission)

	require.ErrorIs(t, err, gperrors.ErrHeadUnreadable)
	require.ErrorIs(t, err, fs.ErrPermission)
	assert.Contains(t, err.Error(), "/repo/.git/HEAD")
}

func TestGitCommandError(t *testing.T) {
	t.Parallel()

	t.Run("launch failure matches ErrGitUnavailable", func(t *testing.T) {
		t.Parallel()
		err := gperrors.NewGitLaunchError("git", []string{"status", "--short"}, exec.ErrNotFound)

		require.ErrorIs(t, err, gperrors.ErrGitUnavailable)
		require.ErrorIs(t, err, exec.ErrNotFound)
	})

	t.Run("exit failure does not match ErrGitUnavailable", func(t *testing.T) {
		t.Parallel()
		err := gperrors.NewGitCommandError("git", []string{"status"}, "", "fatal: not a git repository", errors.New("exit status 128"))

		require.NotErrorIs(t, err, gperrors.ErrGitUnavailable)
		assert.Contains(t, err.Error(), "stderr: fatal: not a git repository")
		assert.Contains(t, err.Error(), "[status]")
	})
}
