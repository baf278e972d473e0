package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplog(t *testing.T) {
	t.Parallel()

	t.Run("discarding logger", func(t *testing.T) {
		t.Parallel()
		splog, err := NewSplogWithFile("")
		require.NoError(t, err)

		splog.Debug("nothing %s", "here")
		splog.Warn("nothing")
		require.NoError(t, splog.Close())
	})

	t.Run("file logger", func(t *testing.T) {
		t.Parallel()
		logPath := filepath.Join(t.TempDir(), "logs", "gitprompt.log")

		splog, err := NewSplogWithFile(logPath)
		require.NoError(t, err)
		splog.Debug("found HEAD at %s", "/repo/.git/HEAD")
		splog.Warn("HEAD unreadable")
		require.NoError(t, splog.Close())

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		require.Contains(t, string(data), "level=DEBUG")
		require.Contains(t, string(data), `msg="found HEAD at /repo/.git/HEAD"`)
		require.Contains(t, string(data), `level=WARN msg="HEAD unreadable"`)
	})
}
