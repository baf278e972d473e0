package git

import (
	"context"
	"errors"
	"strings"

	"gitprompt.dev/gitprompt/internal/config"
	gperrors "gitprompt.dev/gitprompt/internal/errors"
)

// Status runs git status --short and reports whether it printed anything.
//
// The exit code is ignored: a failing query that printed nothing is clean.
// When git cannot be launched the tree is reported clean and the launch
// error is returned for logging.
func Status(ctx context.Context, runner OutputRunner) (bool, error) {
	out, err := runner.Output(ctx, config.StatusArgs...)
	if err != nil && errors.Is(err, gperrors.ErrGitUnavailable) {
		return false, err
	}
	return strings.TrimSpace(out) != "", err
}

// IsDirty returns true if the working tree has changes since the last commit
func IsDirty(ctx context.Context, runner OutputRunner) bool {
	dirty, _ := Status(ctx, runner)
	return dirty
}
