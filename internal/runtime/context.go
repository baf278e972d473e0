package runtime

import (
	"context"
	"fmt"
	"os"

	"gitprompt.dev/gitprompt/internal/config"
	gperrors "gitprompt.dev/gitprompt/internal/errors"
	"gitprompt.dev/gitprompt/internal/git"
	"gitprompt.dev/gitprompt/internal/output"
)

// Context provides access to the run's inputs and dependencies
type Context struct {
	context.Context
	WorkingDir string
	Git        git.OutputRunner
	Splog      *output.Splog
	Style      config.PromptStyle
}

// NewContext creates a context for workingDir with a git runner rooted there
func NewContext(ctx context.Context, workingDir string, splog *output.Splog) *Context {
	if splog == nil {
		splog = output.NewSplog()
	}
	return &Context{
		Context:    ctx,
		WorkingDir: workingDir,
		Git:        git.NewCommandRunner(workingDir),
		Splog:      splog,
		Style:      config.DefaultPromptStyle(),
	}
}

// NewContextAuto resolves the process working directory and sets up logging.
// Failure to resolve the working directory is the only error; a log file that
// cannot be opened falls back to discarding logs.
func NewContextAuto(ctx context.Context) (*Context, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", gperrors.ErrWorkingDirectory, err)
	}

	splog, err := output.NewSplogWithFile(config.LogFilePath())
	if err != nil {
		splog = output.NewSplog()
	}
	return NewContext(ctx, wd, splog), nil
}
