package git

import (
	"bytes"
	"context"
	"os/exec"

	"gitprompt.dev/gitprompt/internal/config"
	gperrors "gitprompt.dev/gitprompt/internal/errors"
)

// OutputRunner runs a git command and returns its standard output.
type OutputRunner interface {
	Output(ctx context.Context, args ...string) (string, error)
}

// CommandRunner handles execution of git commands
type CommandRunner struct {
	binary     string
	workingDir string
}

// NewCommandRunner creates a CommandRunner for the git binary on PATH
func NewCommandRunner(workingDir string) *CommandRunner {
	return NewCommandRunnerWithBinary(config.GitBinary, workingDir)
}

// NewCommandRunnerWithBinary creates a CommandRunner that executes binary instead of git
func NewCommandRunnerWithBinary(binary, workingDir string) *CommandRunner {
	return &CommandRunner{binary: binary, workingDir: workingDir}
}

// WorkingDir returns the directory commands run in
func (r *CommandRunner) WorkingDir() string {
	return r.workingDir
}

// Output executes a git command and returns the raw standard output.
//
// If the process cannot be started the error matches errors.ErrGitUnavailable
// and the output is empty. If it starts but exits non-zero, whatever it wrote
// to stdout is returned alongside a *errors.GitCommandError. No deadline is
// added to ctx.
func (r *CommandRunner) Output(ctx context.Context, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cmd := exec.CommandContext(ctx, r.binary, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Start(); err != nil {
		return "", gperrors.NewGitLaunchError(r.binary, args, err)
	}
	if err := cmd.Wait(); err != nil {
		return stdout.String(), gperrors.NewGitCommandError(r.binary, args, stdout.String(), stderr.String(), err)
	}
	return stdout.String(), nil
}
