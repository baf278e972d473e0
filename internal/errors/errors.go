// Package errors provides sentinel errors and custom error types for gitprompt.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	// ErrNotARepository indicates that no ancestor of the working directory holds a .git/HEAD file
	ErrNotARepository = errors.New("not a git repository")

	// ErrHeadUnreadable indicates that a HEAD file was found but could not be read
	ErrHeadUnreadable = errors.New("HEAD file unreadable")

	// ErrGitUnavailable indicates that the git binary could not be launched
	ErrGitUnavailable = errors.New("git unavailable")

	// ErrWorkingDirectory indicates that the current working directory could not be resolved
	ErrWorkingDirectory = errors.New("cannot resolve working directory")
)

// HeadReadError represents a failure to read a HEAD file that was located on disk
type HeadReadError struct {
	Path string
	Err  error
}

func (e *HeadReadError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

// Is returns true if the target error is ErrHeadUnreadable
func (e *HeadReadError) Is(target error) bool {
	return target == ErrHeadUnreadable
}

func (e *HeadReadError) Unwrap() error {
	return e.Err
}

// NewHeadReadError creates a new HeadReadError
func NewHeadReadError(path string, err error) *HeadReadError {
	return &HeadReadError{Path: path, Err: err}
}

// GitCommandError represents an error from a git command execution
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
	// Started is false when the process never launched (binary missing, permission denied).
	Started bool
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("git command failed: %s", e.Command)
	if len(e.Args) > 0 {
		msg += fmt.Sprintf(" %v", e.Args)
	}
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

// Is returns true for ErrGitUnavailable when the command never started
func (e *GitCommandError) Is(target error) bool {
	return target == ErrGitUnavailable && !e.Started
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a GitCommandError for a command that ran and failed
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
		Started: true,
	}
}

// NewGitLaunchError creates a GitCommandError for a command that could not be started
func NewGitLaunchError(command string, args []string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Err:     err,
	}
}
