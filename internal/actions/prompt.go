package actions

import (
	"errors"

	"gitprompt.dev/gitprompt/internal/config"
	gperrors "gitprompt.dev/gitprompt/internal/errors"
	"gitprompt.dev/gitprompt/internal/git"
	"gitprompt.dev/gitprompt/internal/output"
	"gitprompt.dev/gitprompt/internal/runtime"
)

// PromptResult is what a prompt render found
type PromptResult struct {
	Branch string
	Dirty  bool
	// Found is false when nothing should be printed
	Found bool
}

// Line renders the result as a prompt segment. It is empty when !Found.
func (r PromptResult) Line(style config.PromptStyle) string {
	if !r.Found {
		return ""
	}
	return output.FormatPrompt(r.Branch, r.Dirty, style)
}

// PromptAction inspects ctx.WorkingDir and returns the branch and dirtiness to show
func PromptAction(ctx *runtime.Context) PromptResult {
	splog := ctx.Splog

	branch, ok := resolveBranch(ctx)
	if !ok {
		return PromptResult{}
	}

	dirty, err := git.Status(ctx.Context, ctx.Git)
	switch {
	case errors.Is(err, gperrors.ErrGitUnavailable):
		splog.Warn("status query unavailable, assuming clean: %v", err)
	case err != nil:
		splog.Debug("status query exited non-zero: %v", err)
	}
	splog.Debug("branch=%q dirty=%t", branch, dirty)

	return PromptResult{Branch: branch, Dirty: dirty, Found: true}
}

// resolveBranch returns the branch label for the working directory, or false
// when there is no repository or its HEAD cannot be read.
func resolveBranch(ctx *runtime.Context) (string, bool) {
	splog := ctx.Splog

	loc, err := git.Locate(ctx.WorkingDir)
	if err != nil {
		splog.Debug("%s: %v", ctx.WorkingDir, err)
		return "", false
	}

	if loc.InsideMetadata {
		splog.Debug("%s is inside a %s directory", ctx.WorkingDir, config.MetadataDirName)
		return config.MetadataDirName, true
	}

	splog.Debug("found HEAD at %s", loc.HeadPath)
	branch, err := git.ReadBranch(loc.HeadPath)
	if err != nil {
		splog.Warn("%v", err)
		return "", false
	}
	return branch, true
}
