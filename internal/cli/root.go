// Package cli wires the gitprompt cobra command.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"gitprompt.dev/gitprompt/internal/actions"
	"gitprompt.dev/gitprompt/internal/config"
	"gitprompt.dev/gitprompt/internal/runtime"
)

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitprompt",
		Short: "Print the current git branch and dirty state for a zsh prompt",
		Long: `Print the current git branch and dirty state for a zsh prompt.

Outside a git repository nothing is printed. Inside one, a single line such as
" (main)" is printed using zsh %F{...} color markup, followed by a marker when
"git status --short" reports changes.

Use it from .zshrc:

  setopt PROMPT_SUBST
  PROMPT='%~$(gitprompt) %# '`,
		Version: fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
		// Arguments and unknown flags are ignored so a prompt never breaks.
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceErrors:      true,
		SilenceUsage:       true,
		CompletionOptions:  cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, err := runtime.NewContextAuto(cmd.Context())
			if err != nil {
				return err
			}
			defer func() { _ = ctx.Splog.Close() }()

			PrintPrompt(cmd.OutOrStdout(), actions.PromptAction(ctx), ctx.Style)
			return nil
		},
	}

	return rootCmd
}

// PrintPrompt writes the prompt line followed by a newline, or nothing when
// no repository was found. Write errors are dropped: there is nowhere to report them.
func PrintPrompt(w io.Writer, result actions.PromptResult, style config.PromptStyle) {
	if !result.Found {
		return
	}
	_, _ = fmt.Fprintln(w, result.Line(style))
}
