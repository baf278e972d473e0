package output

import (
	"fmt"

	"gitprompt.dev/gitprompt/internal/config"
)

// zshColor wraps a color name in zsh prompt foreground markup
func zshColor(name string) string {
	return "%F{" + name + "}"
}

// zshReset ends a zsh foreground color
const zshReset = "%f"

// FormatPrompt renders the prompt segment for branch, without a trailing newline.
// The dirty marker follows the closing paren with no space.
func FormatPrompt(branch string, dirty bool, style config.PromptStyle) string {
	line := fmt.Sprintf(" %s(%s%s%s)%s",
		zshColor(style.ParenColor),
		zshColor(style.BranchColor),
		branch,
		zshColor(style.ParenColor),
		zshReset,
	)
	if dirty {
		line += style.DirtyMarker
	}
	return line
}
