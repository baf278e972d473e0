package config

// MetadataDirName is the name of git's per-repository metadata directory.
// It doubles as the branch label shown when the working directory is inside it.
const MetadataDirName = ".git"

// HeadFileName is the file inside MetadataDirName that names the checked-out ref.
const HeadFileName = "HEAD"

// LocalBranchRefPrefix is the ref namespace for local branches.
const LocalBranchRefPrefix = "refs/heads/"

// GitBinary is the executable used for the status query.
const GitBinary = "git"

// StatusArgs are the arguments of the status query.
var StatusArgs = []string{"status", "--short"}

// PromptStyle describes the zsh prompt markup around the branch name.
type PromptStyle struct {
	ParenColor  string
	BranchColor string
	DirtyMarker string
}

// DefaultPromptStyle returns the only style gitprompt renders with:
// blue parens, a red branch name, and a pile of poo when the tree is dirty.
func DefaultPromptStyle() PromptStyle {
	return PromptStyle{
		ParenColor:  "blue",
		BranchColor: "red",
		DirtyMarker: "💩",
	}
}
