package git

import (
	"os"
	"strings"

	"github.com/go-git/go-git/v5/plumbing"

	"gitprompt.dev/gitprompt/internal/config"
	gperrors "gitprompt.dev/gitprompt/internal/errors"
)

// HeadInfo represents the state of .git/HEAD
type HeadInfo struct {
	Raw      string // trimmed file content
	Target   string // symbolic target such as refs/heads/main, empty unless Symbolic
	Symbolic bool
}

// ParseHead parses the content of a HEAD file
func ParseHead(content string) HeadInfo {
	trimmed := strings.TrimSpace(content)
	info := HeadInfo{Raw: trimmed}

	ref := plumbing.NewReferenceFromStrings(plumbing.HEAD.String(), trimmed)
	if ref.Type() == plumbing.SymbolicReference {
		info.Symbolic = true
		info.Target = ref.Target().String()
	}
	return info
}

// IsBranch reports whether HEAD points at a local branch
func (h HeadInfo) IsBranch() bool {
	return h.Symbolic && plumbing.ReferenceName(h.Target).IsBranch()
}

// BranchLabel returns the local branch name, or the raw HEAD content when
// HEAD is detached or points somewhere other than refs/heads/.
func (h HeadInfo) BranchLabel() string {
	if h.IsBranch() {
		return strings.TrimPrefix(h.Target, config.LocalBranchRefPrefix)
	}
	return h.Raw
}

// ReadBranch reads the HEAD file at headPath and returns its branch label.
// Read failures match errors.ErrHeadUnreadable.
func ReadBranch(headPath string) (string, error) {
	data, err := os.ReadFile(headPath)
	if err != nil {
		return "", gperrors.NewHeadReadError(headPath, err)
	}
	return ParseHead(string(data)).BranchLabel(), nil
}
