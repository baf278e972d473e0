// Package git provides the git lookups gitprompt needs.
//
// It covers:
//   - Repository location (walking up to the nearest .git/HEAD)
//   - HEAD parsing (branch name or raw ref content)
//   - Working tree status (dirty or clean, via git status --short)
//
// This package should be the only place where git commands are executed.
package git
