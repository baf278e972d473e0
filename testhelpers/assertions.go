// Package testhelpers provides testing utilities for gitprompt,
// including a scene system, Git repository helpers, and custom assertions.
package testhelpers

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// Must is a generic helper function that panics if err is not nil,
// otherwise returns the value.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// ExpectPromptLine asserts that out is exactly the prompt line for branch,
// including the trailing newline and, when dirty, the marker.
func ExpectPromptLine(t *testing.T, out, branch string, dirty bool) {
	t.Helper()

	expected := " %F{blue}(%F{red}" + branch + "%F{blue})%f"
	if dirty {
		expected += "💩"
	}
	require.Equal(t, expected+"\n", out)
}
