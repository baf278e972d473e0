// Package runtime provides the execution context for a gitprompt run.
//
// It carries the working directory, the git runner used for the status
// query, and the diagnostics logger.
package runtime
