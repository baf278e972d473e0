// Package output renders the prompt line and carries the diagnostics logger.
package output
