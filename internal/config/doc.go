// Package config holds the fixed values gitprompt runs with.
//
// gitprompt has no configuration files and reads no settings. This package
// names:
//   - the git metadata layout it looks for (.git/HEAD)
//   - the prompt colors and dirty marker
//   - where diagnostics go when a log file is requested
package config
