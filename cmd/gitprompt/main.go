package main

import (
	"os"

	"gitprompt.dev/gitprompt/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cli.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		// Only an unresolvable working directory gets here; stay silent for the prompt.
		os.Exit(1)
	}
}
