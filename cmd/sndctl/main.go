// ABOUTME: Entry point for the sndctl command.
// ABOUTME: All behavior lives in the subcommands; main only reports failure.

package main

import (
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
