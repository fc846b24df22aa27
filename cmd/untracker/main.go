package main

import (
	"errors"
	"fmt"
	"os"

	"untracker/internal/config"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, config.ErrUsage) {
			fmt.Fprintln(os.Stderr, "Run 'untracker --help' for usage.")
		}
		os.Exit(1)
	}
}
