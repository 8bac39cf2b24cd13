package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"clipbatch/internal/services"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(1)
		}
		fmt.Fprintln(os.Stderr, err)
		// Aborted modes made no filesystem changes; signal that distinctly.
		if services.AbortsMode(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
