package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/tqr-cli/tqr/internal/cli"
)

func main() {
	// SIGINT/SIGTERM cancel the run context; the sequencer finishes its
	// bookkeeping and any in-flight report query is terminated.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		os.Stderr.WriteString("Error: " + err.Error() + "\n")
		if isFlagError(err) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// isFlagError checks if the error is a flag parsing error
func isFlagError(err error) bool {
	return strings.Contains(err.Error(), "unknown flag") ||
		strings.Contains(err.Error(), "unknown command") ||
		strings.Contains(err.Error(), "flag needs an argument")
}
