package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"budget-scheduler/internal/cli"
)

// main is the entry point of budget-scheduler. Commands receive a context
// that is cancelled on SIGINT or SIGTERM; a cancelled pass leaves the stored
// mode unchanged so the next run retries it.
func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := cli.NewRoot().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		cancel()
		os.Exit(1)
	}
}
