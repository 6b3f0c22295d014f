package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	// an interrupt ends ingestion with a final report and exit code 0
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand(os.Stdin, os.Stdout).ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintf(os.Stderr, "logstats: %v\n", err)
		os.Exit(1)
	}
}
