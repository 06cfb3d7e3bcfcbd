package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/handiism/courses-manager/internal/cli"
)

var version = "dev"

func main() {
	// Handle interrupts so watch can stop cleanly
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := cli.NewRootCmd(version)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
