// Package main provides the entry point for the clan CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version        = "0.1.0-dev"
	globalSeed     uint64
	globalLogLevel string
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:     "clan",
		Short:   "Generate dragon clans and simulate how their members get along",
		Version: version,
	}

	rootCmd.PersistentFlags().Uint64Var(&globalSeed, "seed", 0, "Random seed (0 picks a fresh one)")
	rootCmd.PersistentFlags().StringVar(&globalLogLevel, "log-level", "", "Log level override (debug, info, warn, error)")

	rootCmd.AddCommand(
		newInitCmd(),
		newSimulateCmd(),
		newDragonCmd(),
		newCompatCmd(),
		newNamesCmd(),
		newEventsCmd(),
		newRunsCmd(),
		newExportCmd(),
		newPresetsCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
