package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersonp/dragon-clan/internal/domain/ports"
)

func newRunsCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "runs",
		Short: "List journaled simulation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRuns(cmd, limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultRunLimit, "Maximum number of runs")

	return cmd
}

func runRuns(cmd *cobra.Command, limit int) error {
	ctx := cmd.Context()
	return withJournal(func(journal ports.EventJournal) error {
		runs, err := journal.ListRuns(ctx, limit)
		if err != nil {
			return fmt.Errorf("listing runs: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(runs) == 0 {
			fmt.Fprintln(out, "No runs recorded.")
			fmt.Fprintln(out, "Use 'clan simulate' to start one.")
			return nil
		}
		return formatRuns(out, runs, time.Now())
	})
}
