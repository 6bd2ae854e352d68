package main

import (
	"fmt"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersonp/dragon-clan/internal/domain/entities"
	"github.com/ersonp/dragon-clan/internal/domain/ports"
)

func newEventsCmd() *cobra.Command {
	var filter eventFilterFlags

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List journaled events",
		Long:  "Lists events recorded by previous simulations, newest first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvents(cmd, filter)
		},
	}

	filter.register(cmd, DefaultEventLimit)

	return cmd
}

// eventFilterFlags are the journal filters shared by events and export.
type eventFilterFlags struct {
	kind  string
	run   string
	limit int
}

func (f *eventFilterFlags) register(cmd *cobra.Command, defaultLimit int) {
	cmd.Flags().StringVarP(&f.kind, "kind", "k", "", "Filter by event kind")
	cmd.Flags().StringVarP(&f.run, "run", "r", "", "Filter by run ID")
	cmd.Flags().IntVarP(&f.limit, "limit", "l", defaultLimit, "Maximum number of events")
}

func (f eventFilterFlags) filter() (ports.EventFilter, error) {
	kind := entities.EventKind(f.kind)
	if kind != "" && !slices.Contains(entities.AllEventKinds, kind) {
		return ports.EventFilter{}, fmt.Errorf("invalid kind %q, valid kinds: %v", f.kind, entities.AllEventKinds)
	}
	return ports.EventFilter{Kind: kind, RunID: f.run, Limit: f.limit}, nil
}

func runEvents(cmd *cobra.Command, flags eventFilterFlags) error {
	filter, err := flags.filter()
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	return withJournal(func(journal ports.EventJournal) error {
		events, err := journal.List(ctx, filter)
		if err != nil {
			return fmt.Errorf("listing events: %w", err)
		}

		out := cmd.OutOrStdout()
		if len(events) == 0 {
			fmt.Fprintln(out, "No events found.")
			return nil
		}

		total, err := journal.Count(ctx, filter.Kind)
		if err != nil {
			return fmt.Errorf("counting events: %w", err)
		}
		fmt.Fprintf(out, "Showing %d of %d events:\n\n", len(events), total)
		return formatEvents(out, events, time.Now())
	})
}
