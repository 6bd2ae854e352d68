package main

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/ersonp/dragon-clan/internal/domain/entities"
	"github.com/ersonp/dragon-clan/internal/domain/ports"
)

type exportFlags struct {
	eventFilterFlags
	format string
	output string
}

type exporter struct {
	journal ports.EventJournal
	format  string
	output  string
}

func newExportCmd() *cobra.Command {
	var flags exportFlags

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export journaled events to file",
		Long:  "Exports journaled events to JSON, CSV, or markdown format.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.format, "format", "f", "json", "Output format (json, csv, markdown)")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Output file (default: stdout)")
	flags.register(cmd, DefaultExportLimit)

	return cmd
}

func runExport(cmd *cobra.Command, flags exportFlags) error {
	if !slices.Contains(validFormats, flags.format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", flags.format, validFormats)
	}

	filter, err := flags.filter()
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	return withJournal(func(journal ports.EventJournal) error {
		e := &exporter{
			journal: journal,
			format:  flags.format,
			output:  flags.output,
		}

		events, err := e.fetchEvents(ctx, filter)
		if err != nil {
			return err
		}

		return e.export(cmd.OutOrStdout(), events)
	})
}

func (e *exporter) fetchEvents(ctx context.Context, filter ports.EventFilter) ([]entities.Event, error) {
	events, err := e.journal.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("listing events: %w", err)
	}

	if len(events) == 0 {
		return nil, fmt.Errorf("no events found to export")
	}

	return events, nil
}

func (e *exporter) export(stdout io.Writer, events []entities.Event) (err error) {
	w := stdout
	var f *os.File

	if e.output != "" {
		f, err = os.OpenFile(e.output, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
		if err != nil {
			return fmt.Errorf("creating file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing file: %w", cerr)
			}
		}()
		w = f
	}

	if err := e.formatEvents(w, events); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if e.output != "" {
		fmt.Fprintf(stdout, "Exported %d events to %s\n", len(events), e.output)
	}

	return nil
}

func (e *exporter) formatEvents(w io.Writer, events []entities.Event) error {
	switch e.format {
	case "json":
		return exportJSON(w, events)
	case "csv":
		return exportCSV(w, events)
	case "markdown":
		return exportMarkdown(w, events)
	default:
		return fmt.Errorf("unknown format: %s", e.format)
	}
}

func exportJSON(w io.Writer, events []entities.Event) error {
	if events == nil {
		events = []entities.Event{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(events)
}

func exportCSV(w io.Writer, events []entities.Event) error {
	writer := csv.NewWriter(w)

	header := []string{"id", "run_id", "kind", "created_at", "payload"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, e := range events {
		payload := ""
		if e.Payload != nil {
			data, err := json.Marshal(e.Payload)
			if err != nil {
				return fmt.Errorf("marshaling payload: %w", err)
			}
			payload = string(data)
		}
		row := []string{
			e.ID,
			e.RunID,
			string(e.Kind),
			e.CreatedAt.UTC().Format(time.RFC3339),
			payload,
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func exportMarkdown(w io.Writer, events []entities.Event) error {
	if _, err := fmt.Fprintf(w, "# Clan Events\n\nTotal: %d events\n\n", len(events)); err != nil {
		return err
	}

	if _, err := fmt.Fprint(w, "| Time | Run | Kind | Details |\n"); err != nil {
		return err
	}
	if _, err := fmt.Fprint(w, "|------|-----|------|---------|\n"); err != nil {
		return err
	}

	for _, e := range events {
		if _, err := fmt.Fprintf(w, "| %s | %s | %s | %s |\n",
			e.CreatedAt.UTC().Format(time.RFC3339),
			shortID(e.RunID),
			e.Kind,
			escapeMarkdown(eventDetails(e)),
		); err != nil {
			return err
		}
	}

	return nil
}

func escapeMarkdown(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
