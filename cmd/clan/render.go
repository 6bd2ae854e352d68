package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/ersonp/dragon-clan/internal/application/handlers"
	"github.com/ersonp/dragon-clan/internal/domain/entities"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

// formatRoster writes one row per clan member.
func formatRoster(w io.Writer, dragons []handlers.DragonInfo) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "#\tNAME\tELEMENT\tAGE\tSTYLE")
	for _, d := range dragons {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", d.Index, d.Name, d.Element, d.Age, d.InteractionStyle)
	}
	return tw.Flush()
}

// formatMatrix writes the opinion each row member holds of each column member.
// opinions[i][j] is the opinion of names[i] about names[j].
func formatMatrix(w io.Writer, names []string, opinions [][]int) error {
	tw := newTable(w)
	fmt.Fprintf(tw, "\t%s\n", strings.Join(names, "\t"))
	for i, name := range names {
		cells := make([]string, len(names))
		for j := range names {
			if i == j {
				cells[j] = "-"
				continue
			}
			cells[j] = fmt.Sprintf("%s %+d", entities.OpinionStatus(opinions[i][j]), opinions[i][j])
		}
		fmt.Fprintf(tw, "%s\t%s\n", name, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

// formatInteraction renders the nth interaction of a run as a log line.
func formatInteraction(n int, description string, change int) string {
	return fmt.Sprintf("%-5s %s (%+d)", humanize.Ordinal(n), description, change)
}

// formatEvents writes journaled events with times relative to now.
func formatEvents(w io.Writer, events []entities.Event, now time.Time) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "WHEN\tKIND\tDETAILS")
	for _, e := range events {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", humanize.RelTime(e.CreatedAt, now, "ago", "from now"), e.Kind, eventDetails(e))
	}
	return tw.Flush()
}

// formatRuns writes journaled runs with times relative to now.
func formatRuns(w io.Writer, runs []entities.Run, now time.Time) error {
	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tCLAN\tSEED\tEVENTS\tSTARTED")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\n",
			shortID(r.ID), r.ClanName, r.Seed, humanize.Comma(int64(r.Events)),
			humanize.RelTime(r.StartedAt, now, "ago", "from now"))
	}
	return tw.Flush()
}

// eventDetails summarises a payload in one line, using the fields each kind carries.
func eventDetails(e entities.Event) string {
	p := e.Payload
	switch e.Kind {
	case entities.EventClanCreated, entities.EventClanReset:
		return fmt.Sprintf("%v with %v dragons", p["clan_name"], p["dragon_count"])
	case entities.EventDragonAdded:
		return fmt.Sprintf("%v (%v, age %v)", p["name"], p["element"], p["age"])
	case entities.EventDragonRemoved:
		return fmt.Sprintf("%v", p["name"])
	case entities.EventInteractionSimulated:
		return fmt.Sprintf("%v", p["description"])
	case entities.EventError:
		return fmt.Sprintf("%v: %v", p["operation"], p["message"])
	default:
		return ""
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
