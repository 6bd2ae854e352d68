package mocks

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ersonp/dragon-clan/internal/domain/entities"
	"github.com/ersonp/dragon-clan/internal/domain/ports"
)

// EventJournal is an in-memory mock implementation of ports.EventJournal.
type EventJournal struct {
	Events []entities.Event
	Runs   []entities.Run
	Err    error

	EnsureSchemaCallCount int
	Closed                bool

	runID string
}

// NewEventJournal creates a new mock EventJournal.
func NewEventJournal() *EventJournal {
	return &EventJournal{}
}

// EnsureSchema records the call and returns Err.
func (m *EventJournal) EnsureSchema(_ context.Context) error {
	m.EnsureSchemaCallCount++
	return m.Err
}

// Close marks the journal closed.
func (m *EventJournal) Close() error {
	m.Closed = true
	return nil
}

// StartRun opens a new run.
func (m *EventJournal) StartRun(_ context.Context, clanName string, seed uint64) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	m.runID = fmt.Sprintf("run-%d", len(m.Runs)+1)
	m.Runs = append(m.Runs, entities.Run{
		ID:        m.runID,
		ClanName:  clanName,
		Seed:      seed,
		StartedAt: time.Now(),
	})
	return m.runID, nil
}

// ListRuns returns runs newest first with their event counts.
func (m *EventJournal) ListRuns(_ context.Context, limit int) ([]entities.Run, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	result := make([]entities.Run, 0, len(m.Runs))
	for i := len(m.Runs) - 1; i >= 0; i-- {
		run := m.Runs[i]
		for _, e := range m.Events {
			if e.RunID == run.ID {
				run.Events++
			}
		}
		result = append(result, run)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

// Emit stores the event under the current run.
func (m *EventJournal) Emit(_ context.Context, kind entities.EventKind, payload map[string]any) error {
	if m.Err != nil {
		return m.Err
	}
	m.Events = append(m.Events, entities.Event{
		ID:        fmt.Sprintf("event-%d", len(m.Events)+1),
		RunID:     m.runID,
		Kind:      kind,
		Payload:   payload,
		CreatedAt: time.Now(),
	})
	return nil
}

// List returns matching events newest first.
func (m *EventJournal) List(_ context.Context, filter ports.EventFilter) ([]entities.Event, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var result []entities.Event
	for i := len(m.Events) - 1; i >= 0; i-- {
		e := m.Events[i]
		if filter.Kind != "" && e.Kind != filter.Kind {
			continue
		}
		if !strings.HasPrefix(e.RunID, filter.RunID) {
			continue
		}
		result = append(result, e)
		if filter.Limit > 0 && len(result) == filter.Limit {
			break
		}
	}
	return result, nil
}

// Count returns the number of events of kind, or all events when kind is empty.
func (m *EventJournal) Count(_ context.Context, kind entities.EventKind) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	count := 0
	for _, e := range m.Events {
		if kind == "" || e.Kind == kind {
			count++
		}
	}
	return count, nil
}
