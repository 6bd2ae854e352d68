package events

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ersonp/dragon-clan/internal/domain/entities"
	"github.com/ersonp/dragon-clan/internal/domain/ports"
)

// LogSink writes every event to a structured logger.
type LogSink struct {
	logger *slog.Logger
	level  slog.Level
}

// NewLogSink creates a LogSink logging at level.
func NewLogSink(logger *slog.Logger, level slog.Level) *LogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogSink{logger: logger, level: level}
}

// Emit logs the event. Error events are always logged at error level.
func (s *LogSink) Emit(ctx context.Context, kind entities.EventKind, payload map[string]any) error {
	level := s.level
	if kind == entities.EventError {
		level = slog.LevelError
	}

	attrs := make([]any, 0, len(payload)*2+2)
	attrs = append(attrs, "kind", string(kind))
	for k, v := range payload {
		attrs = append(attrs, k, v)
	}
	s.logger.Log(ctx, level, "clan event", attrs...)
	return nil
}

// Fanout forwards each event to every sink, in order. A failing sink does not
// stop delivery to the rest.
type Fanout []ports.EventSink

// Emit forwards the event and joins any errors.
func (f Fanout) Emit(ctx context.Context, kind entities.EventKind, payload map[string]any) error {
	var errs []error
	for _, sink := range f {
		if sink == nil {
			continue
		}
		if err := sink.Emit(ctx, kind, payload); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RunSink journals events, opening a new run each time a clan is created or reset.
type RunSink struct {
	journal ports.EventJournal
	seed    uint64
}

// NewRunSink creates a RunSink that tags new runs with seed.
func NewRunSink(journal ports.EventJournal, seed uint64) *RunSink {
	return &RunSink{journal: journal, seed: seed}
}

// Emit journals the event.
func (s *RunSink) Emit(ctx context.Context, kind entities.EventKind, payload map[string]any) error {
	if kind == entities.EventClanCreated || kind == entities.EventClanReset {
		name, _ := payload["clan_name"].(string)
		if _, err := s.journal.StartRun(ctx, name, s.seed); err != nil {
			return fmt.Errorf("starting run: %w", err)
		}
	}
	return s.journal.Emit(ctx, kind, payload)
}

// Discard drops every event.
type Discard struct{}

// Emit does nothing.
func (Discard) Emit(context.Context, entities.EventKind, map[string]any) error {
	return nil
}
