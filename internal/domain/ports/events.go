package ports

import (
	"context"

	"github.com/ersonp/dragon-clan/internal/domain/entities"
)

// EventSink receives clan state changes.
type EventSink interface {
	// Emit publishes a single event. Failures never roll back the change that caused it.
	Emit(ctx context.Context, kind entities.EventKind, payload map[string]any) error
}

// EventFilter narrows a journal listing. RunID matches by prefix so the short
// IDs shown to users work. A non-positive Limit means no limit.
type EventFilter struct {
	Kind  entities.EventKind
	RunID string
	Limit int
}

// EventJournal is an EventSink that keeps what it receives.
type EventJournal interface {
	EventSink

	// EnsureSchema creates the journal schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// StartRun opens a new run; events emitted afterwards belong to it.
	StartRun(ctx context.Context, clanName string, seed uint64) (string, error)

	// ListRuns returns recorded runs, newest first.
	ListRuns(ctx context.Context, limit int) ([]entities.Run, error)

	// List returns journaled events, newest first.
	List(ctx context.Context, filter EventFilter) ([]entities.Event, error)

	// Count returns the number of journaled events of the given kind, or all when kind is empty.
	Count(ctx context.Context, kind entities.EventKind) (int, error)

	// Close releases the underlying storage.
	Close() error
}
