package mocks

import (
	"context"

	"github.com/ersonp/dragon-clan/internal/domain/entities"
)

// EmittedEvent is a single call recorded by EventSink.
type EmittedEvent struct {
	Kind    entities.EventKind
	Payload map[string]any
}

// EventSink is a mock implementation of ports.EventSink.
type EventSink struct {
	Events []EmittedEvent
	Err    error
}

// NewEventSink creates a new recording EventSink.
func NewEventSink() *EventSink {
	return &EventSink{}
}

// Emit records the event and returns Err.
func (m *EventSink) Emit(_ context.Context, kind entities.EventKind, payload map[string]any) error {
	m.Events = append(m.Events, EmittedEvent{Kind: kind, Payload: payload})
	return m.Err
}

// Kinds returns the recorded event kinds in order.
func (m *EventSink) Kinds() []entities.EventKind {
	kinds := make([]entities.EventKind, 0, len(m.Events))
	for _, e := range m.Events {
		kinds = append(kinds, e.Kind)
	}
	return kinds
}

// Last returns the most recent event, or false if none was emitted.
func (m *EventSink) Last() (EmittedEvent, bool) {
	if len(m.Events) == 0 {
		return EmittedEvent{}, false
	}
	return m.Events[len(m.Events)-1], true
}

// Reset clears recorded events.
func (m *EventSink) Reset() {
	m.Events = nil
}
