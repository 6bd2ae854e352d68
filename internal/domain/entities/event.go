package entities

import "time"

// EventKind names a state change reported by the clan service.
type EventKind string

const (
	EventClanCreated          EventKind = "clan-created"
	EventDragonAdded          EventKind = "dragon-added"
	EventDragonRemoved        EventKind = "dragon-removed"
	EventInteractionSimulated EventKind = "interaction-simulated"
	EventClanReset            EventKind = "clan-reset"
	EventError                EventKind = "error"
)

// AllEventKinds lists every kind the clan service emits.
var AllEventKinds = []EventKind{
	EventClanCreated,
	EventDragonAdded,
	EventDragonRemoved,
	EventInteractionSimulated,
	EventClanReset,
	EventError,
}

// Event is a recorded notification.
type Event struct {
	ID        string         `json:"id"`
	RunID     string         `json:"run_id,omitempty"`
	Kind      EventKind      `json:"kind"`
	Payload   map[string]any `json:"payload,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// Run groups the events journaled by one simulation session.
type Run struct {
	ID        string    `json:"id"`
	ClanName  string    `json:"clan_name"`
	Seed      uint64    `json:"seed"`
	StartedAt time.Time `json:"started_at"`
	Events    int       `json:"events"`
}
