// Package events provides in-process event sinks: a subscription bus, a log
// sink and a fan-out that feeds several sinks at once.
package events

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ersonp/dragon-clan/internal/domain/entities"
)

// Listener receives events published on a Bus.
type Listener func(entities.Event)

type subscription struct {
	id       uint64
	listener Listener
}

// Bus delivers events synchronously to listeners subscribed per kind.
// Subscriptions may change while events are being published.
type Bus struct {
	mu     sync.RWMutex
	nextID uint64
	subs   map[entities.EventKind][]subscription
	logger *slog.Logger
	now    func() time.Time
}

// NewBus creates an empty Bus. Listener panics are logged to logger.
func NewBus(logger *slog.Logger) *Bus {
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subs:   make(map[entities.EventKind][]subscription),
		logger: logger,
		now:    time.Now,
	}
}

// Subscribe registers listener for kind and returns a func that removes it.
func (b *Bus) Subscribe(kind entities.EventKind, listener Listener) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	id := b.nextID
	b.subs[kind] = append(b.subs[kind], subscription{id: id, listener: listener})

	var once sync.Once
	return func() {
		once.Do(func() { b.unsubscribe(kind, id) })
	}
}

func (b *Bus) unsubscribe(kind entities.EventKind, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.subs[kind]
	for i, s := range subs {
		if s.id == id {
			b.subs[kind] = append(subs[:i:i], subs[i+1:]...)
			return
		}
	}
}

// Listeners returns the number of listeners registered for kind.
func (b *Bus) Listeners(kind entities.EventKind) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs[kind])
}

// Emit delivers the event to every listener of its kind. A panicking listener
// is logged and skipped; the others still run.
func (b *Bus) Emit(_ context.Context, kind entities.EventKind, payload map[string]any) error {
	event := entities.Event{
		ID:        uuid.NewString(),
		Kind:      kind,
		Payload:   payload,
		CreatedAt: b.now(),
	}

	b.mu.RLock()
	subs := append([]subscription(nil), b.subs[kind]...)
	b.mu.RUnlock()

	for _, s := range subs {
		b.deliver(s, event)
	}
	return nil
}

func (b *Bus) deliver(s subscription, event entities.Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event listener panicked",
				"kind", event.Kind,
				"subscription", s.id,
				"panic", fmt.Sprint(r))
		}
	}()
	s.listener(event)
}
