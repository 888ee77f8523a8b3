package testutil

import (
	"sync"

	"pocketledger/internal/events"
)

// EventRecorder is an events.Publisher that keeps every event so tests can
// assert on what a service announced.
type EventRecorder struct {
	mu     sync.Mutex
	events []events.Event
}

var _ events.Publisher = (*EventRecorder)(nil)

// Publish records event.
func (r *EventRecorder) Publish(event events.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

// Types returns the recorded event types in publish order.
func (r *EventRecorder) Types() []events.Type {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]events.Type, len(r.events))
	for i, e := range r.events {
		types[i] = e.Type
	}
	return types
}

// Count returns how many events of type t were recorded.
func (r *EventRecorder) Count(t events.Type) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// Reset forgets all recorded events.
func (r *EventRecorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = nil
}
