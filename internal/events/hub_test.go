package events

import (
	"testing"
	"time"
)

func TestHubPublishSubscribe(t *testing.T) {
	hub := NewHub()

	ch, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	hub.Publish(Event{Type: TransactionAdded})

	select {
	case event := <-ch:
		if event.Type != TransactionAdded {
			t.Fatalf("expected %s, got %s", TransactionAdded, event.Type)
		}
		if event.Timestamp.IsZero() {
			t.Fatal("expected timestamp to be set")
		}
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected event to be delivered")
	}
}

func TestHubUnsubscribe(t *testing.T) {
	hub := NewHub()

	ch, unsubscribe := hub.Subscribe()
	unsubscribe()
	unsubscribe()

	if _, ok := <-ch; ok {
		t.Fatal("expected channel to be closed")
	}
	if hub.SubscriberCount() != 0 {
		t.Fatalf("expected no subscribers, got %d", hub.SubscriberCount())
	}

	// Publishing with nobody listening must not block or panic.
	hub.Publish(Event{Type: BalanceChanged})
}

func TestHubDropsWhenSubscriberIsFull(t *testing.T) {
	hub := NewHub()
	ch, unsubscribe := hub.Subscribe()
	defer unsubscribe()

	for i := 0; i < subscriberBuffer+5; i++ {
		hub.Publish(Event{Type: BudgetUpdated})
	}
	if len(ch) != subscriberBuffer {
		t.Fatalf("expected %d buffered events, got %d", subscriberBuffer, len(ch))
	}
}

// countingPublisher tallies published events by type.
type countingPublisher map[Type]int

func (c countingPublisher) Publish(event Event) { c[event.Type]++ }

func TestMulti(t *testing.T) {
	a, b := countingPublisher{}, countingPublisher{}
	m := Multi{a, b}

	m.Publish(Event{Type: TransactionAdded})
	m.Publish(Event{Type: BalanceChanged})
	m.Publish(Event{Type: TransactionAdded})

	if a[TransactionAdded] != 2 || b[BalanceChanged] != 1 {
		t.Fatalf("unexpected counts: %v / %v", a, b)
	}
}
