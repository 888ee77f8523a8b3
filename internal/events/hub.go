// Package events tells observers that ledger state changed. Events carry no
// payload contract beyond "look again"; delivery is fire-and-forget.
package events

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Type names a change signal.
type Type string

const (
	TransactionAdded   Type = "transaction.added"
	TransactionUpdated Type = "transaction.updated"
	TransactionDeleted Type = "transaction.deleted"
	BalanceChanged     Type = "balance.changed"
	BudgetUpdated      Type = "budget.updated"
	BudgetsReset       Type = "budgets.reset"
	NotificationAdded  Type = "notification.added"
	AutopayCreated     Type = "autopay.created"
	AutopayDisabled    Type = "autopay.disabled"
	CategoryUpdated    Type = "category.updated"
	GoalUpdated        Type = "goal.updated"
)

// Event is a single change signal.
type Event struct {
	Type      Type           `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data,omitempty"`
}

// Publisher is the side of the hub the services depend on.
type Publisher interface {
	Publish(event Event)
}

// subscriberBuffer bounds how far a slow subscriber may lag before events
// are dropped for it.
const subscriberBuffer = 16

// Hub fans events out to subscribers.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uuid.UUID]chan Event
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{subscribers: make(map[uuid.UUID]chan Event)}
}

// Subscribe registers a new observer and returns its channel and an
// unsubscribe function. The channel is closed by unsubscribe.
func (h *Hub) Subscribe() (<-chan Event, func()) {
	id := uuid.New()
	ch := make(chan Event, subscriberBuffer)

	h.mu.Lock()
	h.subscribers[id] = ch
	h.mu.Unlock()

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			delete(h.subscribers, id)
			close(ch)
		})
	}
}

// Publish delivers event to every subscriber without blocking. Subscribers
// whose buffer is full miss the event.
func (h *Hub) Publish(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}

// SubscriberCount returns the number of live subscriptions.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}

// Multi publishes to several publishers in order.
type Multi []Publisher

// Publish forwards event to each publisher.
func (m Multi) Publish(event Event) {
	for _, p := range m {
		p.Publish(event)
	}
}

type discard struct{}

func (discard) Publish(Event) {}

// Discard drops every event.
var Discard Publisher = discard{}
