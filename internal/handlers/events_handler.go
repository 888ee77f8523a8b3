package handlers

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"

	"pocketledger/internal/events"
)

// keepAliveInterval spaces the comment frames that hold idle streams open.
const keepAliveInterval = 25 * time.Second

// Subscriber is the side of the event hub the stream reads from.
type Subscriber interface {
	Subscribe() (<-chan events.Event, func())
}

// EventsHandler streams ledger change events to observers.
type EventsHandler struct {
	hub       Subscriber
	keepAlive time.Duration
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(hub Subscriber) *EventsHandler {
	return &EventsHandler{hub: hub, keepAlive: keepAliveInterval}
}

// Stream serves change events as server-sent events until the client leaves.
// @Summary     Event stream
// @Description Server-sent events for balance, transaction, budget, notification and autopay changes
// @Tags        events
// @Produce     text/event-stream
// @Security    BearerAuth
// @Success     200 {object} events.Event "Event stream"
// @Router      /events [get]
func (h *EventsHandler) Stream(c *gin.Context) {
	ch, unsubscribe := h.hub.Subscribe()
	defer unsubscribe()

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")

	ticker := time.NewTicker(h.keepAlive)
	defer ticker.Stop()

	ctx := c.Request.Context()
	c.Stream(func(w io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case event, ok := <-ch:
			if !ok {
				return false
			}
			c.SSEvent(string(event.Type), event)
			return true
		case <-ticker.C:
			_, _ = io.WriteString(w, ": keep-alive\n\n")
			return true
		}
	})
}
