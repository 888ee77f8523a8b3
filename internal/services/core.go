package services

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"pocketledger/internal/events"
	"pocketledger/internal/logger"
	"pocketledger/internal/repository"
)

// DefaultNotificationCap is how many notifications the history keeps when
// Options.NotificationCap is unset.
const DefaultNotificationCap = 100

// Options tunes scheduling and notification behaviour.
type Options struct {
	// CatchUp makes a single pass advance budgets and autopays until they
	// are no longer due, instead of one step per pass.
	CatchUp bool
	// DedupeBudgetAlerts notifies each threshold band at most once per
	// budget period.
	DedupeBudgetAlerts bool
	NotificationCap    int

	Clock  func() time.Time
	Logger *zap.SugaredLogger
}

// Core is the state shared by every service of one ledger: the collections,
// the event publisher and the single-writer gate. Public service operations
// run one at a time behind the gate; the unexported helpers on Core assume
// the caller already holds it.
type Core struct {
	records *repository.Records
	events  events.Publisher
	writer  *semaphore.Weighted
	opts    Options
	now     func() time.Time
	log     *zap.SugaredLogger
}

// NewCore creates the shared service state.
func NewCore(records *repository.Records, publisher events.Publisher, opts Options) *Core {
	if opts.NotificationCap <= 0 {
		opts.NotificationCap = DefaultNotificationCap
	}
	now := opts.Clock
	if now == nil {
		now = time.Now
	}
	log := opts.Logger
	if log == nil {
		log = logger.Named("ledger")
	}
	if publisher == nil {
		publisher = events.Discard
	}

	return &Core{
		records: records,
		events:  publisher,
		writer:  semaphore.NewWeighted(1),
		opts:    opts,
		now:     now,
		log:     log,
	}
}

// exclusive runs fn while holding the writer gate. A cancelled ctx abandons
// the wait for the gate.
func (c *Core) exclusive(ctx context.Context, fn func() error) error {
	if err := c.writer.Acquire(ctx, 1); err != nil {
		return err
	}
	defer c.writer.Release(1)
	return fn()
}

func (c *Core) publish(typ events.Type, data map[string]any) {
	c.events.Publish(events.Event{Type: typ, Timestamp: c.now(), Data: data})
}
