package services

import (
	"context"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/events"
	"pocketledger/internal/models"
	"pocketledger/internal/uuid"
)

// notificationService handles the notification history.
type notificationService struct {
	core *Core
}

// NewNotificationService creates a new NotificationServicer.
func NewNotificationService(core *Core) NotificationServicer {
	return &notificationService{core: core}
}

// notify prepends n to the history and evicts the oldest entries past the cap.
func (c *Core) notify(ctx context.Context, n models.Notification) error {
	history, err := c.records.Notifications(ctx)
	if err != nil {
		return err
	}

	if n.ID == "" {
		n.ID = uuid.New()
	}
	if n.Time.IsZero() {
		n.Time = c.now()
	}

	history = append([]models.Notification{n}, history...)
	if len(history) > c.opts.NotificationCap {
		history = history[:c.opts.NotificationCap]
	}

	if err := c.records.SaveNotifications(ctx, history); err != nil {
		return err
	}

	c.publish(events.NotificationAdded, map[string]any{
		"id":       n.ID,
		"severity": n.Severity,
		"title":    n.Title,
	})
	return nil
}

// ListNotifications returns the history newest first.
func (s *notificationService) ListNotifications(ctx context.Context, unreadOnly bool) ([]models.Notification, error) {
	var result []models.Notification
	err := s.core.exclusive(ctx, func() error {
		history, err := s.core.records.Notifications(ctx)
		if err != nil {
			return err
		}
		if !unreadOnly {
			result = history
			return nil
		}
		result = make([]models.Notification, 0, len(history))
		for _, n := range history {
			if !n.Read {
				result = append(result, n)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// UnreadCount returns the number of unread notifications.
func (s *notificationService) UnreadCount(ctx context.Context) (int, error) {
	unread, err := s.ListNotifications(ctx, true)
	if err != nil {
		return 0, err
	}
	return len(unread), nil
}

// MarkRead flags one notification as read.
func (s *notificationService) MarkRead(ctx context.Context, id string) error {
	return s.core.exclusive(ctx, func() error {
		history, err := s.core.records.Notifications(ctx)
		if err != nil {
			return err
		}
		for i := range history {
			if history[i].ID != id {
				continue
			}
			if history[i].Read {
				return nil
			}
			history[i].Read = true
			return s.core.records.SaveNotifications(ctx, history)
		}
		return apperrors.ErrNotificationNotFound
	})
}

// MarkAllRead flags every notification as read and returns how many changed.
func (s *notificationService) MarkAllRead(ctx context.Context) (int, error) {
	changed := 0
	err := s.core.exclusive(ctx, func() error {
		history, err := s.core.records.Notifications(ctx)
		if err != nil {
			return err
		}
		for i := range history {
			if !history[i].Read {
				history[i].Read = true
				changed++
			}
		}
		if changed == 0 {
			return nil
		}
		return s.core.records.SaveNotifications(ctx, history)
	})
	if err != nil {
		return 0, err
	}
	return changed, nil
}

// ClearNotifications empties the history.
func (s *notificationService) ClearNotifications(ctx context.Context) error {
	return s.core.exclusive(ctx, func() error {
		return s.core.records.SaveNotifications(ctx, []models.Notification{})
	})
}
