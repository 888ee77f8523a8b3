package services

import (
	"fmt"
	"testing"

	"pocketledger/internal/models"
	"pocketledger/internal/testutil"
)

func (e *testEnv) addNotifications(t *testing.T, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		err := e.core.notify(e.ctx, models.Notification{
			Title:    fmt.Sprintf("note %d", i),
			Severity: models.SeverityInfo,
		})
		testutil.AssertNoError(t, err)
	}
}

func TestNotificationHistory(t *testing.T) {
	t.Run("newest_first", func(t *testing.T) {
		env := newTestEnv(t)
		env.addNotifications(t, 3)

		list := env.notificationList(t)
		if len(list) != 3 || list[0].Title != "note 2" || list[2].Title != "note 0" {
			t.Errorf("unexpected order: %+v", list)
		}
		if list[0].ID == "" || list[0].Time.IsZero() {
			t.Error("expected id and time to be stamped")
		}
	})

	t.Run("cap_evicts_oldest", func(t *testing.T) {
		env := newTestEnv(t, func(o *Options) { o.NotificationCap = 5 })
		env.addNotifications(t, 8)

		list := env.notificationList(t)
		if len(list) != 5 {
			t.Fatalf("expected 5 notifications, got %d", len(list))
		}
		if list[0].Title != "note 7" || list[4].Title != "note 3" {
			t.Errorf("expected notes 7..3, got %s..%s", list[0].Title, list[4].Title)
		}
	})

	t.Run("default_cap", func(t *testing.T) {
		env := newTestEnv(t)
		env.addNotifications(t, DefaultNotificationCap+3)

		if n := len(env.notificationList(t)); n != DefaultNotificationCap {
			t.Errorf("expected %d notifications, got %d", DefaultNotificationCap, n)
		}
	})
}

func TestNotificationReadState(t *testing.T) {
	t.Run("mark_read", func(t *testing.T) {
		env := newTestEnv(t)
		env.addNotifications(t, 3)
		list := env.notificationList(t)

		testutil.AssertNoError(t, env.notifications.MarkRead(env.ctx, list[1].ID))

		count, err := env.notifications.UnreadCount(env.ctx)
		testutil.AssertNoError(t, err)
		if count != 2 {
			t.Errorf("expected 2 unread, got %d", count)
		}
		unread, err := env.notifications.ListNotifications(env.ctx, true)
		testutil.AssertNoError(t, err)
		for _, n := range unread {
			if n.ID == list[1].ID {
				t.Error("read notification listed as unread")
			}
		}
	})

	t.Run("mark_all_read", func(t *testing.T) {
		env := newTestEnv(t)
		env.addNotifications(t, 4)

		changed, err := env.notifications.MarkAllRead(env.ctx)
		testutil.AssertNoError(t, err)
		if changed != 4 {
			t.Errorf("expected 4 changed, got %d", changed)
		}

		changed, err = env.notifications.MarkAllRead(env.ctx)
		testutil.AssertNoError(t, err)
		if changed != 0 {
			t.Errorf("expected nothing left to mark, got %d", changed)
		}
	})

	t.Run("clear", func(t *testing.T) {
		env := newTestEnv(t)
		env.addNotifications(t, 2)

		testutil.AssertNoError(t, env.notifications.ClearNotifications(env.ctx))
		if n := len(env.notificationList(t)); n != 0 {
			t.Errorf("expected empty history, got %d", n)
		}
	})

	t.Run("not_found", func(t *testing.T) {
		env := newTestEnv(t)
		testutil.AssertAppError(t, env.notifications.MarkRead(env.ctx, "missing"), "NOTIFICATION_NOT_FOUND")
	})
}
