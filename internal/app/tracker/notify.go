package tracker

import (
	"strconv"
	"strings"
	"time"

	"github.com/sprachlog/sprachlog/internal/domain"
)

// notify records a notification unless the policy suppresses it.
// Suppression is silent: a dropped notification is not an error, and
// the triggering mutation already succeeded.
func (s *Service) notify(n domain.Notification) {
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}

	midnight := truncateToDay(n.CreatedAt)
	count, err := s.db.NotificationCountSince(midnight)
	if err != nil || count >= s.policy.MaxPerDay {
		return
	}
	if s.isQuietHour(n.CreatedAt) {
		return
	}

	n.Shown = false
	_, _ = s.db.InsertNotification(n)
}

// PendingNotifications returns unshown notifications, newest first.
func (s *Service) PendingNotifications(limit int) ([]domain.Notification, error) {
	return s.db.ListPendingNotifications(limit)
}

// MarkNotificationShown marks a notification as displayed.
func (s *Service) MarkNotificationShown(id int64) error {
	return s.db.MarkNotificationShown(id)
}

// isQuietHour reports whether t falls inside the policy's quiet window.
// The window may wrap midnight (22:00–08:00).
func (s *Service) isQuietHour(t time.Time) bool {
	start := minutesOfDay(s.policy.QuietStart)
	end := minutesOfDay(s.policy.QuietEnd)
	now := t.Hour()*60 + t.Minute()

	if start > end {
		return now >= start || now < end
	}
	return now >= start && now < end
}

// minutesOfDay parses "HH:MM" into minutes past midnight.
func minutesOfDay(s string) int {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0
	}
	h, _ := strconv.Atoi(parts[0])
	m, _ := strconv.Atoi(parts[1])
	return h*60 + m
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
