package domain

import "time"

// NotificationType categorizes notifications.
type NotificationType string

const (
	NotifyAchievement  NotificationType = "achievement"
	NotifyLevelUp      NotificationType = "level_up"
	NotifyDailySummary NotificationType = "daily_summary"
)

// Notification is a user-facing message the UI collaborator may display.
// The tracker only records it; display is out of scope.
type Notification struct {
	ID        int64            `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	CreatedAt time.Time        `json:"created_at"`
	Shown     bool             `json:"shown"`
}

// NotificationPolicy governs how often notifications are recorded.
type NotificationPolicy struct {
	MaxPerDay  int    `json:"max_per_day" toml:"max_per_day"`
	QuietStart string `json:"quiet_start" toml:"quiet_start"` // "22:00"
	QuietEnd   string `json:"quiet_end" toml:"quiet_end"`     // "08:00"
}

// DefaultNotificationPolicy allows a handful of messages per day and
// stays silent overnight.
func DefaultNotificationPolicy() NotificationPolicy {
	return NotificationPolicy{
		MaxPerDay:  5,
		QuietStart: "22:00",
		QuietEnd:   "08:00",
	}
}
