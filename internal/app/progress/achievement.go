package progress

import (
	"time"

	"github.com/sprachlog/sprachlog/internal/domain"
)

// DefaultAchievements returns the built-in achievement catalog.
// IDs are stable keys — persisted state is matched against them.
func DefaultAchievements() []domain.Achievement {
	return []domain.Achievement{
		{
			ID: "first_day", Name: "First Day", Icon: "🎯",
			Description: "Complete your first study day",
			Requirement: domain.Requirement{Metric: domain.MetricDays, Value: 1},
		},
		{
			ID: "week_warrior", Name: "Week Warrior", Icon: "🔥",
			Description: "Study 7 days in a row",
			Requirement: domain.Requirement{Metric: domain.MetricStreak, Value: 7},
		},
		{
			ID: "month_master", Name: "Month Master", Icon: "👑",
			Description: "Study 30 days in a row",
			Requirement: domain.Requirement{Metric: domain.MetricStreak, Value: 30},
		},
		{
			ID: "centurion", Name: "Centurion", Icon: "🏛️",
			Description: "Study 100 days in a row",
			Requirement: domain.Requirement{Metric: domain.MetricStreak, Value: 100},
		},
		{
			ID: "hundred_hours", Name: "Hundred Hours", Icon: "⏰",
			Description: "Reach 100 hours of study time",
			Requirement: domain.Requirement{Metric: domain.MetricHours, Value: 100},
		},
		{
			ID: "five_hundred_hours", Name: "Marathon Mind", Icon: "🏃",
			Description: "Reach 500 hours of study time",
			Requirement: domain.Requirement{Metric: domain.MetricHours, Value: 500},
		},
		{
			ID: "level_10", Name: "Level 10", Icon: "⭐",
			Description: "Reach level 10",
			Requirement: domain.Requirement{Metric: domain.MetricLevel, Value: 10},
		},
		{
			ID: "task_master", Name: "Task Master", Icon: "📚",
			Description: "Complete 1000 tasks",
			Requirement: domain.Requirement{Metric: domain.MetricTasks, Value: 1000},
		},
	}
}

// EvaluateAchievements tests every locked achievement against the metrics
// snapshot in a single pass. Unlocking is a one-way transition: entries
// already unlocked are returned untouched, never re-evaluated. The second
// return value lists only the achievements that transitioned during this
// call, so the caller can emit exactly one notification per unlock.
func EvaluateAchievements(catalog []domain.Achievement, stats domain.UserStats, now time.Time) (updated, newly []domain.Achievement) {
	updated = make([]domain.Achievement, len(catalog))
	for i, a := range catalog {
		if a.Unlocked {
			updated[i] = a
			continue
		}
		if stats.MetricValue(a.Requirement.Metric) >= a.Requirement.Value {
			unlockedAt := now
			a.Unlocked = true
			a.UnlockedAt = &unlockedAt
			newly = append(newly, a)
		}
		updated[i] = a
	}
	return updated, newly
}
