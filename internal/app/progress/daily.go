// Package progress implements the statistics engine: daily aggregation,
// streak computation, level/experience mapping, achievement evaluation,
// and yearly/monthly rollups. Every function here is pure — callers own
// all persistence and notification side effects.
package progress

import (
	"math"

	"github.com/sprachlog/sprachlog/internal/domain"
)

// CalculateDailyStats reduces one day's task list into a DailyStats snapshot.
// Time spent counts completed tasks only; pomodoro sessions count all tasks.
// An empty task list yields an all-zero record.
func CalculateDailyStats(tasks []domain.Task, date string) domain.DailyStats {
	stats := domain.DailyStats{
		Date:       date,
		TotalTasks: len(tasks),
	}

	for _, t := range tasks {
		stats.PomodoroSessions += t.PomodoroSessions
		if t.Completed {
			stats.TasksCompleted++
			stats.TimeSpent += t.Duration
		}
	}

	if stats.TotalTasks > 0 {
		stats.CompletionRate = int(math.Round(float64(stats.TasksCompleted) / float64(stats.TotalTasks) * 100))
	}
	return stats
}
