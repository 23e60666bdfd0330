// Package metrics provides Prometheus metrics for sprachlog.
// Counters and gauges for study activity, exposed at /metrics when the
// API server runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ─── Study Activity ─────────────────────────────────────────────────────────

// TasksCompleted tracks tasks marked complete, by task id.
var TasksCompleted = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "sprachlog",
	Name:      "tasks_completed_total",
	Help:      "Total study tasks marked complete.",
}, []string{"task"})

// StudyMinutes tracks study time recorded through completed tasks.
var StudyMinutes = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "sprachlog",
	Name:      "study_minutes_total",
	Help:      "Total study minutes from completed tasks.",
})

// PomodoroSessions tracks finished focus sessions.
var PomodoroSessions = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "sprachlog",
	Name:      "pomodoro_sessions_total",
	Help:      "Total finished pomodoro sessions.",
})

// VocabularyAdded tracks words added to the vocabulary bank.
var VocabularyAdded = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "sprachlog",
	Name:      "vocabulary_added_total",
	Help:      "Total vocabulary entries added.",
})

// ─── Progress ───────────────────────────────────────────────────────────────

// CurrentStreak tracks the streak after the latest recalculation.
var CurrentStreak = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "sprachlog",
	Name:      "streak_days",
	Help:      "Current streak in days.",
})

// CurrentLevel tracks the level after the latest recalculation.
var CurrentLevel = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "sprachlog",
	Name:      "level",
	Help:      "Current level derived from total study hours.",
})

// AchievementsUnlocked tracks unlock transitions.
var AchievementsUnlocked = promauto.NewCounter(prometheus.CounterOpts{
	Namespace: "sprachlog",
	Name:      "achievements_unlocked_total",
	Help:      "Total achievements unlocked.",
})

// RecalcDuration tracks how long a full progress recalculation takes.
var RecalcDuration = promauto.NewHistogram(prometheus.HistogramOpts{
	Namespace: "sprachlog",
	Name:      "recalc_duration_seconds",
	Help:      "Duration of a full progress recalculation.",
	Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
})
