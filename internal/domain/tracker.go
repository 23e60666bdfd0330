// Package domain holds the plain data model for sprachlog.
// Types here are pure — no infrastructure dependency, no I/O.
package domain

import (
	"fmt"
	"math"
	"time"
)

// DayFormat is the canonical calendar-day key used throughout the tracker.
const DayFormat = "2006-01-02"

// FormatDay renders a time as a calendar-day key.
func FormatDay(t time.Time) string {
	return t.Format(DayFormat)
}

// ParseDay parses a calendar-day key back into a UTC midnight time.
func ParseDay(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DayFormat, s, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", s, err)
	}
	return t, nil
}

// ─── Task Types ─────────────────────────────────────────────────────────────

// Task is a single study task on a given day's list.
type Task struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Emoji            string `json:"emoji"`
	Duration         int    `json:"duration"` // planned minutes
	Completed        bool   `json:"completed"`
	Description      string `json:"description,omitempty"`
	Notes            string `json:"notes,omitempty"`
	Link             string `json:"link,omitempty"`
	Tags             string `json:"tags,omitempty"`
	PomodoroSessions int    `json:"pomodoro_sessions"`
}

// ─── Stats Types ────────────────────────────────────────────────────────────

// DailyStats is an immutable snapshot of one day's study activity.
// Replaced wholesale whenever that day's task list changes.
type DailyStats struct {
	Date             string `json:"date"`
	TasksCompleted   int    `json:"tasks_completed"`
	TotalTasks       int    `json:"total_tasks"`
	TimeSpent        int    `json:"time_spent"` // minutes, completed tasks only
	PomodoroSessions int    `json:"pomodoro_sessions"`
	CompletionRate   int    `json:"completion_rate"` // 0–100
}

// WeeklyStats summarizes one ISO week of daily stats.
type WeeklyStats struct {
	WeekStart         string `json:"week_start"`
	WeekEnd           string `json:"week_end"`
	DaysCompleted     int    `json:"days_completed"`
	TotalTimeSpent    int    `json:"total_time_spent"`
	AverageCompletion int    `json:"average_completion"`
	Streak            int    `json:"streak"`
}

// MonthlyStats summarizes one calendar month of daily stats.
type MonthlyStats struct {
	Month            int     `json:"month"` // 1–12
	Year             int     `json:"year"`
	DaysActive       int     `json:"days_active"` // days with time_spent > 0
	TotalHours       float64 `json:"total_hours"` // one decimal
	AverageDailyTime int     `json:"average_daily_time"` // minutes per active day
	BestStreak       int     `json:"best_streak"`
	TasksCompleted   int     `json:"tasks_completed"`
}

// YearlyProgress folds a year's day-history into derived totals.
// One instance per calendar year, reconstructible from DailyStats alone.
type YearlyProgress struct {
	Year          int            `json:"year"`
	DailyStats    []DailyStats   `json:"daily_stats"` // ascending by date, unique per date
	WeeklyStats   []WeeklyStats  `json:"weekly_stats"`
	MonthlyStats  []MonthlyStats `json:"monthly_stats"`
	TotalHours    float64        `json:"total_hours"` // one decimal
	TotalDays     int            `json:"total_days"`  // days with completion_rate == 100
	LongestStreak int            `json:"longest_streak"`
	CurrentStreak int            `json:"current_streak"`
	Level         int            `json:"level"`
	Experience    int            `json:"experience"` // percent toward next level
}

// LearningGoals are user-editable targets. No derived invariants —
// used only as denominators for progress ratios.
type LearningGoals struct {
	DailyTimeGoal int `json:"daily_time_goal" toml:"daily_time_goal"` // minutes
	WeeklyGoal    int `json:"weekly_goal" toml:"weekly_goal"`         // days per week
	MonthlyGoal   int `json:"monthly_goal" toml:"monthly_goal"`       // hours per month
	YearlyGoal    int `json:"yearly_goal" toml:"yearly_goal"`         // hours per year
}

// DefaultGoals returns the built-in targets.
func DefaultGoals() LearningGoals {
	return LearningGoals{
		DailyTimeGoal: 240,
		WeeklyGoal:    5,
		MonthlyGoal:   80,
		YearlyGoal:    1000,
	}
}

// RoundHours rounds minutes to hours with one decimal place.
func RoundHours(minutes int) float64 {
	return math.Round(float64(minutes)/60*10) / 10
}

// FormatMinutes renders a minute count as "2h 15min", "45min" or "3h".
func FormatMinutes(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	switch {
	case h == 0:
		return fmt.Sprintf("%dmin", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh %dmin", h, m)
	}
}

// ─── Achievement Types ──────────────────────────────────────────────────────

// Metric identifies which cumulative statistic an achievement is tied to.
type Metric string

const (
	MetricStreak Metric = "streak"
	MetricHours  Metric = "hours"
	MetricDays   Metric = "days"
	MetricTasks  Metric = "tasks"
	MetricLevel  Metric = "level"
)

// Requirement is the threshold an achievement's metric must reach.
type Requirement struct {
	Metric Metric  `json:"type"`
	Value  float64 `json:"value"`
}

// Achievement is a one-way unlockable badge. Unlocked never transitions
// back to locked.
type Achievement struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Icon        string      `json:"icon"`
	Unlocked    bool        `json:"unlocked"`
	UnlockedAt  *time.Time  `json:"unlocked_at,omitempty"`
	Requirement Requirement `json:"requirement"`
}

// UserStats is the metrics snapshot fed to the achievement evaluator.
type UserStats struct {
	TotalHours    float64 `json:"total_hours"`
	TotalDays     int     `json:"total_days"`
	CurrentStreak int     `json:"current_streak"`
	Level         int     `json:"level"`
	TotalTasks    int     `json:"total_tasks"`
}

// MetricValue returns the snapshot value for a given metric.
func (s UserStats) MetricValue(m Metric) float64 {
	switch m {
	case MetricStreak:
		return float64(s.CurrentStreak)
	case MetricHours:
		return s.TotalHours
	case MetricDays:
		return float64(s.TotalDays)
	case MetricTasks:
		return float64(s.TotalTasks)
	case MetricLevel:
		return float64(s.Level)
	default:
		return 0
	}
}

// ─── Vocabulary Types ───────────────────────────────────────────────────────

// CEFRLevel is a Common European Framework language level.
type CEFRLevel string

const (
	LevelA1 CEFRLevel = "A1"
	LevelA2 CEFRLevel = "A2"
	LevelB1 CEFRLevel = "B1"
	LevelB2 CEFRLevel = "B2"
	LevelC1 CEFRLevel = "C1"
	LevelC2 CEFRLevel = "C2"
)

// VocabularyEntry is one word added to the vocabulary bank.
// Adding an entry counts as streak-qualifying activity for its day.
type VocabularyEntry struct {
	ID          string    `json:"id"` // uuid
	Word        string    `json:"word"`
	Translation string    `json:"translation"`
	Example     string    `json:"example,omitempty"`
	Level       CEFRLevel `json:"level"`
	Category    string    `json:"category,omitempty"`
	Source      string    `json:"source,omitempty"`
	Date        string    `json:"date"` // calendar day the word was added
	AddedAt     time.Time `json:"added_at"`
}
