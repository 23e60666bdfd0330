// Package tracker is the orchestration layer: it loads state from the
// store, runs the pure progress engine, and writes results, metrics and
// notifications back. Every mutation ends in a recalculation, so derived
// state never drifts from the day-history.
package tracker

import (
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/sprachlog/sprachlog/internal/app/progress"
	"github.com/sprachlog/sprachlog/internal/domain"
	"github.com/sprachlog/sprachlog/internal/infra/metrics"
	"github.com/sprachlog/sprachlog/internal/infra/sqlite"
)

// Service coordinates the study tracker.
type Service struct {
	db     *sqlite.DB
	plan   domain.Plan
	policy domain.NotificationPolicy
}

// New creates the tracker service and seeds the achievement catalog.
// Seeding never touches existing unlock state.
func New(db *sqlite.DB, plan domain.Plan, policy domain.NotificationPolicy) (*Service, error) {
	s := &Service{db: db, plan: plan, policy: policy}
	if err := db.SeedAchievements(progress.DefaultAchievements()); err != nil {
		return nil, fmt.Errorf("seed achievements: %w", err)
	}
	return s, nil
}

// Day returns one day's task list, seeding it from the weekly plan the
// first time the day is viewed. Seeding is lazy and happens exactly once.
func (s *Service) Day(date string) ([]domain.Task, error) {
	tasks, err := s.db.ListDayTasks(date)
	if err != nil {
		return nil, err
	}
	if tasks != nil {
		return tasks, nil
	}

	day, err := domain.ParseDay(date)
	if err != nil {
		return nil, err
	}
	tasks = s.plan.TasksFor(domain.WeekdayOf(day))
	if err := s.db.ReplaceDayTasks(date, tasks); err != nil {
		return nil, fmt.Errorf("seed day %s: %w", date, err)
	}
	return tasks, nil
}

// CompleteTask marks a task done and recalculates the day.
func (s *Service) CompleteTask(date, taskID string) error {
	return s.setCompleted(date, taskID, true)
}

// UncompleteTask reverts a task to not done and recalculates the day.
// Unchecking rewinds stats and streaks; unlocked achievements stay.
func (s *Service) UncompleteTask(date, taskID string) error {
	return s.setCompleted(date, taskID, false)
}

func (s *Service) setCompleted(date, taskID string, completed bool) error {
	if _, err := s.Day(date); err != nil {
		return err
	}
	if err := s.db.SetTaskCompleted(date, taskID, completed); err != nil {
		return err
	}
	if completed {
		metrics.TasksCompleted.WithLabelValues(taskID).Inc()
		if tasks, err := s.db.ListDayTasks(date); err == nil {
			for _, t := range tasks {
				if t.ID == taskID {
					metrics.StudyMinutes.Add(float64(t.Duration))
				}
			}
		}
	}
	return s.Recalculate(date)
}

// SetNote stores the free-text note for a day. A non-empty note counts
// as streak-qualifying activity, so the day is recalculated.
func (s *Service) SetNote(date, notes string) error {
	if err := s.db.SetDayNote(date, notes); err != nil {
		return err
	}
	return s.Recalculate(date)
}

// Note returns the day's note, "" if none.
func (s *Service) Note(date string) (string, error) {
	return s.db.GetDayNote(date)
}

// AddVocabulary adds a word to the vocabulary bank and recalculates its
// day — a new word keeps the streak alive even with no task completed.
func (s *Service) AddVocabulary(v domain.VocabularyEntry) (domain.VocabularyEntry, error) {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	if v.AddedAt.IsZero() {
		v.AddedAt = time.Now()
	}
	if v.Date == "" {
		v.Date = domain.FormatDay(v.AddedAt)
	}
	if v.Level == "" {
		v.Level = domain.LevelA1
	}
	if err := s.db.InsertVocabulary(v); err != nil {
		return domain.VocabularyEntry{}, err
	}
	metrics.VocabularyAdded.Inc()
	return v, s.Recalculate(v.Date)
}

// Vocabulary returns the vocabulary bank, newest first.
func (s *Service) Vocabulary(limit int) ([]domain.VocabularyEntry, error) {
	return s.db.ListVocabulary(limit)
}

// RecordPomodoro credits finished focus sessions to a task and
// recalculates the day.
func (s *Service) RecordPomodoro(date, taskID string, sessions int) error {
	if sessions <= 0 {
		return nil
	}
	if _, err := s.Day(date); err != nil {
		return err
	}
	if err := s.db.AddTaskPomodoro(date, taskID, sessions); err != nil {
		return err
	}
	metrics.PomodoroSessions.Add(float64(sessions))
	return s.Recalculate(date)
}

// Recalculate rebuilds the full derived state for the year containing
// date: the day's stats snapshot, the yearly rollup, achievement unlocks
// and progress gauges. Safe to call any number of times — recomputation
// over identical history yields identical results.
func (s *Service) Recalculate(date string) error {
	timer := time.Now()
	defer func() { metrics.RecalcDuration.Observe(time.Since(timer).Seconds()) }()

	day, err := domain.ParseDay(date)
	if err != nil {
		return err
	}

	tasks, err := s.db.ListDayTasks(date)
	if err != nil {
		return err
	}
	stats := progress.CalculateDailyStats(tasks, date)
	if err := s.db.UpsertDailyStats(stats); err != nil {
		return fmt.Errorf("upsert stats %s: %w", date, err)
	}

	return s.refreshYear(day.Year())
}

// refreshYear rebuilds the derived state for a year without touching any
// day snapshot: rollup, achievement unlocks and progress gauges.
func (s *Service) refreshYear(year int) error {
	yp, err := s.YearProgress(year)
	if err != nil {
		return err
	}

	totalTasks, err := s.db.TotalTasksCompleted()
	if err != nil {
		return err
	}
	snapshot := domain.UserStats{
		TotalHours:    yp.TotalHours,
		TotalDays:     yp.TotalDays,
		CurrentStreak: yp.CurrentStreak,
		Level:         yp.Level,
		TotalTasks:    totalTasks,
	}

	if err := s.applyAchievements(snapshot); err != nil {
		return err
	}
	if err := s.noteLevelUp(yp.Level); err != nil {
		return err
	}

	metrics.CurrentStreak.Set(float64(yp.CurrentStreak))
	metrics.CurrentLevel.Set(float64(yp.Level))
	return nil
}

// applyAchievements evaluates the persisted catalog against the metrics
// snapshot and records each unlock transition exactly once.
func (s *Service) applyAchievements(snapshot domain.UserStats) error {
	catalog, err := s.db.ListAchievements()
	if err != nil {
		return err
	}

	now := time.Now()
	_, newly := progress.EvaluateAchievements(catalog, snapshot, now)
	for _, a := range newly {
		isNew, err := s.db.UnlockAchievement(a.ID, now)
		if err != nil {
			return fmt.Errorf("unlock %s: %w", a.ID, err)
		}
		if !isNew {
			continue
		}
		metrics.AchievementsUnlocked.Inc()
		s.notify(domain.Notification{
			Type:  domain.NotifyAchievement,
			Title: fmt.Sprintf("%s %s", a.Icon, a.Name),
			Body:  a.Description,
		})
	}
	return nil
}

// noteLevelUp emits a level-up notification when the level derived from
// total hours passes the last recorded one.
func (s *Service) noteLevelUp(level int) error {
	raw, err := s.db.GetSetting("level")
	if err != nil {
		return err
	}
	prev, _ := strconv.Atoi(raw)
	if prev == level {
		return nil
	}
	if raw != "" && level > prev {
		s.notify(domain.Notification{
			Type:  domain.NotifyLevelUp,
			Title: fmt.Sprintf("Level %d reached", level),
			Body:  fmt.Sprintf("Your study time carried you to level %d. Keep going!", level),
		})
	}
	return s.db.SetSetting("level", fmt.Sprint(level))
}

// YearProgress recomputes the full yearly rollup from the stored
// day-history. Nothing here is cached — the history is the only truth.
func (s *Service) YearProgress(year int) (domain.YearlyProgress, error) {
	days, err := s.db.ListDailyStatsForYear(year)
	if err != nil {
		return domain.YearlyProgress{}, err
	}
	yp := progress.BuildYearlyProgress(year, days, s.activeOn, time.Now())
	return yp, nil
}

// activeOn is the streak activity test: a day counts when it has a
// completed task, a non-empty note, or a vocabulary entry.
func (s *Service) activeOn(day time.Time) bool {
	date := domain.FormatDay(day)

	if stats, err := s.db.GetDailyStats(date); err == nil && stats != nil && stats.TasksCompleted > 0 {
		return true
	}
	if note, err := s.db.GetDayNote(date); err == nil && note != "" {
		return true
	}
	if n, err := s.db.CountVocabularyForDay(date); err == nil && n > 0 {
		return true
	}
	return false
}

// Achievements returns the persisted catalog with unlock state.
func (s *Service) Achievements() ([]domain.Achievement, error) {
	return s.db.ListAchievements()
}

// Reset wipes all user data and reseeds the achievement catalog.
func (s *Service) Reset() error {
	if err := s.db.ResetAll(); err != nil {
		return err
	}
	return s.db.SeedAchievements(progress.DefaultAchievements())
}
