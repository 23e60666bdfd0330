package progress_test

import (
	"testing"
	"time"

	"github.com/sprachlog/sprachlog/internal/app/progress"
	"github.com/sprachlog/sprachlog/internal/domain"
)

func TestEvaluateAchievements_UnlocksAtThreshold(t *testing.T) {
	catalog := []domain.Achievement{
		{
			ID:          "hundred_hours",
			Requirement: domain.Requirement{Metric: domain.MetricHours, Value: 100},
		},
	}
	stats := domain.UserStats{TotalHours: 100.0}
	now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)

	updated, newly := progress.EvaluateAchievements(catalog, stats, now)

	if len(newly) != 1 || newly[0].ID != "hundred_hours" {
		t.Fatalf("expected hundred_hours newly unlocked, got %v", newly)
	}
	if !updated[0].Unlocked {
		t.Error("expected catalog entry unlocked")
	}
	if updated[0].UnlockedAt == nil || !updated[0].UnlockedAt.Equal(now) {
		t.Errorf("expected unlock time %v, got %v", now, updated[0].UnlockedAt)
	}
}

func TestEvaluateAchievements_BelowThresholdStaysLocked(t *testing.T) {
	catalog := []domain.Achievement{
		{ID: "week_warrior", Requirement: domain.Requirement{Metric: domain.MetricStreak, Value: 7}},
	}
	stats := domain.UserStats{CurrentStreak: 6}

	updated, newly := progress.EvaluateAchievements(catalog, stats, time.Now())

	if len(newly) != 0 {
		t.Errorf("expected nothing unlocked, got %v", newly)
	}
	if updated[0].Unlocked {
		t.Error("expected entry to stay locked")
	}
}

func TestEvaluateAchievements_MonotonicRatchet(t *testing.T) {
	unlockedAt := time.Date(2025, 2, 1, 9, 0, 0, 0, time.UTC)
	catalog := []domain.Achievement{
		{
			ID:          "week_warrior",
			Unlocked:    true,
			UnlockedAt:  &unlockedAt,
			Requirement: domain.Requirement{Metric: domain.MetricStreak, Value: 7},
		},
	}

	// The streak dropped back to zero — the unlock must survive.
	stats := domain.UserStats{CurrentStreak: 0}
	updated, newly := progress.EvaluateAchievements(catalog, stats, time.Now())

	if len(newly) != 0 {
		t.Errorf("already-unlocked entry reported as new: %v", newly)
	}
	if !updated[0].Unlocked {
		t.Error("unlocked achievement was re-locked")
	}
	if updated[0].UnlockedAt == nil || !updated[0].UnlockedAt.Equal(unlockedAt) {
		t.Error("original unlock timestamp was overwritten")
	}
}

func TestEvaluateAchievements_EachMetricFamily(t *testing.T) {
	now := time.Now()
	stats := domain.UserStats{
		TotalHours:    150,
		TotalDays:     40,
		CurrentStreak: 12,
		Level:         16,
		TotalTasks:    1200,
	}

	tests := []struct {
		metric domain.Metric
		value  float64
		unlock bool
	}{
		{domain.MetricHours, 100, true},
		{domain.MetricHours, 200, false},
		{domain.MetricDays, 30, true},
		{domain.MetricStreak, 12, true},
		{domain.MetricStreak, 13, false},
		{domain.MetricLevel, 10, true},
		{domain.MetricTasks, 1000, true},
	}

	for _, tt := range tests {
		catalog := []domain.Achievement{
			{ID: "probe", Requirement: domain.Requirement{Metric: tt.metric, Value: tt.value}},
		}
		_, newly := progress.EvaluateAchievements(catalog, stats, now)
		got := len(newly) == 1
		if got != tt.unlock {
			t.Errorf("metric %s >= %v: expected unlock=%v, got %v", tt.metric, tt.value, tt.unlock, got)
		}
	}
}

func TestDefaultAchievements_AllLocked(t *testing.T) {
	catalog := progress.DefaultAchievements()
	if len(catalog) == 0 {
		t.Fatal("expected a non-empty default catalog")
	}

	seen := make(map[string]bool)
	for _, a := range catalog {
		if a.Unlocked || a.UnlockedAt != nil {
			t.Errorf("default achievement %s must start locked", a.ID)
		}
		if seen[a.ID] {
			t.Errorf("duplicate achievement id %s", a.ID)
		}
		seen[a.ID] = true
	}
}
