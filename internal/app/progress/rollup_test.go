package progress_test

import (
	"testing"

	"github.com/sprachlog/sprachlog/internal/app/progress"
	"github.com/sprachlog/sprachlog/internal/domain"
)

func fullDay(date string, minutes int) domain.DailyStats {
	return domain.DailyStats{
		Date:           date,
		TasksCompleted: 4,
		TotalTasks:     4,
		TimeSpent:      minutes,
		CompletionRate: 100,
	}
}

func TestUpsertDay_ReplacesExistingDate(t *testing.T) {
	days := []domain.DailyStats{
		fullDay("2025-01-01", 60),
		fullDay("2025-01-02", 120),
	}

	days = progress.UpsertDay(days, fullDay("2025-01-02", 30))

	if len(days) != 2 {
		t.Fatalf("expected replacement not duplication, got %d entries", len(days))
	}
	if days[1].TimeSpent != 30 {
		t.Errorf("expected replaced entry with 30 minutes, got %d", days[1].TimeSpent)
	}
}

func TestUpsertDay_AppendsAndSorts(t *testing.T) {
	days := []domain.DailyStats{fullDay("2025-01-03", 60)}
	days = progress.UpsertDay(days, fullDay("2025-01-01", 45))

	if len(days) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(days))
	}
	if days[0].Date != "2025-01-01" || days[1].Date != "2025-01-03" {
		t.Errorf("expected ascending date order, got %s then %s", days[0].Date, days[1].Date)
	}
}

func TestBuildYearlyProgress_Totals(t *testing.T) {
	days := []domain.DailyStats{
		fullDay("2025-01-01", 90),
		fullDay("2025-01-02", 60),
		{Date: "2025-01-03", TasksCompleted: 1, TotalTasks: 4, TimeSpent: 30, CompletionRate: 25},
	}
	active := activeSet("2025-01-01", "2025-01-02", "2025-01-03")

	yp := progress.BuildYearlyProgress(2025, days, active, day("2025-01-03"))

	if yp.TotalHours != 3.0 { // 180 minutes
		t.Errorf("expected 3.0 hours, got %v", yp.TotalHours)
	}
	if yp.TotalDays != 2 { // only fully-completed days count
		t.Errorf("expected 2 total days, got %d", yp.TotalDays)
	}
	if yp.CurrentStreak != 3 {
		t.Errorf("expected current streak 3, got %d", yp.CurrentStreak)
	}
	if yp.LongestStreak != 3 {
		t.Errorf("expected longest streak 3, got %d", yp.LongestStreak)
	}
	if yp.Level != 1 || yp.Experience != 30 {
		t.Errorf("expected level 1 / experience 30, got %d / %d", yp.Level, yp.Experience)
	}
}

func TestBuildYearlyProgress_HoursRecomputeAfterReplacement(t *testing.T) {
	days := []domain.DailyStats{fullDay("2025-01-01", 120)}
	days = progress.UpsertDay(days, fullDay("2025-01-01", 60))

	yp := progress.BuildYearlyProgress(2025, days, activeSet("2025-01-01"), day("2025-01-01"))
	if yp.TotalHours != 1.0 {
		t.Errorf("expected 1.0 hour after replacement, got %v", yp.TotalHours)
	}
}

func TestBuildYearlyProgress_MonthlyBuckets(t *testing.T) {
	days := []domain.DailyStats{
		fullDay("2025-01-10", 60),
		fullDay("2025-01-11", 120),
		{Date: "2025-01-12", TotalTasks: 3, CompletionRate: 0}, // zero time: not active
		fullDay("2025-02-01", 90),
	}

	yp := progress.BuildYearlyProgress(2025, days, activeSet(), day("2025-03-01"))

	if len(yp.MonthlyStats) != 2 {
		t.Fatalf("expected 2 monthly buckets, got %d", len(yp.MonthlyStats))
	}

	jan := yp.MonthlyStats[0]
	if jan.Month != 1 || jan.DaysActive != 2 {
		t.Errorf("expected January with 2 active days, got month %d active %d", jan.Month, jan.DaysActive)
	}
	if jan.TotalHours != 3.0 {
		t.Errorf("expected January 3.0 hours, got %v", jan.TotalHours)
	}
	if jan.AverageDailyTime != 90 {
		t.Errorf("expected January average 90 min per active day, got %d", jan.AverageDailyTime)
	}
	if jan.BestStreak != 2 {
		t.Errorf("expected January best streak 2, got %d", jan.BestStreak)
	}

	feb := yp.MonthlyStats[1]
	if feb.Month != 2 || feb.TotalHours != 1.5 {
		t.Errorf("expected February 1.5 hours, got month %d hours %v", feb.Month, feb.TotalHours)
	}
}

func TestBuildYearlyProgress_WeeklyBuckets(t *testing.T) {
	// 2025-01-06 is a Monday; 01-13 starts the next ISO week.
	days := []domain.DailyStats{
		fullDay("2025-01-06", 60),
		fullDay("2025-01-07", 60),
		{Date: "2025-01-08", TotalTasks: 2, TasksCompleted: 1, TimeSpent: 30, CompletionRate: 50},
		fullDay("2025-01-13", 60),
	}

	yp := progress.BuildYearlyProgress(2025, days, activeSet(), day("2025-02-01"))

	if len(yp.WeeklyStats) != 2 {
		t.Fatalf("expected 2 weekly buckets, got %d", len(yp.WeeklyStats))
	}

	w1 := yp.WeeklyStats[0]
	if w1.WeekStart != "2025-01-06" || w1.WeekEnd != "2025-01-08" {
		t.Errorf("unexpected week bounds %s..%s", w1.WeekStart, w1.WeekEnd)
	}
	if w1.DaysCompleted != 2 {
		t.Errorf("expected 2 completed days, got %d", w1.DaysCompleted)
	}
	if w1.AverageCompletion != 83 { // round((100+100+50)/3)
		t.Errorf("expected average completion 83, got %d", w1.AverageCompletion)
	}
	if w1.Streak != 2 {
		t.Errorf("expected in-week streak 2, got %d", w1.Streak)
	}
}

func TestBuildYearlyProgress_EmptyHistory(t *testing.T) {
	yp := progress.BuildYearlyProgress(2025, nil, activeSet(), day("2025-06-01"))

	if yp.TotalHours != 0 || yp.TotalDays != 0 || yp.CurrentStreak != 0 || yp.LongestStreak != 0 {
		t.Errorf("expected zero totals for empty history, got %+v", yp)
	}
	if yp.Level != 1 {
		t.Errorf("level is always at least 1, got %d", yp.Level)
	}
}
