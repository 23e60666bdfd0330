package progress

import (
	"math"
	"sort"
	"time"

	"github.com/sprachlog/sprachlog/internal/domain"
)

// UpsertDay inserts a day's stats into a year's day-history, replacing any
// existing entry for that exact date. The result stays sorted ascending.
func UpsertDay(days []domain.DailyStats, stats domain.DailyStats) []domain.DailyStats {
	for i, d := range days {
		if d.Date == stats.Date {
			days[i] = stats
			return days
		}
	}
	days = append(days, stats)
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })
	return days
}

// BuildYearlyProgress recomputes every derived total for one year from its
// day-history. The activity test decides which days anchor the current
// streak; the longest streak is a pure historical scan over the same days.
func BuildYearlyProgress(year int, days []domain.DailyStats, active ActivityFunc, today time.Time) domain.YearlyProgress {
	sorted := make([]domain.DailyStats, len(days))
	copy(sorted, days)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Date < sorted[j].Date })

	yp := domain.YearlyProgress{
		Year:       year,
		DailyStats: sorted,
	}

	totalMinutes := 0
	var activeDays []time.Time
	for _, d := range sorted {
		totalMinutes += d.TimeSpent
		if d.CompletionRate == 100 {
			yp.TotalDays++
		}
		if day, err := domain.ParseDay(d.Date); err == nil && active(day) {
			activeDays = append(activeDays, day)
		}
	}

	yp.TotalHours = domain.RoundHours(totalMinutes)
	yp.CurrentStreak = CurrentStreak(active, today)
	yp.LongestStreak = BestStreak(activeDays)
	yp.Level = LevelForHours(yp.TotalHours)
	yp.Experience = ExperienceForHours(yp.TotalHours)
	yp.MonthlyStats = monthlyRollup(sorted, year)
	yp.WeeklyStats = weeklyRollup(sorted)
	return yp
}

// monthlyRollup groups a year's day-history by calendar month. Each bucket
// is independent — no cross-month state.
func monthlyRollup(days []domain.DailyStats, year int) []domain.MonthlyStats {
	buckets := make(map[int][]domain.DailyStats)
	for _, d := range days {
		day, err := domain.ParseDay(d.Date)
		if err != nil || day.Year() != year {
			continue
		}
		m := int(day.Month())
		buckets[m] = append(buckets[m], d)
	}

	var out []domain.MonthlyStats
	for m := 1; m <= 12; m++ {
		monthDays, ok := buckets[m]
		if !ok {
			continue
		}

		ms := domain.MonthlyStats{Month: m, Year: year}
		totalMinutes := 0
		var completedDays []time.Time
		for _, d := range monthDays {
			totalMinutes += d.TimeSpent
			ms.TasksCompleted += d.TasksCompleted
			if d.TimeSpent > 0 {
				ms.DaysActive++
			}
			if d.CompletionRate == 100 {
				if day, err := domain.ParseDay(d.Date); err == nil {
					completedDays = append(completedDays, day)
				}
			}
		}
		ms.TotalHours = domain.RoundHours(totalMinutes)
		if ms.DaysActive > 0 {
			ms.AverageDailyTime = int(math.Round(float64(totalMinutes) / float64(ms.DaysActive)))
		}
		ms.BestStreak = BestStreak(completedDays)
		out = append(out, ms)
	}
	return out
}

// weeklyRollup groups a year's day-history by ISO week. The per-week streak
// is the longest contiguous run of fully-completed days inside that week.
func weeklyRollup(days []domain.DailyStats) []domain.WeeklyStats {
	type weekKey struct {
		year int
		week int
	}

	buckets := make(map[weekKey][]domain.DailyStats)
	var order []weekKey
	for _, d := range days {
		day, err := domain.ParseDay(d.Date)
		if err != nil {
			continue
		}
		y, w := day.ISOWeek()
		k := weekKey{y, w}
		if _, seen := buckets[k]; !seen {
			order = append(order, k)
		}
		buckets[k] = append(buckets[k], d)
	}

	var out []domain.WeeklyStats
	for _, k := range order {
		weekDays := buckets[k]

		ws := domain.WeeklyStats{
			WeekStart: weekDays[0].Date,
			WeekEnd:   weekDays[len(weekDays)-1].Date,
		}
		rateSum := 0
		var completedDays []time.Time
		for _, d := range weekDays {
			ws.TotalTimeSpent += d.TimeSpent
			rateSum += d.CompletionRate
			if d.CompletionRate == 100 {
				ws.DaysCompleted++
				if day, err := domain.ParseDay(d.Date); err == nil {
					completedDays = append(completedDays, day)
				}
			}
		}
		ws.AverageCompletion = int(math.Round(float64(rateSum) / float64(len(weekDays))))
		ws.Streak = BestStreak(completedDays)
		out = append(out, ws)
	}
	return out
}
