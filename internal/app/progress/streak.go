package progress

import "time"

// maxStreakScan bounds the backward scan so a pathological history can
// never send the calculator into an unbounded loop.
const maxStreakScan = 365

// ActivityFunc reports whether a calendar day counts as active. The
// tracker's test is: any completed task, a non-empty day note, or a
// vocabulary entry added that day.
type ActivityFunc func(day time.Time) bool

// CurrentStreak counts consecutive active calendar days ending at today.
// If today is active it is included; otherwise the scan starts at
// yesterday with a streak of zero. The first inactive day stops the scan:
// a gap of even one calendar day breaks the streak, regardless of what
// lies beyond it. Recomputing over identical history yields the same
// value — there is no carried state.
func CurrentStreak(active ActivityFunc, today time.Time) int {
	day := truncateDay(today)

	streak := 0
	if active(day) {
		streak = 1
	}

	for i := 0; i < maxStreakScan; i++ {
		day = day.AddDate(0, 0, -1)
		if !active(day) {
			break
		}
		streak++
	}
	return streak
}

// BestStreak returns the longest run of consecutive calendar days in the
// given set of active days. Order and duplicates in the input do not
// matter. The final open-ended run counts. Uses the same calendar-day
// contiguity definition as CurrentStreak.
func BestStreak(days []time.Time) int {
	if len(days) == 0 {
		return 0
	}

	sorted := sortedUniqueDays(days)

	best, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if daysBetween(sorted[i-1], sorted[i]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}

// truncateDay strips the time-of-day component in the day's own location.
func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysBetween returns the number of calendar days from a to b.
func daysBetween(a, b time.Time) int {
	a, b = truncateDay(a), truncateDay(b)
	return int(b.Sub(a).Hours() / 24)
}

// sortedUniqueDays normalizes input days to midnight, deduplicates, and
// sorts ascending. Insertion sort — histories are at most a year long.
func sortedUniqueDays(days []time.Time) []time.Time {
	seen := make(map[time.Time]bool, len(days))
	out := make([]time.Time, 0, len(days))
	for _, d := range days {
		d = truncateDay(d)
		if seen[d] {
			continue
		}
		seen[d] = true
		i := len(out)
		for i > 0 && out[i-1].After(d) {
			i--
		}
		out = append(out, time.Time{})
		copy(out[i+1:], out[i:])
		out[i] = d
	}
	return out
}
