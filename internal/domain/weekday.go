package domain

import (
	"fmt"
	"strings"
	"time"
)

// Weekday is an explicit enumerated weekday, Monday-first. The plan
// template maps each weekday to a task list through Plan.TasksFor.
type Weekday int

const (
	Monday Weekday = iota
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [7]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

func (w Weekday) String() string {
	if w < Monday || w > Sunday {
		return "unknown"
	}
	return weekdayNames[w]
}

// Abbrev returns the two-letter abbreviation used in tables.
func (w Weekday) Abbrev() string {
	abbrevs := [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}
	if w < Monday || w > Sunday {
		return "??"
	}
	return abbrevs[w]
}

// WeekdayOf converts a time into the tracker's Monday-first weekday.
func WeekdayOf(t time.Time) Weekday {
	// time.Weekday is Sunday-first
	return Weekday((int(t.Weekday()) + 6) % 7)
}

// ParseWeekday accepts full names and common abbreviations ("mon", "tue").
func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range weekdayNames {
		if s == name || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
}

// AllWeekdays returns every weekday Monday through Sunday.
func AllWeekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}
