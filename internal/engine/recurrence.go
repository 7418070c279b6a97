package engine

import (
	"time"

	"github.com/chinmayanaik123/lifeOS/internal/storage"
)

// DefaultHorizonDays bounds the linear scans in NextOccurrence and
// PrevOccurrence. A year covers every recurrence pattern the app can express.
const DefaultHorizonDays = 365

// OccursOn reports whether the task is scheduled on the given calendar date.
// Dates before the rule's start or after its end never occur. A weekly rule
// without weekdays and a monthly rule without a day-of-month produce no
// occurrences at all; that is schedule policy, not an error. Unknown kinds
// fail closed.
func OccursOn(t storage.Task, date time.Time) bool {
	day := DateOf(date)
	if day.Before(DateOf(t.StartDate)) {
		return false
	}
	if t.EndDate != nil && day.After(DateOf(*t.EndDate)) {
		return false
	}

	switch RecurrenceKind(t.RecurrenceKind) {
	case RecurrenceOnce:
		return sameDay(day, t.StartDate)
	case RecurrenceDaily:
		return true
	case RecurrenceWeekly:
		return weekdayMatch(t.Weekdays, day)
	case RecurrenceMonthly:
		return dayOfMonthMatch(t.DayOfMonth, day)
	case RecurrenceCustom:
		// Each constraint applies only when its field is set; with neither
		// set the rule degenerates to daily. Setting both yields composite
		// patterns such as "every Monday that is the 1st".
		if len(t.Weekdays) > 0 && !weekdayMatch(t.Weekdays, day) {
			return false
		}
		if t.DayOfMonth != nil && !dayOfMonthMatch(t.DayOfMonth, day) {
			return false
		}
		return true
	default:
		return false
	}
}

func weekdayMatch(weekdays []int, day time.Time) bool {
	wd := int(day.Weekday())
	for _, w := range weekdays {
		if w == wd {
			return true
		}
	}
	return false
}

func dayOfMonthMatch(dom *int, day time.Time) bool {
	return dom != nil && *dom == day.Day()
}

// OccurrencesInRange returns every occurrence date in [start, end], ascending.
func OccurrencesInRange(t storage.Task, start, end time.Time) []time.Time {
	var out []time.Time
	for day := DateOf(start); !day.After(DateOf(end)); day = day.AddDate(0, 0, 1) {
		if OccursOn(t, day) {
			out = append(out, day)
		}
	}
	return out
}

// NextOccurrence returns the first occurrence strictly after the given date,
// scanning at most horizonDays ahead. A false result means nothing occurs
// within the horizon.
func NextOccurrence(t storage.Task, after time.Time, horizonDays int) (time.Time, bool) {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	day := DateOf(after)
	for i := 0; i < horizonDays; i++ {
		day = day.AddDate(0, 0, 1)
		if OccursOn(t, day) {
			return day, true
		}
	}
	return time.Time{}, false
}

// PrevOccurrence returns the last occurrence strictly before the given date,
// scanning at most horizonDays back.
func PrevOccurrence(t storage.Task, before time.Time, horizonDays int) (time.Time, bool) {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	day := DateOf(before)
	for i := 0; i < horizonDays; i++ {
		day = day.AddDate(0, 0, -1)
		if OccursOn(t, day) {
			return day, true
		}
	}
	return time.Time{}, false
}
