// Package streak computes consecutive-day streaks over timestamped events.
package streak

import (
	"time"

	"lovejournal-backend/internal/calendar"
)

// Current returns the number of consecutive calendar days, ending today or
// yesterday, on which at least one event occurred. A day without an event yet
// does not break the streak until it is over. Calendar days are read in now's
// location; several events on the same day count once.
func Current[T any](events []T, dateOf func(T) time.Time, now time.Time) int {
	if len(events) == 0 {
		return 0
	}

	loc := now.Location()
	days := make(map[calendar.Date]struct{}, len(events))
	for _, e := range events {
		days[calendar.DateOf(dateOf(e), loc)] = struct{}{}
	}

	cursor := calendar.DateOf(now, loc)
	if _, ok := days[cursor]; !ok {
		cursor = cursor.AddDays(-1)
	}

	count := 0
	for {
		if _, ok := days[cursor]; !ok {
			return count
		}
		count++
		cursor = cursor.AddDays(-1)
	}
}

// Times computes the streak of plain timestamps.
func Times(times []time.Time, now time.Time) int {
	return Current(times, func(t time.Time) time.Time { return t }, now)
}
