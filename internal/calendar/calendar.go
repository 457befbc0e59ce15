package calendar

import (
	"fmt"
	"time"
)

// Day is one 24-hour period. Elapsed-day counts use it; calendar arithmetic
// goes through Date so DST transitions never shift a day boundary.
const Day = 24 * time.Hour

// Clock supplies the current instant to services. The pure functions in this
// module tree never call it themselves: they take now as a parameter.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock in a fixed location (server-local time).
type SystemClock struct {
	Location *time.Location
}

// Now returns the current time in the clock's location
func (c SystemClock) Now() time.Time {
	loc := c.Location
	if loc == nil {
		loc = time.Local
	}
	return time.Now().In(loc)
}

// FixedClock always returns the same instant.
type FixedClock struct {
	T time.Time
}

// Now returns the pinned instant
func (c FixedClock) Now() time.Time {
	return c.T
}

// Date is a calendar day with the time of day discarded.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// DateOf returns the calendar day of t as observed in loc.
func DateOf(t time.Time, loc *time.Location) Date {
	if loc == nil {
		loc = time.Local
	}
	y, m, d := t.In(loc).Date()
	return Date{Year: y, Month: m, Day: d}
}

// Key formats the date as YYYY-MM-DD.
func (d Date) Key() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// AddDays moves the date by n calendar days (n may be negative).
func (d Date) AddDays(n int) Date {
	y, m, day := d.utc().AddDate(0, 0, n).Date()
	return Date{Year: y, Month: m, Day: day}
}

// Midnight returns the first instant of the date in loc.
func (d Date) Midnight(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Before reports whether d is an earlier calendar day than other.
func (d Date) Before(other Date) bool {
	return d.utc().Before(other.utc())
}

func (d Date) utc() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// DaysBetween counts calendar days from a to b (negative when b is before a).
func DaysBetween(a, b Date) int {
	return int(b.utc().Sub(a.utc()) / Day)
}

// Key is shorthand for DateOf(t, loc).Key().
func Key(t time.Time, loc *time.Location) string {
	return DateOf(t, loc).Key()
}

// StartOfDay returns midnight of t's calendar day in t's location.
func StartOfDay(t time.Time) time.Time {
	return DateOf(t, t.Location()).Midnight(t.Location())
}

// DaysSince returns the number of whole 24-hour periods elapsed between from
// and now. A from in the future yields 0.
func DaysSince(from, now time.Time) int {
	if now.Before(from) {
		return 0
	}
	return int(now.Sub(from) / Day)
}

// DayOfYear numbers the days of now's year counting from December 31 of the
// previous year as day 0, so January 1 is day 1. Question identifiers already
// stored depend on this numbering.
func DayOfYear(now time.Time) int {
	return now.YearDay()
}

// SameMonthDayOtherYear reports whether t falls on now's month and day in a
// different year. Both are read in now's location.
func SameMonthDayOtherYear(t, now time.Time) bool {
	d := DateOf(t, now.Location())
	today := DateOf(now, now.Location())
	return d.Month == today.Month && d.Day == today.Day && d.Year != today.Year
}

// NextOccurrence returns midnight of the next date (today included) whose
// month and day match anniversary. The anniversary's own year is ignored and
// its month/day are read as stored, without a timezone conversion.
func NextOccurrence(anniversary, now time.Time) time.Time {
	loc := now.Location()
	_, m, d := anniversary.Date()
	today := DateOf(now, loc)

	next := time.Date(today.Year, m, d, 0, 0, 0, 0, loc)
	if DateOf(next, loc).Before(today) {
		next = time.Date(today.Year+1, m, d, 0, 0, 0, 0, loc)
	}
	return next
}

// IsAnniversary reports whether now falls on the anniversary's next
// occurrence. A February 29 anniversary falls on March 1 in common years.
func IsAnniversary(anniversary, now time.Time) bool {
	loc := now.Location()
	return DateOf(NextOccurrence(anniversary, now), loc) == DateOf(now, loc)
}
