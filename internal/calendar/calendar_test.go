package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustLocation(t *testing.T, name string) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation(name)
	require.NoError(t, err)
	return loc
}

func TestDateOf_UsesLocation(t *testing.T) {
	instant := time.Date(2024, 3, 10, 2, 30, 0, 0, time.UTC)
	ny := mustLocation(t, "America/New_York")

	assert.Equal(t, "2024-03-10", DateOf(instant, time.UTC).Key())
	assert.Equal(t, "2024-03-09", DateOf(instant, ny).Key())
}

func TestDate_AddDays(t *testing.T) {
	d := Date{Year: 2024, Month: time.March, Day: 1}

	assert.Equal(t, Date{2024, time.February, 29}, d.AddDays(-1))
	assert.Equal(t, Date{2024, time.March, 31}, d.AddDays(30))
	assert.Equal(t, Date{2023, time.December, 31}, Date{2024, time.January, 1}.AddDays(-1))
}

func TestDaysBetween(t *testing.T) {
	a := Date{2024, time.January, 1}
	b := Date{2024, time.January, 10}

	assert.Equal(t, 9, DaysBetween(a, b))
	assert.Equal(t, -9, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}

func TestDaysSince(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, 9, DaysSince(from, time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 9, DaysSince(from, time.Date(2024, 1, 10, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, 0, DaysSince(from, from.Add(23*time.Hour)))
	assert.Equal(t, 0, DaysSince(from, from.Add(-48*time.Hour)))
}

func TestDayOfYear_JanuaryFirstIsOne(t *testing.T) {
	assert.Equal(t, 1, DayOfYear(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, 1, DayOfYear(time.Date(2025, 1, 1, 23, 59, 59, 0, time.UTC)))
	assert.Equal(t, 31, DayOfYear(time.Date(2025, 1, 31, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, 365, DayOfYear(time.Date(2025, 12, 31, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, 366, DayOfYear(time.Date(2024, 12, 31, 12, 0, 0, 0, time.UTC)))
}

func TestDayOfYear_StableAcrossDST(t *testing.T) {
	ny := mustLocation(t, "America/New_York")
	// Spring-forward day: every instant of the calendar day gets the same number.
	early := time.Date(2024, 3, 10, 0, 30, 0, 0, ny)
	late := time.Date(2024, 3, 10, 23, 30, 0, 0, ny)

	assert.Equal(t, DayOfYear(early), DayOfYear(late))
	assert.Equal(t, 70, DayOfYear(early))
}

func TestSameMonthDayOtherYear(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	assert.True(t, SameMonthDayOtherYear(time.Date(2023, 6, 15, 20, 0, 0, 0, time.UTC), now))
	assert.False(t, SameMonthDayOtherYear(time.Date(2025, 6, 15, 1, 0, 0, 0, time.UTC), now), "same year is excluded")
	assert.False(t, SameMonthDayOtherYear(time.Date(2023, 6, 16, 0, 0, 0, 0, time.UTC), now))
}

func TestNextOccurrence(t *testing.T) {
	anniversary := time.Date(2019, 8, 20, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			name: "later this year",
			now:  time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
			want: time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "today counts",
			now:  time.Date(2025, 8, 20, 18, 0, 0, 0, time.UTC),
			want: time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC),
		},
		{
			name: "already passed rolls to next year",
			now:  time.Date(2025, 8, 21, 0, 0, 0, 0, time.UTC),
			want: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextOccurrence(anniversary, tt.now)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestIsAnniversary(t *testing.T) {
	anniversary := time.Date(2019, 8, 20, 0, 0, 0, 0, time.UTC)

	assert.True(t, IsAnniversary(anniversary, time.Date(2030, 8, 20, 23, 0, 0, 0, time.UTC)))
	assert.False(t, IsAnniversary(anniversary, time.Date(2030, 8, 21, 0, 0, 0, 0, time.UTC)))
}

func TestIsAnniversary_LeapDay(t *testing.T) {
	leapDay := time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"leap year", time.Date(2024, 2, 29, 10, 0, 0, 0, time.UTC), true},
		{"common year falls on March 1", time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), true},
		{"common year February 28", time.Date(2025, 2, 28, 10, 0, 0, 0, time.UTC), false},
		{"leap year March 1", time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAnniversary(leapDay, tt.now))
		})
	}
}

func TestFixedClock(t *testing.T) {
	pinned := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)
	var clock Clock = FixedClock{T: pinned}

	assert.Equal(t, pinned, clock.Now())
}

func TestSystemClock_UsesLocation(t *testing.T) {
	tokyo := mustLocation(t, "Asia/Tokyo")
	clock := SystemClock{Location: tokyo}

	assert.Equal(t, tokyo, clock.Now().Location())
}
