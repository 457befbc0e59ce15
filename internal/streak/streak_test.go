package streak

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 15, 14, 0, 0, 0, time.UTC)

func daysAgo(n int) time.Time {
	return now.AddDate(0, 0, -n)
}

func TestTimes(t *testing.T) {
	tests := []struct {
		name   string
		events []time.Time
		want   int
	}{
		{name: "no events", events: nil, want: 0},
		{name: "only today", events: []time.Time{daysAgo(0)}, want: 1},
		{name: "three in a row ending today", events: []time.Time{daysAgo(0), daysAgo(1), daysAgo(2)}, want: 3},
		{name: "gap before the fourth", events: []time.Time{daysAgo(0), daysAgo(1), daysAgo(2), daysAgo(4)}, want: 3},
		{name: "today missing counts from yesterday", events: []time.Time{daysAgo(1), daysAgo(2)}, want: 2},
		{name: "today and yesterday missing", events: []time.Time{daysAgo(2), daysAgo(3)}, want: 0},
		{name: "unordered input", events: []time.Time{daysAgo(2), daysAgo(0), daysAgo(1)}, want: 3},
		{name: "future events are ignored", events: []time.Time{daysAgo(-1)}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Times(tt.events, now))
		})
	}
}

func TestTimes_DuplicatesOnSameDayCountOnce(t *testing.T) {
	var events []time.Time
	for i := 0; i < 10; i++ {
		events = append(events, time.Date(2025, 3, 15, i, 0, 0, 0, time.UTC))
	}

	assert.Equal(t, 1, Times(events, now))
}

func TestTimes_TimeOfDayDiscarded(t *testing.T) {
	events := []time.Time{
		time.Date(2025, 3, 14, 23, 59, 0, 0, time.UTC),
		time.Date(2025, 3, 15, 0, 1, 0, 0, time.UTC),
	}

	assert.Equal(t, 2, Times(events, now))
}

func TestTimes_AddingTodayNeverDecreases(t *testing.T) {
	histories := [][]time.Time{
		nil,
		{daysAgo(1)},
		{daysAgo(1), daysAgo(2), daysAgo(3)},
		{daysAgo(2)},
		{daysAgo(0)},
	}

	for _, h := range histories {
		without := Times(h, now)
		with := Times(append(append([]time.Time{}, h...), daysAgo(0)), now)
		assert.GreaterOrEqual(t, with, without)
		assert.GreaterOrEqual(t, with, 1)
	}
}

func TestTimes_NeverGrowsWithElapsedTime(t *testing.T) {
	events := []time.Time{daysAgo(0), daysAgo(1), daysAgo(2)}

	prev := Times(events, now)
	for h := 1; h <= 96; h++ {
		cur := Times(events, now.Add(time.Duration(h)*time.Hour))
		assert.LessOrEqual(t, cur, prev, "hour %d", h)
		prev = cur
	}
	assert.Equal(t, 0, prev)
}

func TestTimes_UsesNowLocation(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	// 20:00 UTC on March 14 is already March 15 in Tokyo.
	events := []time.Time{time.Date(2025, 3, 14, 20, 0, 0, 0, time.UTC)}
	local := time.Date(2025, 3, 15, 12, 0, 0, 0, tokyo)

	assert.Equal(t, 1, Times(events, local))
	assert.Equal(t, 1, Times(events, local.AddDate(0, 0, 1)), "yesterday grace")
	assert.Equal(t, 0, Times(events, local.AddDate(0, 0, 2)))
}

type note struct {
	createdAt time.Time
}

func TestCurrent_DateExtractor(t *testing.T) {
	notes := []note{{daysAgo(0)}, {daysAgo(1)}}

	got := Current(notes, func(n note) time.Time { return n.createdAt }, now)

	assert.Equal(t, 2, got)
}
