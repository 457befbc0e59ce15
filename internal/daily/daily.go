// Package daily picks one item per calendar day from a fixed pool.
package daily

import (
	"errors"
	"fmt"
	"time"

	"lovejournal-backend/internal/calendar"
)

// ErrEmptyPool is returned when a selector is built without items. The pools
// are static configuration, so this is a startup error.
var ErrEmptyPool = errors.New("daily selector pool is empty")

// Pick is the item chosen for one calendar day
type Pick struct {
	Index int    `json:"index"`
	Item  string `json:"item"`
	ID    string `json:"id"`
}

// Selector maps calendar days to items of an immutable pool.
type Selector struct {
	pool []string
}

// NewSelector copies pool into a new selector.
func NewSelector(pool []string) (*Selector, error) {
	if len(pool) == 0 {
		return nil, ErrEmptyPool
	}
	items := make([]string, len(pool))
	copy(items, pool)
	return &Selector{pool: items}, nil
}

// Len returns the pool size
func (s *Selector) Len() int {
	return len(s.pool)
}

// PickForToday returns the item for now's calendar day. Every instant of the
// same day yields the same pick; the next day advances the index by one.
// The ID ("q-<year>-<dayOfYear>") lets answers submitted against today's
// item be matched for the rest of the day.
func (s *Selector) PickForToday(now time.Time) Pick {
	day := calendar.DayOfYear(now)
	index := day % len(s.pool)
	return Pick{
		Index: index,
		Item:  s.pool[index],
		ID:    fmt.Sprintf("q-%d-%d", now.Year(), day),
	}
}
