package services

import (
	"context"

	"lovejournal-backend/internal/calendar"
	"lovejournal-backend/internal/stats"
)

// StreakService reports the four love-streak counters
type StreakService struct {
	records RecordStores
	clock   calendar.Clock
}

// NewStreakService creates a new streak service
func NewStreakService(records RecordStores, clock calendar.Clock) *StreakService {
	return &StreakService{records: records, clock: clock}
}

// Get computes the counters at the current instant
func (s *StreakService) Get(ctx context.Context, actor *Actor) (*stats.Streaks, error) {
	in, _, err := s.records.load(ctx, actor)
	if err != nil {
		return nil, err
	}
	st := stats.ComputeStreaks(in, s.clock.Now())
	return &st, nil
}
