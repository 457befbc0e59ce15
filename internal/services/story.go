package services

import (
	"context"

	"lovejournal-backend/internal/calendar"
	"lovejournal-backend/internal/stats"
)

// StoryService assembles the "our story" page
type StoryService struct {
	records RecordStores
	clock   calendar.Clock
}

// NewStoryService creates a new story service
func NewStoryService(records RecordStores, clock calendar.Clock) *StoryService {
	return &StoryService{records: records, clock: clock}
}

// Story is the full relationship summary with the anniversary countdown
type Story struct {
	stats.RelationshipStats
	Countdown *stats.Countdown `json:"countdown"`
}

// Get aggregates every record of the caller's couple
func (s *StoryService) Get(ctx context.Context, actor *Actor) (*Story, error) {
	in, user, err := s.records.load(ctx, actor)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	return &Story{
		RelationshipStats: stats.Aggregate(in, now),
		Countdown:         stats.CountdownTo(user.AnniversaryDate, user.MilestoneName, now),
	}, nil
}
