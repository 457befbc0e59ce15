package services

import (
	"context"

	"lovejournal-backend/internal/calendar"
	"lovejournal-backend/internal/daily"
	"lovejournal-backend/internal/stats"
)

// InsightsService builds the dashboard insights
type InsightsService struct {
	records RecordStores
	prompts *daily.Selector
	clock   calendar.Clock
}

// NewInsightsService creates a new insights service
func NewInsightsService(records RecordStores, prompts *daily.Selector, clock calendar.Clock) *InsightsService {
	return &InsightsService{records: records, prompts: prompts, clock: clock}
}

// InsightTotals are the headline counters
type InsightTotals struct {
	TotalMemories int `json:"total_memories"`
	TotalJournals int `json:"total_journals"`
}

// Insights is the dashboard payload
type Insights struct {
	OnThisDay   stats.OnThisDay `json:"on_this_day"`
	MoodTrend   []stats.MoodDay `json:"mood_trend"`
	DailyPrompt string          `json:"daily_prompt"`
	Stats       InsightTotals   `json:"stats"`
}

// Get computes the insights for the caller's couple
func (s *InsightsService) Get(ctx context.Context, actor *Actor) (*Insights, error) {
	in, _, err := s.records.load(ctx, actor)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	return &Insights{
		OnThisDay:   stats.FindOnThisDay(in.Memories, in.Journals, now),
		MoodTrend:   stats.MoodTrend(in.Journals, now),
		DailyPrompt: s.prompts.PickForToday(now).Item,
		Stats: InsightTotals{
			TotalMemories: len(in.Memories),
			TotalJournals: len(in.Journals),
		},
	}, nil
}
