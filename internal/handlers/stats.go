package handlers

import (
	"context"
	"net/http"

	"lovejournal-backend/internal/middleware"
	"lovejournal-backend/internal/services"
	"lovejournal-backend/internal/stats"
)

// InsightsSource builds the dashboard insights
type InsightsSource interface {
	Get(ctx context.Context, actor *services.Actor) (*services.Insights, error)
}

// StreakSource computes the love-streak counters
type StreakSource interface {
	Get(ctx context.Context, actor *services.Actor) (*stats.Streaks, error)
}

// StorySource assembles the "our story" page
type StorySource interface {
	Get(ctx context.Context, actor *services.Actor) (*services.Story, error)
}

// StatsHandler serves the read-only aggregate views
type StatsHandler struct {
	insights InsightsSource
	streaks  StreakSource
	story    StorySource
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(insights InsightsSource, streaks StreakSource, story StorySource) *StatsHandler {
	return &StatsHandler{insights: insights, streaks: streaks, story: story}
}

// Insights handles GET /api/v1/insights
func (h *StatsHandler) Insights(w http.ResponseWriter, r *http.Request) {
	insights, err := h.insights.Get(r.Context(), middleware.GetActor(r.Context()))
	if err != nil {
		handleError(w, r, err, "Failed to fetch insights")
		return
	}
	respondJSON(w, http.StatusOK, insights)
}

// Streaks handles GET /api/v1/streaks
func (h *StatsHandler) Streaks(w http.ResponseWriter, r *http.Request) {
	st, err := h.streaks.Get(r.Context(), middleware.GetActor(r.Context()))
	if err != nil {
		handleError(w, r, err, "Failed to fetch streaks")
		return
	}
	respondJSON(w, http.StatusOK, st)
}

// Story handles GET /api/v1/story
func (h *StatsHandler) Story(w http.ResponseWriter, r *http.Request) {
	story, err := h.story.Get(r.Context(), middleware.GetActor(r.Context()))
	if err != nil {
		handleError(w, r, err, "Failed to fetch story")
		return
	}
	respondJSON(w, http.StatusOK, story)
}
