package services

import (
	"context"
	"fmt"

	"lovejournal-backend/internal/calendar"
	"lovejournal-backend/internal/models"
	"lovejournal-backend/internal/reveal"
	"lovejournal-backend/internal/validate"

	"github.com/google/uuid"
)

const (
	maxReflectionAnswerLength = 3000
	defaultReflectionMood     = "🤝"
)

// ReflectionService handles the healing flow after a disagreement
type ReflectionService struct {
	reflections ReflectionStore
	clock       calendar.Clock
}

// NewReflectionService creates a new reflection service
func NewReflectionService(reflections ReflectionStore, clock calendar.Clock) *ReflectionService {
	return &ReflectionService{reflections: reflections, clock: clock}
}

// CreateReflectionRequest represents one partner's reflection
type CreateReflectionRequest struct {
	WhatHurt      string `json:"what_hurt"`
	WhatLearned   string `json:"what_learned"`
	DoDifferently string `json:"do_differently"`
	Mood          string `json:"mood"`
}

// List groups the couple's reflections by calendar day, hiding the
// partner's answers until they unlock
func (s *ReflectionService) List(ctx context.Context, actor *Actor) ([]reveal.ReflectionGroup, error) {
	reflections, err := s.reflections.ListByCouple(ctx, actor.CoupleID)
	if err != nil {
		return nil, err
	}

	groups := reveal.GroupReflectionsByDay(reflections, actor.UserID, s.clock.Now())
	if groups == nil {
		groups = []reveal.ReflectionGroup{}
	}
	return groups, nil
}

// Create stores a reflection that unlocks for the partner 24 hours later
func (s *ReflectionService) Create(ctx context.Context, actor *Actor, req CreateReflectionRequest) (*reveal.ReflectionView, error) {
	whatHurt, err := validate.Required("what_hurt", req.WhatHurt, maxReflectionAnswerLength)
	if err != nil {
		return nil, err
	}
	whatLearned, err := validate.Required("what_learned", req.WhatLearned, maxReflectionAnswerLength)
	if err != nil {
		return nil, err
	}
	doDifferently, err := validate.Required("do_differently", req.DoDifferently, maxReflectionAnswerLength)
	if err != nil {
		return nil, err
	}
	mood := validate.Field("mood", req.Mood)
	if mood == "" {
		mood = defaultReflectionMood
	}

	now := s.clock.Now()
	reflection := &models.Reflection{
		ID:            uuid.New().String(),
		CoupleID:      actor.CoupleID,
		UserID:        actor.UserID,
		AuthorName:    actor.Name,
		WhatHurt:      whatHurt,
		WhatLearned:   whatLearned,
		DoDifferently: doDifferently,
		Mood:          mood,
		VisibleAfter:  reveal.ReflectionVisibleAfter(now),
		CreatedAt:     now,
	}
	if err := s.reflections.Create(ctx, reflection); err != nil {
		return nil, fmt.Errorf("failed to create reflection: %w", err)
	}

	view := reveal.RedactReflection(reflection, actor.UserID, now)
	return &view, nil
}
