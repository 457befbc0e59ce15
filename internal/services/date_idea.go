package services

import (
	"context"
	"fmt"
	"math/rand/v2"

	"lovejournal-backend/internal/calendar"
	"lovejournal-backend/internal/models"
	"lovejournal-backend/internal/validate"

	"github.com/google/uuid"
)

// DateIdeaService handles the date-night spinner pool
type DateIdeaService struct {
	ideas DateIdeaStore
	clock calendar.Clock
	intn  func(n int) int
}

// NewDateIdeaService creates a new date idea service. intn picks the spin
// result in [0, n); nil uses math/rand.
func NewDateIdeaService(ideas DateIdeaStore, clock calendar.Clock, intn func(n int) int) *DateIdeaService {
	if intn == nil {
		intn = rand.IntN
	}
	return &DateIdeaService{ideas: ideas, clock: clock, intn: intn}
}

// CreateDateIdeaRequest represents a new date idea
type CreateDateIdeaRequest struct {
	Title    string                  `json:"title"`
	Category models.DateIdeaCategory `json:"category"`
}

// UpdateDateIdeaRequest marks an idea used or puts it back in the pool
type UpdateDateIdeaRequest struct {
	IsUsed bool `json:"is_used"`
}

// List returns every idea of the couple, newest first
func (s *DateIdeaService) List(ctx context.Context, actor *Actor) ([]*models.DateIdea, error) {
	return s.ideas.ListByCouple(ctx, actor.CoupleID, false)
}

// Create adds an idea to the pool
func (s *DateIdeaService) Create(ctx context.Context, actor *Actor, req CreateDateIdeaRequest) (*models.DateIdea, error) {
	title, err := validate.Required("title", req.Title, 0)
	if err != nil {
		return nil, err
	}
	category, err := validate.OneOf("category", req.Category, models.DateIdeaCategory.Valid, models.DefaultDateIdeaCategory)
	if err != nil {
		return nil, err
	}

	idea := &models.DateIdea{
		ID:        uuid.New().String(),
		CoupleID:  actor.CoupleID,
		Title:     title,
		Category:  category,
		AddedBy:   actor.Name,
		CreatedAt: s.clock.Now(),
	}
	if err := s.ideas.Create(ctx, idea); err != nil {
		return nil, fmt.Errorf("failed to create date idea: %w", err)
	}
	return idea, nil
}

// Update sets the used flag of an idea
func (s *DateIdeaService) Update(ctx context.Context, actor *Actor, id string, req UpdateDateIdeaRequest) (*models.DateIdea, error) {
	if err := checkRecordID(id); err != nil {
		return nil, err
	}
	return s.ideas.SetUsed(ctx, actor.CoupleID, id, req.IsUsed)
}

// Spin draws a random idea that has not been used yet
func (s *DateIdeaService) Spin(ctx context.Context, actor *Actor) (*models.DateIdea, error) {
	ideas, err := s.ideas.ListByCouple(ctx, actor.CoupleID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to get date ideas: %w", err)
	}
	if len(ideas) == 0 {
		return nil, ErrNoIdeas
	}
	return ideas[s.intn(len(ideas))], nil
}
