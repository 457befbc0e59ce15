package services

import (
	"context"
	"fmt"

	"lovejournal-backend/internal/calendar"
	"lovejournal-backend/internal/models"
	"lovejournal-backend/internal/validate"

	"github.com/google/uuid"
)

// JournalService handles the shared diary
type JournalService struct {
	journals JournalStore
	clock    calendar.Clock
}

// NewJournalService creates a new journal service
func NewJournalService(journals JournalStore, clock calendar.Clock) *JournalService {
	return &JournalService{journals: journals, clock: clock}
}

// CreateJournalRequest represents a new journal entry
type CreateJournalRequest struct {
	Content string             `json:"content"`
	Date    string             `json:"date"`
	Mood    models.JournalMood `json:"mood"`
}

// List returns every entry of the couple, newest date first
func (s *JournalService) List(ctx context.Context, actor *Actor) ([]*models.Journal, error) {
	return s.journals.ListByCouple(ctx, actor.CoupleID)
}

// Create stores an entry. The date defaults to now.
func (s *JournalService) Create(ctx context.Context, actor *Actor, req CreateJournalRequest) (*models.Journal, error) {
	content, err := validate.Required("content", req.Content, 0)
	if err != nil {
		return nil, err
	}
	mood, err := validate.OneOf("mood", req.Mood, models.JournalMood.Valid, models.DefaultJournalMood)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	date, err := validate.Date("date", req.Date, now.Location())
	if err != nil {
		return nil, err
	}
	if date == nil {
		date = &now
	}

	journal := &models.Journal{
		ID:         uuid.New().String(),
		CoupleID:   actor.CoupleID,
		UserID:     actor.UserID,
		AuthorName: actor.Name,
		Content:    content,
		Date:       *date,
		Mood:       mood,
		CreatedAt:  now,
	}
	if err := s.journals.Create(ctx, journal); err != nil {
		return nil, fmt.Errorf("failed to create journal: %w", err)
	}
	return journal, nil
}
