package services

import (
	"context"
	"fmt"

	"lovejournal-backend/internal/calendar"
	"lovejournal-backend/internal/models"
	"lovejournal-backend/internal/validate"

	"github.com/google/uuid"
)

const maxLoveNoteLength = 500

// LoveNoteService handles gratitude notes
type LoveNoteService struct {
	notes LoveNoteStore
	clock calendar.Clock
}

// NewLoveNoteService creates a new love note service
func NewLoveNoteService(notes LoveNoteStore, clock calendar.Clock) *LoveNoteService {
	return &LoveNoteService{notes: notes, clock: clock}
}

// CreateLoveNoteRequest represents a new love note
type CreateLoveNoteRequest struct {
	Content string `json:"content"`
}

// List returns the couple's notes, newest first
func (s *LoveNoteService) List(ctx context.Context, actor *Actor) ([]*models.LoveNote, error) {
	return s.notes.ListByCouple(ctx, actor.CoupleID)
}

// Create stores a note
func (s *LoveNoteService) Create(ctx context.Context, actor *Actor, req CreateLoveNoteRequest) (*models.LoveNote, error) {
	content, err := validate.Required("content", req.Content, maxLoveNoteLength)
	if err != nil {
		return nil, err
	}

	note := &models.LoveNote{
		ID:         uuid.New().String(),
		CoupleID:   actor.CoupleID,
		UserID:     actor.UserID,
		AuthorName: actor.Name,
		Content:    content,
		CreatedAt:  s.clock.Now(),
	}
	if err := s.notes.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create love note: %w", err)
	}
	return note, nil
}
