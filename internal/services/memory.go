package services

import (
	"context"
	"fmt"

	"lovejournal-backend/internal/calendar"
	"lovejournal-backend/internal/models"
	"lovejournal-backend/internal/validate"

	"github.com/google/uuid"
)

const maxURLLength = 2048

// MemoryService handles the couple's timeline of memories
type MemoryService struct {
	memories MemoryStore
	clock    calendar.Clock
}

// NewMemoryService creates a new memory service
func NewMemoryService(memories MemoryStore, clock calendar.Clock) *MemoryService {
	return &MemoryService{memories: memories, clock: clock}
}

// CreateMemoryRequest represents a new memory
type CreateMemoryRequest struct {
	Title       string                `json:"title"`
	Description string                `json:"description"`
	Date        string                `json:"date"`
	ImageURL    string                `json:"image_url"`
	AudioURL    string                `json:"audio_url"`
	Category    models.MemoryCategory `json:"category"`
	Mood        models.MemoryMood     `json:"mood"`
}

// List returns the couple's memories, newest date first
func (s *MemoryService) List(ctx context.Context, actor *Actor) ([]*models.Memory, error) {
	return s.memories.ListByCouple(ctx, actor.CoupleID)
}

// Create stores a memory. The date defaults to now.
func (s *MemoryService) Create(ctx context.Context, actor *Actor, req CreateMemoryRequest) (*models.Memory, error) {
	title, err := validate.Required("title", req.Title, 0)
	if err != nil {
		return nil, err
	}
	category, err := validate.OneOf("category", req.Category, models.MemoryCategory.Valid, models.DefaultMemoryCategory)
	if err != nil {
		return nil, err
	}
	mood, err := validate.OneOf("mood", req.Mood, models.MemoryMood.Valid, models.DefaultMemoryMood)
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

	memory := &models.Memory{
		ID:          uuid.New().String(),
		CoupleID:    actor.CoupleID,
		UserID:      actor.UserID,
		Title:       title,
		Description: validate.Field("description", req.Description),
		Date:        *date,
		ImageURL:    validate.Sanitize(req.ImageURL, maxURLLength),
		AudioURL:    validate.Sanitize(req.AudioURL, maxURLLength),
		Category:    category,
		Mood:        mood,
		CreatedAt:   now,
	}
	if err := s.memories.Create(ctx, memory); err != nil {
		return nil, fmt.Errorf("failed to create memory: %w", err)
	}
	return memory, nil
}

// Delete removes a memory of the caller's couple
func (s *MemoryService) Delete(ctx context.Context, actor *Actor, id string) error {
	if err := checkRecordID(id); err != nil {
		return err
	}
	if err := s.memories.Delete(ctx, actor.CoupleID, id); err != nil {
		return fmt.Errorf("failed to delete memory: %w", err)
	}
	return nil
}
