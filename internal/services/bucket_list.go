package services

import (
	"context"
	"errors"
	"fmt"

	"lovejournal-backend/internal/calendar"
	"lovejournal-backend/internal/models"
	"lovejournal-backend/internal/repository"
	"lovejournal-backend/internal/validate"

	"github.com/google/uuid"
)

// BucketListService handles the couple's shared dreams
type BucketListService struct {
	items    BucketStore
	memories MemoryStore
	clock    calendar.Clock
}

// NewBucketListService creates a new bucket list service
func NewBucketListService(items BucketStore, memories MemoryStore, clock calendar.Clock) *BucketListService {
	return &BucketListService{items: items, memories: memories, clock: clock}
}

// CreateBucketItemRequest represents a new bucket list item
type CreateBucketItemRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// UpdateBucketItemRequest toggles completion, optionally linking the memory
// that fulfilled the dream
type UpdateBucketItemRequest struct {
	IsCompleted bool    `json:"is_completed"`
	MemoryID    *string `json:"memory_id"`
}

// List returns open items first, then newest first
func (s *BucketListService) List(ctx context.Context, actor *Actor) ([]*models.BucketItem, error) {
	return s.items.ListByCouple(ctx, actor.CoupleID)
}

// Create adds an item
func (s *BucketListService) Create(ctx context.Context, actor *Actor, req CreateBucketItemRequest) (*models.BucketItem, error) {
	title, err := validate.Required("title", req.Title, 0)
	if err != nil {
		return nil, err
	}

	item := &models.BucketItem{
		ID:          uuid.New().String(),
		CoupleID:    actor.CoupleID,
		Title:       title,
		Description: validate.Field("description", req.Description),
		CreatedAt:   s.clock.Now(),
	}
	if err := s.items.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to create bucket item: %w", err)
	}
	return item, nil
}

// Update sets or clears completion. Completing stamps the completion date;
// reopening clears both the date and the memory link.
func (s *BucketListService) Update(ctx context.Context, actor *Actor, id string, req UpdateBucketItemRequest) (*models.BucketItem, error) {
	if err := checkRecordID(id); err != nil {
		return nil, err
	}
	item, err := s.items.GetByID(ctx, actor.CoupleID, id)
	if err != nil {
		return nil, err
	}

	if !req.IsCompleted {
		item.IsCompleted = false
		item.CompletedDate = nil
		item.MemoryID = nil
	} else {
		if !item.IsCompleted {
			now := s.clock.Now()
			item.CompletedDate = &now
		}
		item.IsCompleted = true
		if req.MemoryID != nil {
			memoryID, err := s.linkedMemory(ctx, actor, *req.MemoryID)
			if err != nil {
				return nil, err
			}
			item.MemoryID = memoryID
		}
	}

	if err := s.items.UpdateCompletion(ctx, item); err != nil {
		return nil, fmt.Errorf("failed to update bucket item: %w", err)
	}
	return item, nil
}

// linkedMemory checks that id names a memory of the same couple. An empty id
// removes the link.
func (s *BucketListService) linkedMemory(ctx context.Context, actor *Actor, id string) (*string, error) {
	if id == "" {
		return nil, nil
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, validate.Errorf("memory_id", "memory_id is not a valid id")
	}
	if _, err := s.memories.GetByID(ctx, actor.CoupleID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, validate.Errorf("memory_id", "memory does not exist")
		}
		return nil, fmt.Errorf("failed to get memory: %w", err)
	}
	return &id, nil
}
