package services

import (
	"context"
	"fmt"

	"lovejournal-backend/internal/calendar"
	"lovejournal-backend/internal/models"
	"lovejournal-backend/internal/reveal"
	"lovejournal-backend/internal/validate"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// LetterService handles time-capsule letters
type LetterService struct {
	letters LetterStore
	clock   calendar.Clock
}

// NewLetterService creates a new letter service
func NewLetterService(letters LetterStore, clock calendar.Clock) *LetterService {
	return &LetterService{letters: letters, clock: clock}
}

// CreateLetterRequest represents a new sealed letter
type CreateLetterRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	OpenDate string `json:"open_date"`
}

// List returns the couple's letters, soonest open date first, with sealed
// content hidden from the partner
func (s *LetterService) List(ctx context.Context, actor *Actor) ([]reveal.LetterView, error) {
	letters, err := s.letters.ListByCouple(ctx, actor.CoupleID)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	views := make([]reveal.LetterView, 0, len(letters))
	for _, l := range letters {
		views = append(views, reveal.RedactLetter(l, actor.UserID, now))
	}
	return views, nil
}

// Create seals a letter until a future open date
func (s *LetterService) Create(ctx context.Context, actor *Actor, req CreateLetterRequest) (*reveal.LetterView, error) {
	title, err := validate.Required("title", req.Title, 0)
	if err != nil {
		return nil, err
	}
	content, err := validate.Required("content", req.Content, 0)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	openDate, err := validate.Date("open_date", req.OpenDate, now.Location())
	if err != nil {
		return nil, err
	}
	if openDate == nil {
		return nil, validate.Errorf("open_date", "open_date is required")
	}
	if err := validate.FutureTime("open_date", *openDate, now); err != nil {
		return nil, err
	}

	letter := &models.Letter{
		ID:         uuid.New().String(),
		CoupleID:   actor.CoupleID,
		UserID:     actor.UserID,
		AuthorName: actor.Name,
		Title:      title,
		Content:    content,
		OpenDate:   *openDate,
		CreatedAt:  now,
	}
	if err := s.letters.Create(ctx, letter); err != nil {
		return nil, fmt.Errorf("failed to create letter: %w", err)
	}

	view := reveal.RedactLetter(letter, actor.UserID, now)
	return &view, nil
}

// Open marks a letter as read. A letter still sealed for the caller cannot
// be opened.
func (s *LetterService) Open(ctx context.Context, actor *Actor, id string) (*reveal.LetterView, error) {
	if err := checkRecordID(id); err != nil {
		return nil, err
	}
	letter, err := s.letters.GetByID(ctx, actor.CoupleID, id)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if !reveal.CanRevealLetter(letter, actor.UserID, now) {
		log.Debug().
			Str("letter_id", id).
			Str("user_id", actor.UserID).
			Time("open_date", letter.OpenDate).
			Msg("Letter still sealed")
		return nil, ErrLetterLocked
	}

	if !letter.IsOpened {
		if err := s.letters.MarkOpened(ctx, actor.CoupleID, id); err != nil {
			return nil, fmt.Errorf("failed to open letter: %w", err)
		}
		letter.IsOpened = true
	}

	view := reveal.RedactLetter(letter, actor.UserID, now)
	return &view, nil
}
