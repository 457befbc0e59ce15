package services

import (
	"context"
	"errors"
	"fmt"

	"lovejournal-backend/internal/calendar"
	"lovejournal-backend/internal/models"
	"lovejournal-backend/internal/repository"

	"github.com/google/uuid"
)

// PulseService handles "thinking of you" heartbeats
type PulseService struct {
	pulses PulseStore
	clock  calendar.Clock
}

// NewPulseService creates a new pulse service
func NewPulseService(pulses PulseStore, clock calendar.Clock) *PulseService {
	return &PulseService{pulses: pulses, clock: clock}
}

// Send records a pulse from the caller, replacing the previous one
func (s *PulseService) Send(ctx context.Context, actor *Actor) (*models.Pulse, error) {
	pulse, err := s.pulses.Upsert(ctx, &models.Pulse{
		ID:         uuid.New().String(),
		CoupleID:   actor.CoupleID,
		FromUserID: actor.UserID,
		LastPulse:  s.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to send pulse: %w", err)
	}
	return pulse, nil
}

// Latest returns the partner's most recent pulse, or nil when none was sent
func (s *PulseService) Latest(ctx context.Context, actor *Actor) (*models.Pulse, error) {
	pulse, err := s.pulses.LatestFromPartner(ctx, actor.CoupleID, actor.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get pulse: %w", err)
	}
	return pulse, nil
}
