package services

import (
	"context"
	"errors"
	"fmt"

	"lovejournal-backend/internal/calendar"
	"lovejournal-backend/internal/models"
	"lovejournal-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// CoupleService handles couple membership
type CoupleService struct {
	couples CoupleStore
	users   UserStore
	clock   calendar.Clock
}

// NewCoupleService creates a new couple service
func NewCoupleService(couples CoupleStore, users UserStore, clock calendar.Clock) *CoupleService {
	return &CoupleService{
		couples: couples,
		users:   users,
		clock:   clock,
	}
}

// Link decides which couple a user registering with email belongs to.
// Someone who already named email as their partner wins; otherwise the
// partner named by partnerEmail is joined; otherwise a new couple starts.
// A couple never takes a third member: a full couple falls through to the
// next option.
func (s *CoupleService) Link(ctx context.Context, userID, email, partnerEmail string) (string, error) {
	inviter, err := s.users.GetInviter(ctx, email)
	switch {
	case err == nil && inviter.CoupleID != "":
		joined, err := s.join(ctx, inviter.CoupleID, userID)
		if err != nil {
			return "", err
		}
		if joined {
			return inviter.CoupleID, nil
		}
	case err != nil && !errors.Is(err, repository.ErrNotFound):
		return "", fmt.Errorf("failed to look up inviter: %w", err)
	}

	if partnerEmail != "" {
		partner, err := s.users.GetByEmail(ctx, partnerEmail)
		switch {
		case err == nil && partner.CoupleID != "":
			joined, err := s.join(ctx, partner.CoupleID, userID)
			if err != nil {
				return "", err
			}
			if joined {
				return partner.CoupleID, nil
			}
		case err == nil:
			return s.startWithPartner(ctx, partner.ID, userID)
		case !errors.Is(err, repository.ErrNotFound):
			return "", fmt.Errorf("failed to look up partner: %w", err)
		}
	}

	couple := s.newCouple(userID)
	if err := s.couples.Create(ctx, couple); err != nil {
		return "", fmt.Errorf("failed to create couple: %w", err)
	}
	return couple.ID, nil
}

// join takes the free slot of coupleID. It reports false when the couple is full.
func (s *CoupleService) join(ctx context.Context, coupleID, userID string) (bool, error) {
	err := s.couples.AddPartner(ctx, coupleID, userID)
	if errors.Is(err, repository.ErrCoupleFull) {
		log.Warn().
			Str("couple_id", coupleID).
			Str("user_id", userID).
			Msg("Couple already complete, starting a new one")
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to join couple: %w", err)
	}
	return true, nil
}

// startWithPartner pairs userID with a registered partner who has no couple yet
func (s *CoupleService) startWithPartner(ctx context.Context, partnerID, userID string) (string, error) {
	couple := s.newCouple(partnerID)
	couple.UserBID = &userID
	if err := s.couples.Create(ctx, couple); err != nil {
		return "", fmt.Errorf("failed to create couple: %w", err)
	}
	if err := s.users.SetCoupleID(ctx, partnerID, couple.ID); err != nil {
		return "", fmt.Errorf("failed to attach partner: %w", err)
	}
	return couple.ID, nil
}

func (s *CoupleService) newCouple(firstUserID string) *models.Couple {
	return &models.Couple{
		ID:        uuid.New().String(),
		UserAID:   firstUserID,
		CreatedAt: s.clock.Now(),
	}
}

// Partner returns the other member of the couple, or nil while the partner
// has not joined yet
func (s *CoupleService) Partner(ctx context.Context, coupleID, userID string) (*models.User, error) {
	couple, err := s.couples.GetByID(ctx, coupleID)
	if err != nil {
		return nil, fmt.Errorf("couple not found: %w", err)
	}

	partnerID := couple.UserAID
	if partnerID == userID {
		if couple.UserBID == nil {
			return nil, nil
		}
		partnerID = *couple.UserBID
	}

	partner, err := s.users.GetByID(ctx, partnerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get partner: %w", err)
	}
	return partner, nil
}
