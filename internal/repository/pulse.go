package repository

import (
	"context"
	"fmt"

	"lovejournal-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PulseRepository handles database operations for "thinking of you" pulses
type PulseRepository struct {
	db *pgxpool.Pool
}

// NewPulseRepository creates a new pulse repository
func NewPulseRepository(db *pgxpool.Pool) *PulseRepository {
	return &PulseRepository{db: db}
}

// Upsert records the latest pulse of a sender, one row per sender and couple
func (r *PulseRepository) Upsert(ctx context.Context, p *models.Pulse) (*models.Pulse, error) {
	query := `
		INSERT INTO pulses (id, couple_id, from_user_id, last_pulse)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (couple_id, from_user_id) DO UPDATE SET last_pulse = EXCLUDED.last_pulse
		RETURNING id, couple_id, from_user_id, last_pulse
	`
	var saved models.Pulse
	err := r.db.QueryRow(ctx, query, p.ID, p.CoupleID, p.FromUserID, p.LastPulse).Scan(
		&saved.ID, &saved.CoupleID, &saved.FromUserID, &saved.LastPulse,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to save pulse: %w", err)
	}
	return &saved, nil
}

// LatestFromPartner retrieves the most recent pulse sent to userID by anyone
// else in the couple
func (r *PulseRepository) LatestFromPartner(ctx context.Context, coupleID, userID string) (*models.Pulse, error) {
	query := `
		SELECT id, couple_id, from_user_id, last_pulse
		FROM pulses
		WHERE couple_id = $1 AND from_user_id <> $2
		ORDER BY last_pulse DESC
		LIMIT 1
	`
	var p models.Pulse
	err := r.db.QueryRow(ctx, query, coupleID, userID).Scan(&p.ID, &p.CoupleID, &p.FromUserID, &p.LastPulse)
	if err != nil {
		return nil, fmt.Errorf("failed to get pulse: %w", notFound(err))
	}
	return &p, nil
}
