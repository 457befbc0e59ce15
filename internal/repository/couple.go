package repository

import (
	"context"
	"fmt"

	"lovejournal-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// CoupleRepository handles database operations for couples
type CoupleRepository struct {
	db *pgxpool.Pool
}

// NewCoupleRepository creates a new couple repository
func NewCoupleRepository(db *pgxpool.Pool) *CoupleRepository {
	return &CoupleRepository{db: db}
}

// Create creates a new couple with its first partner
func (r *CoupleRepository) Create(ctx context.Context, couple *models.Couple) error {
	query := `
		INSERT INTO couples (id, user_a_id, user_b_id, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.Exec(ctx, query, couple.ID, couple.UserAID, couple.UserBID, couple.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create couple: %w", err)
	}
	return nil
}

// GetByID retrieves a couple by ID
func (r *CoupleRepository) GetByID(ctx context.Context, id string) (*models.Couple, error) {
	query := `
		SELECT id, user_a_id, user_b_id, created_at
		FROM couples
		WHERE id = $1
	`
	var couple models.Couple
	err := r.db.QueryRow(ctx, query, id).Scan(
		&couple.ID, &couple.UserAID, &couple.UserBID, &couple.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get couple: %w", notFound(err))
	}
	return &couple, nil
}

// AddPartner fills the second slot of a couple. It fails with ErrCoupleFull
// when the slot is already taken.
func (r *CoupleRepository) AddPartner(ctx context.Context, coupleID, userID string) error {
	query := `UPDATE couples SET user_b_id = $2 WHERE id = $1 AND user_b_id IS NULL`
	result, err := r.db.Exec(ctx, query, coupleID, userID)
	if err != nil {
		return fmt.Errorf("failed to add partner: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrCoupleFull
	}
	return nil
}
