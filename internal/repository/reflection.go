package repository

import (
	"context"
	"fmt"

	"lovejournal-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReflectionRepository handles database operations for healing-flow reflections
type ReflectionRepository struct {
	db *pgxpool.Pool
}

// NewReflectionRepository creates a new reflection repository
func NewReflectionRepository(db *pgxpool.Pool) *ReflectionRepository {
	return &ReflectionRepository{db: db}
}

// Create creates a new reflection. VisibleAfter must already be set.
func (r *ReflectionRepository) Create(ctx context.Context, ref *models.Reflection) error {
	query := `
		INSERT INTO reflections (id, couple_id, user_id, author_name, what_hurt, what_learned,
			do_differently, mood, visible_after, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.db.Exec(ctx, query,
		ref.ID, ref.CoupleID, ref.UserID, ref.AuthorName, ref.WhatHurt, ref.WhatLearned,
		ref.DoDifferently, ref.Mood, ref.VisibleAfter, ref.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create reflection: %w", err)
	}
	return nil
}

// ListByCouple retrieves every reflection of a couple, newest first
func (r *ReflectionRepository) ListByCouple(ctx context.Context, coupleID string) ([]*models.Reflection, error) {
	query := `
		SELECT id, couple_id, user_id, author_name, what_hurt, what_learned, do_differently,
			mood, visible_after, created_at
		FROM reflections
		WHERE couple_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get reflections: %w", err)
	}
	reflections, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.Reflection, error) {
		var ref models.Reflection
		err := row.Scan(
			&ref.ID, &ref.CoupleID, &ref.UserID, &ref.AuthorName, &ref.WhatHurt, &ref.WhatLearned,
			&ref.DoDifferently, &ref.Mood, &ref.VisibleAfter, &ref.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		return &ref, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan reflections: %w", err)
	}
	return reflections, nil
}
