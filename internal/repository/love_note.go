package repository

import (
	"context"
	"fmt"

	"lovejournal-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// LoveNoteRepository handles database operations for love notes
type LoveNoteRepository struct {
	db *pgxpool.Pool
}

// NewLoveNoteRepository creates a new love note repository
func NewLoveNoteRepository(db *pgxpool.Pool) *LoveNoteRepository {
	return &LoveNoteRepository{db: db}
}

// Create creates a new love note
func (r *LoveNoteRepository) Create(ctx context.Context, n *models.LoveNote) error {
	query := `
		INSERT INTO love_notes (id, couple_id, user_id, author_name, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.db.Exec(ctx, query, n.ID, n.CoupleID, n.UserID, n.AuthorName, n.Content, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create love note: %w", err)
	}
	return nil
}

// ListByCouple retrieves every love note of a couple, newest first
func (r *LoveNoteRepository) ListByCouple(ctx context.Context, coupleID string) ([]*models.LoveNote, error) {
	query := `
		SELECT id, couple_id, user_id, author_name, content, created_at
		FROM love_notes
		WHERE couple_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.Query(ctx, query, coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get love notes: %w", err)
	}
	notes, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.LoveNote, error) {
		var n models.LoveNote
		if err := row.Scan(&n.ID, &n.CoupleID, &n.UserID, &n.AuthorName, &n.Content, &n.CreatedAt); err != nil {
			return nil, err
		}
		return &n, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan love notes: %w", err)
	}
	return notes, nil
}
