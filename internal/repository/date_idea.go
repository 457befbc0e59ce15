package repository

import (
	"context"
	"fmt"

	"lovejournal-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const dateIdeaColumns = `id, couple_id, title, category, added_by, is_used, created_at`

// DateIdeaRepository handles database operations for the date-night pool
type DateIdeaRepository struct {
	db *pgxpool.Pool
}

// NewDateIdeaRepository creates a new date idea repository
func NewDateIdeaRepository(db *pgxpool.Pool) *DateIdeaRepository {
	return &DateIdeaRepository{db: db}
}

func scanDateIdea(row rowScanner) (*models.DateIdea, error) {
	var d models.DateIdea
	if err := row.Scan(&d.ID, &d.CoupleID, &d.Title, &d.Category, &d.AddedBy, &d.IsUsed, &d.CreatedAt); err != nil {
		return nil, err
	}
	return &d, nil
}

// Create creates a new date idea
func (r *DateIdeaRepository) Create(ctx context.Context, d *models.DateIdea) error {
	query := `INSERT INTO date_ideas (` + dateIdeaColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query, d.ID, d.CoupleID, d.Title, d.Category, d.AddedBy, d.IsUsed, d.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create date idea: %w", err)
	}
	return nil
}

// ListByCouple retrieves the date ideas of a couple, newest first.
// With unusedOnly set, ideas already picked are skipped.
func (r *DateIdeaRepository) ListByCouple(ctx context.Context, coupleID string, unusedOnly bool) ([]*models.DateIdea, error) {
	query := `SELECT ` + dateIdeaColumns + `
		FROM date_ideas
		WHERE couple_id = $1 AND (NOT $2 OR is_used = false)
		ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, coupleID, unusedOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to get date ideas: %w", err)
	}
	ideas, err := pgx.CollectRows(rows, rowTo(scanDateIdea))
	if err != nil {
		return nil, fmt.Errorf("failed to scan date ideas: %w", err)
	}
	return ideas, nil
}

// SetUsed flags an idea as used or returns it to the pool
func (r *DateIdeaRepository) SetUsed(ctx context.Context, coupleID, id string, used bool) (*models.DateIdea, error) {
	query := `UPDATE date_ideas SET is_used = $1 WHERE id = $2 AND couple_id = $3 RETURNING ` + dateIdeaColumns
	d, err := scanDateIdea(r.db.QueryRow(ctx, query, used, id, coupleID))
	if err != nil {
		return nil, fmt.Errorf("failed to update date idea: %w", notFound(err))
	}
	return d, nil
}
