package repository

import (
	"context"
	"fmt"

	"lovejournal-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const letterColumns = `id, couple_id, user_id, author_name, title, content, open_date, is_opened, created_at`

// LetterRepository handles database operations for time-capsule letters
type LetterRepository struct {
	db *pgxpool.Pool
}

// NewLetterRepository creates a new letter repository
func NewLetterRepository(db *pgxpool.Pool) *LetterRepository {
	return &LetterRepository{db: db}
}

func scanLetter(row rowScanner) (*models.Letter, error) {
	var l models.Letter
	err := row.Scan(&l.ID, &l.CoupleID, &l.UserID, &l.AuthorName, &l.Title, &l.Content, &l.OpenDate, &l.IsOpened, &l.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create creates a new letter
func (r *LetterRepository) Create(ctx context.Context, l *models.Letter) error {
	query := `
		INSERT INTO letters (id, couple_id, user_id, author_name, title, content, open_date, is_opened, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.db.Exec(ctx, query, l.ID, l.CoupleID, l.UserID, l.AuthorName, l.Title, l.Content, l.OpenDate, l.IsOpened, l.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create letter: %w", err)
	}
	return nil
}

// GetByID retrieves a letter within a couple
func (r *LetterRepository) GetByID(ctx context.Context, coupleID, id string) (*models.Letter, error) {
	query := `SELECT ` + letterColumns + ` FROM letters WHERE id = $1 AND couple_id = $2`
	l, err := scanLetter(r.db.QueryRow(ctx, query, id, coupleID))
	if err != nil {
		return nil, fmt.Errorf("failed to get letter: %w", notFound(err))
	}
	return l, nil
}

// ListByCouple retrieves every letter of a couple, soonest open date first
func (r *LetterRepository) ListByCouple(ctx context.Context, coupleID string) ([]*models.Letter, error) {
	query := `SELECT ` + letterColumns + ` FROM letters WHERE couple_id = $1 ORDER BY open_date ASC`
	rows, err := r.db.Query(ctx, query, coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get letters: %w", err)
	}
	letters, err := pgx.CollectRows(rows, rowTo(scanLetter))
	if err != nil {
		return nil, fmt.Errorf("failed to scan letters: %w", err)
	}
	return letters, nil
}

// MarkOpened flags a letter as opened
func (r *LetterRepository) MarkOpened(ctx context.Context, coupleID, id string) error {
	query := `UPDATE letters SET is_opened = true WHERE id = $1 AND couple_id = $2`
	result, err := r.db.Exec(ctx, query, id, coupleID)
	if err != nil {
		return fmt.Errorf("failed to open letter: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
