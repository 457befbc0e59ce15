package repository

import (
	"context"
	"fmt"

	"lovejournal-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// JournalRepository handles database operations for journals
type JournalRepository struct {
	db *pgxpool.Pool
}

// NewJournalRepository creates a new journal repository
func NewJournalRepository(db *pgxpool.Pool) *JournalRepository {
	return &JournalRepository{db: db}
}

func scanJournal(row rowScanner) (*models.Journal, error) {
	var j models.Journal
	err := row.Scan(&j.ID, &j.CoupleID, &j.UserID, &j.AuthorName, &j.Content, &j.Date, &j.Mood, &j.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &j, nil
}

// Create creates a new journal entry
func (r *JournalRepository) Create(ctx context.Context, j *models.Journal) error {
	query := `
		INSERT INTO journals (id, couple_id, user_id, author_name, content, date, mood, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query, j.ID, j.CoupleID, j.UserID, j.AuthorName, j.Content, j.Date, j.Mood, j.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create journal: %w", err)
	}
	return nil
}

// ListByCouple retrieves every journal entry of a couple, newest date first
func (r *JournalRepository) ListByCouple(ctx context.Context, coupleID string) ([]*models.Journal, error) {
	query := `
		SELECT id, couple_id, user_id, author_name, content, date, mood, created_at
		FROM journals
		WHERE couple_id = $1
		ORDER BY date DESC
	`
	rows, err := r.db.Query(ctx, query, coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get journals: %w", err)
	}
	journals, err := pgx.CollectRows(rows, rowTo(scanJournal))
	if err != nil {
		return nil, fmt.Errorf("failed to scan journals: %w", err)
	}
	return journals, nil
}
