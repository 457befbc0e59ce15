package repository

import (
	"context"
	"fmt"

	"lovejournal-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const memoryColumns = `id, couple_id, user_id, title, description, date, image_url, audio_url,
	category, mood, created_at`

// MemoryRepository handles database operations for memories
type MemoryRepository struct {
	db *pgxpool.Pool
}

// NewMemoryRepository creates a new memory repository
func NewMemoryRepository(db *pgxpool.Pool) *MemoryRepository {
	return &MemoryRepository{db: db}
}

func scanMemory(row rowScanner) (*models.Memory, error) {
	var m models.Memory
	err := row.Scan(
		&m.ID, &m.CoupleID, &m.UserID, &m.Title, &m.Description, &m.Date,
		&m.ImageURL, &m.AudioURL, &m.Category, &m.Mood, &m.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// Create creates a new memory
func (r *MemoryRepository) Create(ctx context.Context, m *models.Memory) error {
	query := `
		INSERT INTO memories (id, couple_id, user_id, title, description, date, image_url, audio_url,
			category, mood, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	_, err := r.db.Exec(ctx, query,
		m.ID, m.CoupleID, m.UserID, m.Title, m.Description, m.Date,
		m.ImageURL, m.AudioURL, m.Category, m.Mood, m.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create memory: %w", err)
	}
	return nil
}

// GetByID retrieves a memory within a couple
func (r *MemoryRepository) GetByID(ctx context.Context, coupleID, id string) (*models.Memory, error) {
	query := `SELECT ` + memoryColumns + ` FROM memories WHERE id = $1 AND couple_id = $2`
	m, err := scanMemory(r.db.QueryRow(ctx, query, id, coupleID))
	if err != nil {
		return nil, fmt.Errorf("failed to get memory: %w", notFound(err))
	}
	return m, nil
}

// ListByCouple retrieves every memory of a couple, newest date first
func (r *MemoryRepository) ListByCouple(ctx context.Context, coupleID string) ([]*models.Memory, error) {
	query := `SELECT ` + memoryColumns + ` FROM memories WHERE couple_id = $1 ORDER BY date DESC`
	rows, err := r.db.Query(ctx, query, coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get memories: %w", err)
	}
	memories, err := pgx.CollectRows(rows, rowTo(scanMemory))
	if err != nil {
		return nil, fmt.Errorf("failed to scan memories: %w", err)
	}
	return memories, nil
}

// Delete deletes a memory within a couple
func (r *MemoryRepository) Delete(ctx context.Context, coupleID, id string) error {
	query := `DELETE FROM memories WHERE id = $1 AND couple_id = $2`
	result, err := r.db.Exec(ctx, query, id, coupleID)
	if err != nil {
		return fmt.Errorf("failed to delete memory: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
