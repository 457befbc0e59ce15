package repository

import (
	"context"
	"fmt"

	"lovejournal-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const bucketItemColumns = `id, couple_id, title, description, is_completed, completed_date,
	memory_id::text, created_at`

// BucketItemRepository handles database operations for the bucket list
type BucketItemRepository struct {
	db *pgxpool.Pool
}

// NewBucketItemRepository creates a new bucket item repository
func NewBucketItemRepository(db *pgxpool.Pool) *BucketItemRepository {
	return &BucketItemRepository{db: db}
}

func scanBucketItem(row rowScanner) (*models.BucketItem, error) {
	var b models.BucketItem
	err := row.Scan(&b.ID, &b.CoupleID, &b.Title, &b.Description, &b.IsCompleted, &b.CompletedDate, &b.MemoryID, &b.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

// Create creates a new bucket list item
func (r *BucketItemRepository) Create(ctx context.Context, b *models.BucketItem) error {
	query := `
		INSERT INTO bucket_items (id, couple_id, title, description, is_completed, completed_date, memory_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query, b.ID, b.CoupleID, b.Title, b.Description, b.IsCompleted, b.CompletedDate, b.MemoryID, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create bucket item: %w", err)
	}
	return nil
}

// GetByID retrieves a bucket list item within a couple
func (r *BucketItemRepository) GetByID(ctx context.Context, coupleID, id string) (*models.BucketItem, error) {
	query := `SELECT ` + bucketItemColumns + ` FROM bucket_items WHERE id = $1 AND couple_id = $2`
	b, err := scanBucketItem(r.db.QueryRow(ctx, query, id, coupleID))
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket item: %w", notFound(err))
	}
	return b, nil
}

// ListByCouple retrieves the bucket list, open items first, then newest first
func (r *BucketItemRepository) ListByCouple(ctx context.Context, coupleID string) ([]*models.BucketItem, error) {
	query := `SELECT ` + bucketItemColumns + `
		FROM bucket_items
		WHERE couple_id = $1
		ORDER BY is_completed ASC, created_at DESC`
	rows, err := r.db.Query(ctx, query, coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bucket items: %w", err)
	}
	items, err := pgx.CollectRows(rows, rowTo(scanBucketItem))
	if err != nil {
		return nil, fmt.Errorf("failed to scan bucket items: %w", err)
	}
	return items, nil
}

// UpdateCompletion stores the completion state of an item
func (r *BucketItemRepository) UpdateCompletion(ctx context.Context, b *models.BucketItem) error {
	query := `
		UPDATE bucket_items
		SET is_completed = $1, completed_date = $2, memory_id = $3
		WHERE id = $4 AND couple_id = $5
	`
	result, err := r.db.Exec(ctx, query, b.IsCompleted, b.CompletedDate, b.MemoryID, b.ID, b.CoupleID)
	if err != nil {
		return fmt.Errorf("failed to update bucket item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
