package repository

import (
	"context"
	"fmt"

	"lovejournal-backend/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

const userColumns = `id, name, email, password_hash, partner_email, avatar,
	COALESCE(couple_id::text, ''), anniversary_date, together_since, milestone_name,
	created_at, updated_at`

// UserRepository handles database operations for users
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *pgxpool.Pool) *UserRepository {
	return &UserRepository{db: db}
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Name, &user.Email, &user.PasswordHash, &user.PartnerEmail, &user.Avatar,
		&user.CoupleID, &user.AnniversaryDate, &user.TogetherSince, &user.MilestoneName,
		&user.CreatedAt, &user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, password_hash, partner_email, avatar, couple_id,
			anniversary_date, together_since, milestone_name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')::uuid, $8, $9, $10, $11, $12)
	`
	_, err := r.db.Exec(ctx, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.PartnerEmail, user.Avatar, user.CoupleID,
		user.AnniversaryDate, user.TogetherSince, user.MilestoneName, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", notFound(err))
	}
	return user, nil
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user by email: %w", notFound(err))
	}
	return user, nil
}

// GetInviter retrieves the user who named email as their partner
func (r *UserRepository) GetInviter(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE partner_email = $1 ORDER BY created_at LIMIT 1`
	user, err := scanUser(r.db.QueryRow(ctx, query, email))
	if err != nil {
		return nil, fmt.Errorf("failed to get inviter: %w", notFound(err))
	}
	return user, nil
}

// SetCoupleID attaches a user to a couple
func (r *UserRepository) SetCoupleID(ctx context.Context, userID, coupleID string) error {
	query := `UPDATE users SET couple_id = $1, updated_at = now() WHERE id = $2`
	result, err := r.db.Exec(ctx, query, coupleID, userID)
	if err != nil {
		return fmt.Errorf("failed to set couple id: %w", err)
	}
	if result.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateProfile persists the editable profile fields and returns the stored user
func (r *UserRepository) UpdateProfile(ctx context.Context, user *models.User) (*models.User, error) {
	query := `
		UPDATE users
		SET anniversary_date = $1, together_since = $2, milestone_name = $3, updated_at = $4
		WHERE id = $5
		RETURNING ` + userColumns
	updated, err := scanUser(r.db.QueryRow(ctx, query,
		user.AnniversaryDate, user.TogetherSince, user.MilestoneName, user.UpdatedAt, user.ID,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", notFound(err))
	}
	return updated, nil
}
