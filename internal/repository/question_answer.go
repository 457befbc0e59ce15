package repository

import (
	"context"
	"fmt"

	"lovejournal-backend/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// QuestionAnswerRepository handles database operations for question-of-the-day answers
type QuestionAnswerRepository struct {
	db *pgxpool.Pool
}

// NewQuestionAnswerRepository creates a new question answer repository
func NewQuestionAnswerRepository(db *pgxpool.Pool) *QuestionAnswerRepository {
	return &QuestionAnswerRepository{db: db}
}

// Create stores an answer. A second answer from the same user to the same
// question of the same couple fails with ErrDuplicate.
func (r *QuestionAnswerRepository) Create(ctx context.Context, a *models.QuestionAnswer) error {
	query := `
		INSERT INTO question_answers (id, couple_id, user_id, author_name, question_id, question_text, answer, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.db.Exec(ctx, query,
		a.ID, a.CoupleID, a.UserID, a.AuthorName, a.QuestionID, a.QuestionText, a.Answer, a.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicate
		}
		return fmt.Errorf("failed to create answer: %w", err)
	}
	return nil
}

// ListByQuestion retrieves the answers of a couple to one question, oldest first
func (r *QuestionAnswerRepository) ListByQuestion(ctx context.Context, coupleID, questionID string) ([]*models.QuestionAnswer, error) {
	query := `
		SELECT id, couple_id, user_id, author_name, question_id, question_text, answer, created_at
		FROM question_answers
		WHERE couple_id = $1 AND question_id = $2
		ORDER BY created_at ASC
	`
	rows, err := r.db.Query(ctx, query, coupleID, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get answers: %w", err)
	}
	answers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*models.QuestionAnswer, error) {
		var a models.QuestionAnswer
		err := row.Scan(&a.ID, &a.CoupleID, &a.UserID, &a.AuthorName, &a.QuestionID, &a.QuestionText, &a.Answer, &a.CreatedAt)
		if err != nil {
			return nil, err
		}
		return &a, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan answers: %w", err)
	}
	return answers, nil
}
