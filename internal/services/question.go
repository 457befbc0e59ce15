package services

import (
	"context"
	"errors"
	"fmt"

	"lovejournal-backend/internal/calendar"
	"lovejournal-backend/internal/daily"
	"lovejournal-backend/internal/models"
	"lovejournal-backend/internal/repository"
	"lovejournal-backend/internal/reveal"
	"lovejournal-backend/internal/validate"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const maxAnswerLength = 2000

// QuestionService handles the question of the day
type QuestionService struct {
	answers  AnswerStore
	selector *daily.Selector
	clock    calendar.Clock
}

// NewQuestionService creates a new question service
func NewQuestionService(answers AnswerStore, selector *daily.Selector, clock calendar.Clock) *QuestionService {
	return &QuestionService{answers: answers, selector: selector, clock: clock}
}

// QuestionOfTheDay is today's question with the caller's view of the answers
type QuestionOfTheDay struct {
	QuestionID   string `json:"question_id"`
	QuestionText string `json:"question_text"`
	reveal.AnswerPair
}

// AnswerRequest represents an answer to today's question
type AnswerRequest struct {
	QuestionID string `json:"question_id"`
	Answer     string `json:"answer"`
}

// Today returns the question for the current calendar day
func (s *QuestionService) Today(ctx context.Context, actor *Actor) (*QuestionOfTheDay, error) {
	pick := s.selector.PickForToday(s.clock.Now())

	answers, err := s.answers.ListByQuestion(ctx, actor.CoupleID, pick.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get answers: %w", err)
	}
	return questionOfTheDay(pick, answers, actor.UserID), nil
}

// Answer records the caller's single answer to today's question
func (s *QuestionService) Answer(ctx context.Context, actor *Actor, req AnswerRequest) (*QuestionOfTheDay, error) {
	text, err := validate.Required("answer", req.Answer, maxAnswerLength)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	pick := s.selector.PickForToday(now)
	if req.QuestionID != "" && req.QuestionID != pick.ID {
		return nil, ErrStaleQuestion
	}

	answers, err := s.answers.ListByQuestion(ctx, actor.CoupleID, pick.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get answers: %w", err)
	}
	for _, a := range answers {
		if a.UserID == actor.UserID {
			return nil, ErrDuplicateSubmission
		}
	}

	answer := &models.QuestionAnswer{
		ID:           uuid.New().String(),
		CoupleID:     actor.CoupleID,
		UserID:       actor.UserID,
		AuthorName:   actor.Name,
		QuestionID:   pick.ID,
		QuestionText: pick.Item,
		Answer:       text,
		CreatedAt:    now,
	}
	if err := s.answers.Create(ctx, answer); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrDuplicateSubmission
		}
		return nil, fmt.Errorf("failed to save answer: %w", err)
	}

	log.Info().
		Str("user_id", actor.UserID).
		Str("question_id", pick.ID).
		Msg("Question answered")

	return questionOfTheDay(pick, append(answers, answer), actor.UserID), nil
}

func questionOfTheDay(pick daily.Pick, answers []*models.QuestionAnswer, viewerID string) *QuestionOfTheDay {
	return &QuestionOfTheDay{
		QuestionID:   pick.ID,
		QuestionText: pick.Item,
		AnswerPair:   reveal.PairAnswers(answers, viewerID),
	}
}
