package handlers

import (
	"context"
	"net/http"

	"lovejournal-backend/internal/middleware"
	"lovejournal-backend/internal/services"
)

// QuestionService is the question-of-the-day surface QuestionHandler needs
type QuestionService interface {
	Today(ctx context.Context, actor *services.Actor) (*services.QuestionOfTheDay, error)
	Answer(ctx context.Context, actor *services.Actor, req services.AnswerRequest) (*services.QuestionOfTheDay, error)
}

// QuestionHandler handles question-of-the-day HTTP requests
type QuestionHandler struct {
	questionService QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionService QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// Today handles GET /api/v1/questions/today
func (h *QuestionHandler) Today(w http.ResponseWriter, r *http.Request) {
	q, err := h.questionService.Today(r.Context(), middleware.GetActor(r.Context()))
	if err != nil {
		handleError(w, r, err, "Failed to fetch today's question")
		return
	}
	respondJSON(w, http.StatusOK, q)
}

// Answer handles POST /api/v1/questions/today
func (h *QuestionHandler) Answer(w http.ResponseWriter, r *http.Request) {
	var req services.AnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	q, err := h.questionService.Answer(r.Context(), middleware.GetActor(r.Context()), req)
	if err != nil {
		handleError(w, r, err, "Failed to save answer")
		return
	}
	respondJSON(w, http.StatusCreated, q)
}
