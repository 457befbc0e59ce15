package handlers

import (
	"context"
	"net/http"

	"lovejournal-backend/internal/middleware"
	"lovejournal-backend/internal/reveal"
	"lovejournal-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// LetterService is the time-capsule surface LetterHandler needs
type LetterService interface {
	List(ctx context.Context, actor *services.Actor) ([]reveal.LetterView, error)
	Create(ctx context.Context, actor *services.Actor, req services.CreateLetterRequest) (*reveal.LetterView, error)
	Open(ctx context.Context, actor *services.Actor, id string) (*reveal.LetterView, error)
}

// LetterHandler handles time-capsule letter HTTP requests
type LetterHandler struct {
	letterService LetterService
}

// NewLetterHandler creates a new letter handler
func NewLetterHandler(letterService LetterService) *LetterHandler {
	return &LetterHandler{letterService: letterService}
}

// List handles GET /api/v1/letters
func (h *LetterHandler) List(w http.ResponseWriter, r *http.Request) {
	letters, err := h.letterService.List(r.Context(), middleware.GetActor(r.Context()))
	if err != nil {
		handleError(w, r, err, "Failed to fetch letters")
		return
	}
	respondJSON(w, http.StatusOK, letters)
}

// Create handles POST /api/v1/letters
func (h *LetterHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r.Context())

	var req services.CreateLetterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	letter, err := h.letterService.Create(r.Context(), actor, req)
	if err != nil {
		handleError(w, r, err, "Failed to seal letter")
		return
	}

	log.Info().
		Str("user_id", actor.UserID).
		Str("letter_id", letter.ID).
		Time("open_date", letter.OpenDate).
		Msg("Letter sealed")

	respondJSON(w, http.StatusCreated, letter)
}

// Open handles POST /api/v1/letters/{id}/open
func (h *LetterHandler) Open(w http.ResponseWriter, r *http.Request) {
	letter, err := h.letterService.Open(r.Context(), middleware.GetActor(r.Context()), chi.URLParam(r, "id"))
	if err != nil {
		handleError(w, r, err, "Failed to open letter")
		return
	}
	respondJSON(w, http.StatusOK, letter)
}
