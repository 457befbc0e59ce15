package handlers

import (
	"context"
	"net/http"

	"lovejournal-backend/internal/middleware"
	"lovejournal-backend/internal/models"
	"lovejournal-backend/internal/services"
)

// JournalService is the diary surface JournalHandler needs
type JournalService interface {
	List(ctx context.Context, actor *services.Actor) ([]*models.Journal, error)
	Create(ctx context.Context, actor *services.Actor, req services.CreateJournalRequest) (*models.Journal, error)
}

// JournalHandler handles journal HTTP requests
type JournalHandler struct {
	journalService JournalService
}

// NewJournalHandler creates a new journal handler
func NewJournalHandler(journalService JournalService) *JournalHandler {
	return &JournalHandler{journalService: journalService}
}

// List handles GET /api/v1/journals
func (h *JournalHandler) List(w http.ResponseWriter, r *http.Request) {
	journals, err := h.journalService.List(r.Context(), middleware.GetActor(r.Context()))
	if err != nil {
		handleError(w, r, err, "Failed to fetch journals")
		return
	}
	respondJSON(w, http.StatusOK, journals)
}

// Create handles POST /api/v1/journals
func (h *JournalHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.CreateJournalRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	journal, err := h.journalService.Create(r.Context(), middleware.GetActor(r.Context()), req)
	if err != nil {
		handleError(w, r, err, "Failed to save journal")
		return
	}
	respondJSON(w, http.StatusCreated, journal)
}
