package handlers

import (
	"context"
	"net/http"

	"lovejournal-backend/internal/middleware"
	"lovejournal-backend/internal/models"
	"lovejournal-backend/internal/services"
)

// LoveNoteService is the gratitude-note surface LoveNoteHandler needs
type LoveNoteService interface {
	List(ctx context.Context, actor *services.Actor) ([]*models.LoveNote, error)
	Create(ctx context.Context, actor *services.Actor, req services.CreateLoveNoteRequest) (*models.LoveNote, error)
}

// LoveNoteHandler handles love note HTTP requests
type LoveNoteHandler struct {
	noteService LoveNoteService
}

// NewLoveNoteHandler creates a new love note handler
func NewLoveNoteHandler(noteService LoveNoteService) *LoveNoteHandler {
	return &LoveNoteHandler{noteService: noteService}
}

// List handles GET /api/v1/love-notes
func (h *LoveNoteHandler) List(w http.ResponseWriter, r *http.Request) {
	notes, err := h.noteService.List(r.Context(), middleware.GetActor(r.Context()))
	if err != nil {
		handleError(w, r, err, "Failed to fetch love notes")
		return
	}
	respondJSON(w, http.StatusOK, notes)
}

// Create handles POST /api/v1/love-notes
func (h *LoveNoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.CreateLoveNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	note, err := h.noteService.Create(r.Context(), middleware.GetActor(r.Context()), req)
	if err != nil {
		handleError(w, r, err, "Failed to save love note")
		return
	}
	respondJSON(w, http.StatusCreated, note)
}
