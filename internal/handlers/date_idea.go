package handlers

import (
	"context"
	"net/http"

	"lovejournal-backend/internal/middleware"
	"lovejournal-backend/internal/models"
	"lovejournal-backend/internal/services"

	"github.com/go-chi/chi/v5"
)

// DateIdeaService is the spinner surface DateIdeaHandler needs
type DateIdeaService interface {
	List(ctx context.Context, actor *services.Actor) ([]*models.DateIdea, error)
	Create(ctx context.Context, actor *services.Actor, req services.CreateDateIdeaRequest) (*models.DateIdea, error)
	Update(ctx context.Context, actor *services.Actor, id string, req services.UpdateDateIdeaRequest) (*models.DateIdea, error)
	Spin(ctx context.Context, actor *services.Actor) (*models.DateIdea, error)
}

// DateIdeaHandler handles date-night spinner HTTP requests
type DateIdeaHandler struct {
	ideaService DateIdeaService
}

// NewDateIdeaHandler creates a new date idea handler
func NewDateIdeaHandler(ideaService DateIdeaService) *DateIdeaHandler {
	return &DateIdeaHandler{ideaService: ideaService}
}

// List handles GET /api/v1/date-ideas
func (h *DateIdeaHandler) List(w http.ResponseWriter, r *http.Request) {
	ideas, err := h.ideaService.List(r.Context(), middleware.GetActor(r.Context()))
	if err != nil {
		handleError(w, r, err, "Failed to fetch date ideas")
		return
	}
	respondJSON(w, http.StatusOK, ideas)
}

// Create handles POST /api/v1/date-ideas
func (h *DateIdeaHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.CreateDateIdeaRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	idea, err := h.ideaService.Create(r.Context(), middleware.GetActor(r.Context()), req)
	if err != nil {
		handleError(w, r, err, "Failed to save date idea")
		return
	}
	respondJSON(w, http.StatusCreated, idea)
}

// Update handles PATCH /api/v1/date-ideas/{id}
func (h *DateIdeaHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateDateIdeaRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	idea, err := h.ideaService.Update(r.Context(), middleware.GetActor(r.Context()), chi.URLParam(r, "id"), req)
	if err != nil {
		handleError(w, r, err, "Failed to update date idea")
		return
	}
	respondJSON(w, http.StatusOK, idea)
}

// Spin handles POST /api/v1/date-ideas/spin
func (h *DateIdeaHandler) Spin(w http.ResponseWriter, r *http.Request) {
	idea, err := h.ideaService.Spin(r.Context(), middleware.GetActor(r.Context()))
	if err != nil {
		handleError(w, r, err, "Failed to spin")
		return
	}
	respondJSON(w, http.StatusOK, idea)
}
