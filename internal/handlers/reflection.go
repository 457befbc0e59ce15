package handlers

import (
	"context"
	"net/http"

	"lovejournal-backend/internal/middleware"
	"lovejournal-backend/internal/reveal"
	"lovejournal-backend/internal/services"
)

// ReflectionService is the healing-flow surface ReflectionHandler needs
type ReflectionService interface {
	List(ctx context.Context, actor *services.Actor) ([]reveal.ReflectionGroup, error)
	Create(ctx context.Context, actor *services.Actor, req services.CreateReflectionRequest) (*reveal.ReflectionView, error)
}

// ReflectionHandler handles healing-flow HTTP requests
type ReflectionHandler struct {
	reflectionService ReflectionService
}

// NewReflectionHandler creates a new reflection handler
func NewReflectionHandler(reflectionService ReflectionService) *ReflectionHandler {
	return &ReflectionHandler{reflectionService: reflectionService}
}

// List handles GET /api/v1/reflections
func (h *ReflectionHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.reflectionService.List(r.Context(), middleware.GetActor(r.Context()))
	if err != nil {
		handleError(w, r, err, "Failed to fetch reflections")
		return
	}
	respondJSON(w, http.StatusOK, groups)
}

// Create handles POST /api/v1/reflections
func (h *ReflectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.CreateReflectionRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reflection, err := h.reflectionService.Create(r.Context(), middleware.GetActor(r.Context()), req)
	if err != nil {
		handleError(w, r, err, "Failed to save reflection")
		return
	}
	respondJSON(w, http.StatusCreated, reflection)
}
