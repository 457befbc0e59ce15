package handlers

import (
	"context"
	"net/http"

	"lovejournal-backend/internal/middleware"
	"lovejournal-backend/internal/models"
	"lovejournal-backend/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

// MemoryService is the memory surface MemoryHandler needs
type MemoryService interface {
	List(ctx context.Context, actor *services.Actor) ([]*models.Memory, error)
	Create(ctx context.Context, actor *services.Actor, req services.CreateMemoryRequest) (*models.Memory, error)
	Delete(ctx context.Context, actor *services.Actor, id string) error
}

// MemoryHandler handles memory-related HTTP requests
type MemoryHandler struct {
	memoryService MemoryService
}

// NewMemoryHandler creates a new memory handler
func NewMemoryHandler(memoryService MemoryService) *MemoryHandler {
	return &MemoryHandler{memoryService: memoryService}
}

// List handles GET /api/v1/memories
func (h *MemoryHandler) List(w http.ResponseWriter, r *http.Request) {
	memories, err := h.memoryService.List(r.Context(), middleware.GetActor(r.Context()))
	if err != nil {
		handleError(w, r, err, "Failed to fetch memories")
		return
	}
	respondJSON(w, http.StatusOK, memories)
}

// Create handles POST /api/v1/memories
func (h *MemoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.CreateMemoryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	memory, err := h.memoryService.Create(r.Context(), middleware.GetActor(r.Context()), req)
	if err != nil {
		handleError(w, r, err, "Failed to create memory")
		return
	}
	respondJSON(w, http.StatusCreated, memory)
}

// Delete handles DELETE /api/v1/memories/{id}
func (h *MemoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r.Context())
	id := chi.URLParam(r, "id")

	if err := h.memoryService.Delete(r.Context(), actor, id); err != nil {
		handleError(w, r, err, "Failed to delete memory")
		return
	}

	log.Info().
		Str("user_id", actor.UserID).
		Str("memory_id", id).
		Msg("Memory deleted")

	w.WriteHeader(http.StatusNoContent)
}
