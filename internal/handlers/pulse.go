package handlers

import (
	"context"
	"net/http"

	"lovejournal-backend/internal/middleware"
	"lovejournal-backend/internal/models"
	"lovejournal-backend/internal/services"
)

// PulseService is the heartbeat surface PulseHandler needs
type PulseService interface {
	Send(ctx context.Context, actor *services.Actor) (*models.Pulse, error)
	Latest(ctx context.Context, actor *services.Actor) (*models.Pulse, error)
}

// PulseResponse wraps a pulse that may be absent
type PulseResponse struct {
	Pulse *models.Pulse `json:"pulse"`
}

// PulseHandler handles "thinking of you" HTTP requests
type PulseHandler struct {
	pulseService PulseService
}

// NewPulseHandler creates a new pulse handler
func NewPulseHandler(pulseService PulseService) *PulseHandler {
	return &PulseHandler{pulseService: pulseService}
}

// Latest handles GET /api/v1/pulse
func (h *PulseHandler) Latest(w http.ResponseWriter, r *http.Request) {
	pulse, err := h.pulseService.Latest(r.Context(), middleware.GetActor(r.Context()))
	if err != nil {
		handleError(w, r, err, "Failed to fetch pulse")
		return
	}
	respondJSON(w, http.StatusOK, PulseResponse{Pulse: pulse})
}

// Send handles POST /api/v1/pulse
func (h *PulseHandler) Send(w http.ResponseWriter, r *http.Request) {
	pulse, err := h.pulseService.Send(r.Context(), middleware.GetActor(r.Context()))
	if err != nil {
		handleError(w, r, err, "Failed to send pulse")
		return
	}
	respondJSON(w, http.StatusOK, PulseResponse{Pulse: pulse})
}
