package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"lovejournal-backend/internal/middleware"
	"lovejournal-backend/internal/services"
	"lovejournal-backend/internal/validate"

	"github.com/rs/zerolog/log"
)

const maxBodyBytes = 1 << 20

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// errorStatuses maps service sentinels to HTTP status codes
var errorStatuses = []struct {
	err    error
	status int
}{
	{services.ErrInvalidInput, http.StatusBadRequest},
	{services.ErrInvalidCredentials, http.StatusUnauthorized},
	{services.ErrInvalidToken, http.StatusUnauthorized},
	{services.ErrNoCouple, http.StatusForbidden},
	{services.ErrLetterLocked, http.StatusForbidden},
	{services.ErrNotFound, http.StatusNotFound},
	{services.ErrNoIdeas, http.StatusNotFound},
	{services.ErrEmailTaken, http.StatusConflict},
	{services.ErrDuplicateSubmission, http.StatusConflict},
	{services.ErrFileTooLarge, http.StatusRequestEntityTooLarge},
	{services.ErrUnsupportedMedia, http.StatusUnsupportedMediaType},
	{services.ErrStaleQuestion, http.StatusUnprocessableEntity},
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(ErrorResponse{Error: message})
}

// respondJSON sends v as a JSON response
func respondJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("Failed to encode response")
	}
}

// decodeJSON reads a request body of bounded size into v
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, "Invalid request body", http.StatusBadRequest)
		return false
	}
	return true
}

// classify returns the client-facing message and status for err. Unknown
// errors become a 500 with an empty message.
func classify(err error) (string, int) {
	var verr *validate.Error
	if errors.As(err, &verr) {
		return verr.Message, http.StatusBadRequest
	}
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.err.Error(), e.status
		}
	}
	return "", http.StatusInternalServerError
}

// handleError logs err and writes the mapped response. fallback is the
// message clients see for unexpected failures.
func handleError(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	message, status := classify(err)

	event := log.Warn()
	if status >= http.StatusInternalServerError {
		event = log.Error()
		message = fallback
	}
	if actor := middleware.GetActor(r.Context()); actor != nil {
		event = event.Str("user_id", actor.UserID).Str("couple_id", actor.CoupleID)
	}
	event.Err(err).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Msg(fallback)

	respondError(w, message, status)
}
