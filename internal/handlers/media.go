package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"lovejournal-backend/internal/middleware"
	"lovejournal-backend/internal/services"
)

const multipartOverhead = 1 << 20

// MediaService is the upload surface MediaHandler needs
type MediaService interface {
	Upload(ctx context.Context, actor *services.Actor, contentType string, size int64, body io.Reader) (*services.Upload, error)
}

// MediaHandler handles memory photo and voice note uploads
type MediaHandler struct {
	mediaService MediaService
}

// NewMediaHandler creates a new media handler
func NewMediaHandler(mediaService MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

// Upload handles POST /api/v1/uploads (multipart form, field "file")
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, services.MaxUploadSize+multipartOverhead)

	file, header, err := r.FormFile("file")
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			handleError(w, r, services.ErrFileTooLarge, "Upload too large")
			return
		}
		respondError(w, "file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	upload, err := h.mediaService.Upload(r.Context(), middleware.GetActor(r.Context()),
		header.Header.Get("Content-Type"), header.Size, file)
	if err != nil {
		handleError(w, r, err, "Failed to upload file")
		return
	}
	respondJSON(w, http.StatusCreated, upload)
}
