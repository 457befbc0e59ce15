package handlers

import (
	"context"
	"net/http"

	"lovejournal-backend/internal/middleware"
	"lovejournal-backend/internal/models"
	"lovejournal-backend/internal/services"

	"github.com/go-chi/chi/v5"
)

// BucketListService is the bucket-list surface BucketListHandler needs
type BucketListService interface {
	List(ctx context.Context, actor *services.Actor) ([]*models.BucketItem, error)
	Create(ctx context.Context, actor *services.Actor, req services.CreateBucketItemRequest) (*models.BucketItem, error)
	Update(ctx context.Context, actor *services.Actor, id string, req services.UpdateBucketItemRequest) (*models.BucketItem, error)
}

// BucketListHandler handles bucket list HTTP requests
type BucketListHandler struct {
	bucketService BucketListService
}

// NewBucketListHandler creates a new bucket list handler
func NewBucketListHandler(bucketService BucketListService) *BucketListHandler {
	return &BucketListHandler{bucketService: bucketService}
}

// List handles GET /api/v1/bucket-list
func (h *BucketListHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.bucketService.List(r.Context(), middleware.GetActor(r.Context()))
	if err != nil {
		handleError(w, r, err, "Failed to fetch bucket list")
		return
	}
	respondJSON(w, http.StatusOK, items)
}

// Create handles POST /api/v1/bucket-list
func (h *BucketListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req services.CreateBucketItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.bucketService.Create(r.Context(), middleware.GetActor(r.Context()), req)
	if err != nil {
		handleError(w, r, err, "Failed to save bucket item")
		return
	}
	respondJSON(w, http.StatusCreated, item)
}

// Update handles PATCH /api/v1/bucket-list/{id}
func (h *BucketListHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req services.UpdateBucketItemRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	item, err := h.bucketService.Update(r.Context(), middleware.GetActor(r.Context()), chi.URLParam(r, "id"), req)
	if err != nil {
		handleError(w, r, err, "Failed to update bucket item")
		return
	}
	respondJSON(w, http.StatusOK, item)
}
