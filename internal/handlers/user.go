package handlers

import (
	"context"
	"net/http"

	"lovejournal-backend/internal/middleware"
	"lovejournal-backend/internal/models"
	"lovejournal-backend/internal/services"

	"github.com/rs/zerolog/log"
)

// AccountService is the account surface UserHandler needs
type AccountService interface {
	Register(ctx context.Context, req services.RegisterRequest) (*services.AuthResponse, error)
	Login(ctx context.Context, req services.LoginRequest) (*services.AuthResponse, error)
	GetProfile(ctx context.Context, userID string) (*services.Profile, error)
	UpdateProfile(ctx context.Context, userID string, req services.UpdateProfileRequest) (*models.User, error)
}

// UserHandler handles account-related HTTP requests
type UserHandler struct {
	userService AccountService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService AccountService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Register handles POST /api/v1/auth/register
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req services.RegisterRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.userService.Register(r.Context(), req)
	if err != nil {
		handleError(w, r, err, "Failed to create user")
		return
	}

	log.Info().
		Str("user_id", res.User.ID).
		Str("couple_id", res.User.CoupleID).
		Msg("User registered")

	respondJSON(w, http.StatusCreated, res)
}

// Login handles POST /api/v1/auth/login
func (h *UserHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req services.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.userService.Login(r.Context(), req)
	if err != nil {
		handleError(w, r, err, "Failed to sign in")
		return
	}

	respondJSON(w, http.StatusOK, res)
}

// GetMe handles GET /api/v1/me
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r.Context())

	profile, err := h.userService.GetProfile(r.Context(), actor.UserID)
	if err != nil {
		handleError(w, r, err, "Failed to get profile")
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// UpdateMe handles PATCH /api/v1/me
func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	actor := middleware.GetActor(r.Context())

	var req services.UpdateProfileRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	user, err := h.userService.UpdateProfile(r.Context(), actor.UserID, req)
	if err != nil {
		handleError(w, r, err, "Failed to update profile")
		return
	}

	log.Info().Str("user_id", actor.UserID).Msg("Profile updated")
	respondJSON(w, http.StatusOK, user)
}
