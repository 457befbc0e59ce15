package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"lovejournal-backend/internal/services"

	"github.com/rs/zerolog/log"
)

type contextKey string

const actorKey contextKey = "actor"

// Authenticator resolves a bearer token to the calling user
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*services.Actor, error)
}

// AuthMiddleware creates a middleware for JWT authentication
func AuthMiddleware(auth Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				respondError(w, "Authorization header required", http.StatusUnauthorized)
				return
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				respondError(w, "Invalid authorization header format", http.StatusUnauthorized)
				return
			}

			actor, err := auth.Authenticate(r.Context(), parts[1])
			if err != nil {
				if errors.Is(err, services.ErrInvalidToken) {
					respondError(w, "Invalid token", http.StatusUnauthorized)
					return
				}
				log.Error().Err(err).Msg("Failed to authenticate request")
				respondError(w, "Failed to authenticate", http.StatusInternalServerError)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

// RequireCouple rejects authenticated users who do not belong to a couple
func RequireCouple(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor := GetActor(r.Context())
		if actor == nil {
			respondError(w, "Unauthorized", http.StatusUnauthorized)
			return
		}
		if actor.CoupleID == "" {
			respondError(w, services.ErrNoCouple.Error(), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GetActor extracts the authenticated caller from context
func GetActor(ctx context.Context) *services.Actor {
	actor, ok := ctx.Value(actorKey).(*services.Actor)
	if !ok {
		return nil
	}
	return actor
}

// WithActor stores actor in ctx
func WithActor(ctx context.Context, actor *services.Actor) context.Context {
	return context.WithValue(ctx, actorKey, actor)
}

// respondError sends an error response
func respondError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
