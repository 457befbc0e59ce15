package cmd

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"lovejournal-backend/internal/handlers"
	"lovejournal-backend/internal/services"

	"github.com/stretchr/testify/assert"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

type singleAuthenticator struct{}

func (singleAuthenticator) Authenticate(_ context.Context, token string) (*services.Actor, error) {
	if token == "solo" {
		return &services.Actor{UserID: "u1", Name: "Solo"}, nil
	}
	return nil, fmt.Errorf("%w: unknown", services.ErrInvalidToken)
}

func TestRouter(t *testing.T) {
	router := newRouter(&routeHandlers{health: handlers.NewHealthHandler(okPinger{})}, singleAuthenticator{})

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		status int
	}{
		{"health", http.MethodGet, "/healthz", "", http.StatusOK},
		{"preflight", http.MethodOptions, "/api/v1/memories", "", http.StatusNoContent},
		{"no token", http.MethodGet, "/api/v1/memories", "", http.StatusUnauthorized},
		{"bad token", http.MethodGet, "/api/v1/letters", "forged", http.StatusUnauthorized},
		{"no couple yet", http.MethodGet, "/api/v1/story", "solo", http.StatusForbidden},
		{"unknown route", http.MethodGet, "/api/v1/nope", "solo", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.token != "" {
				req.Header.Set("Authorization", "Bearer "+tt.token)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
