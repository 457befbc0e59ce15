package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lovejournal-backend/internal/calendar"
	"lovejournal-backend/internal/models"
	"lovejournal-backend/internal/services"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// invalidUUID is what Postgres reports when a non-UUID reaches a uuid column.
// The stores below return it for every call, so a request that reaches
// storage with a malformed id surfaces as a 500.
var invalidUUID = &pgconn.PgError{Code: "22P02", Message: `invalid input syntax for type uuid: "abc"`}

type uuidMemoryStore struct{}

func (uuidMemoryStore) Create(context.Context, *models.Memory) error { return invalidUUID }
func (uuidMemoryStore) GetByID(context.Context, string, string) (*models.Memory, error) {
	return nil, invalidUUID
}
func (uuidMemoryStore) ListByCouple(context.Context, string) ([]*models.Memory, error) {
	return nil, invalidUUID
}
func (uuidMemoryStore) Delete(context.Context, string, string) error { return invalidUUID }

type uuidLetterStore struct{}

func (uuidLetterStore) Create(context.Context, *models.Letter) error { return invalidUUID }
func (uuidLetterStore) GetByID(context.Context, string, string) (*models.Letter, error) {
	return nil, invalidUUID
}
func (uuidLetterStore) ListByCouple(context.Context, string) ([]*models.Letter, error) {
	return nil, invalidUUID
}
func (uuidLetterStore) MarkOpened(context.Context, string, string) error { return invalidUUID }

type uuidBucketStore struct{}

func (uuidBucketStore) Create(context.Context, *models.BucketItem) error { return invalidUUID }
func (uuidBucketStore) GetByID(context.Context, string, string) (*models.BucketItem, error) {
	return nil, invalidUUID
}
func (uuidBucketStore) ListByCouple(context.Context, string) ([]*models.BucketItem, error) {
	return nil, invalidUUID
}
func (uuidBucketStore) UpdateCompletion(context.Context, *models.BucketItem) error {
	return invalidUUID
}

type uuidDateIdeaStore struct{}

func (uuidDateIdeaStore) Create(context.Context, *models.DateIdea) error { return invalidUUID }
func (uuidDateIdeaStore) ListByCouple(context.Context, string, bool) ([]*models.DateIdea, error) {
	return nil, invalidUUID
}
func (uuidDateIdeaStore) SetUsed(context.Context, string, string, bool) (*models.DateIdea, error) {
	return nil, invalidUUID
}

func TestMalformedPathIDIsNotFound(t *testing.T) {
	clock := calendar.FixedClock{T: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}

	memories := NewMemoryHandler(services.NewMemoryService(uuidMemoryStore{}, clock))
	letters := NewLetterHandler(services.NewLetterService(uuidLetterStore{}, clock))
	bucket := NewBucketListHandler(services.NewBucketListService(uuidBucketStore{}, uuidMemoryStore{}, clock))
	ideas := NewDateIdeaHandler(services.NewDateIdeaService(uuidDateIdeaStore{}, clock, nil))

	tests := []struct {
		name    string
		method  string
		pattern string
		target  string
		body    string
		handler http.HandlerFunc
	}{
		{"delete memory", http.MethodDelete, "/memories/{id}", "/memories/abc", "", memories.Delete},
		{"open letter", http.MethodPost, "/letters/{id}/open", "/letters/abc/open", "", letters.Open},
		{"update bucket item", http.MethodPatch, "/bucket-list/{id}", "/bucket-list/abc", `{"is_completed":true}`, bucket.Update},
		{"update date idea", http.MethodPatch, "/date-ideas/{id}", "/date-ideas/abc", `{"is_used":true}`, ideas.Update},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body == "" {
				req = httptest.NewRequest(tt.method, tt.target, nil)
			} else {
				req = jsonRequest(tt.method, tt.target, tt.body)
			}

			rec := serve(tt.method, tt.pattern, tt.handler, req)
			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Equal(t, services.ErrNotFound.Error(), errorMessage(t, rec))
		})
	}
}

type linkableBucketStore struct {
	uuidBucketStore
	item *models.BucketItem
}

func (s linkableBucketStore) GetByID(context.Context, string, string) (*models.BucketItem, error) {
	cp := *s.item
	return &cp, nil
}

func TestMalformedMemoryLinkIsBadRequest(t *testing.T) {
	clock := calendar.FixedClock{T: time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)}
	item := &models.BucketItem{ID: "1d3f5a7c-9e0b-4c2d-b4f6-8a0c2e4f6a44", CoupleID: alex.CoupleID, Title: "See the aurora"}
	h := NewBucketListHandler(services.NewBucketListService(linkableBucketStore{item: item}, uuidMemoryStore{}, clock))

	rec := serve(http.MethodPatch, "/bucket-list/{id}", h.Update,
		jsonRequest(http.MethodPatch, "/bucket-list/"+item.ID, `{"is_completed":true,"memory_id":"abc"}`))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "memory_id is not a valid id", errorMessage(t, rec))
}
