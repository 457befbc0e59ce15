package services

import (
	"context"
	"testing"
	"time"

	"lovejournal-backend/internal/calendar"
	"lovejournal-backend/internal/models"
	"lovejournal-backend/internal/validate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	alex = &Actor{UserID: "user-alex", CoupleID: "couple-1", Name: "Alex"}
	sam  = &Actor{UserID: "user-sam", CoupleID: "couple-1", Name: "Sam"}
	jo   = &Actor{UserID: "user-jo", CoupleID: "couple-2", Name: "Jo"}
)

func fixedClock(t time.Time) *calendar.FixedClock {
	return &calendar.FixedClock{T: t}
}

func TestMemoryService_CreateDefaultsAndEnums(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	svc := NewMemoryService(newFakeMemoryStore(), fixedClock(now))

	m, err := svc.Create(context.Background(), alex, CreateMemoryRequest{Title: "  Picnic  "})
	require.NoError(t, err)
	assert.Equal(t, "Picnic", m.Title)
	assert.Equal(t, now, m.Date)
	assert.Equal(t, models.DefaultMemoryCategory, m.Category)
	assert.Equal(t, models.DefaultMemoryMood, m.Mood)
	assert.Equal(t, "couple-1", m.CoupleID)

	_, err = svc.Create(context.Background(), alex, CreateMemoryRequest{Title: "x", Category: "party"})
	assert.ErrorIs(t, err, validate.ErrInvalidInput)

	_, err = svc.Create(context.Background(), alex, CreateMemoryRequest{Title: "   "})
	assert.ErrorIs(t, err, validate.ErrInvalidInput)
}

func TestMemoryService_DeleteScopedToCouple(t *testing.T) {
	store := newFakeMemoryStore(&models.Memory{ID: ourMemoryID, CoupleID: "couple-1", Title: "ours"})
	svc := NewMemoryService(store, fixedClock(time.Now()))

	err := svc.Delete(context.Background(), jo, ourMemoryID)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Delete(context.Background(), sam, ourMemoryID))
	memories, err := svc.List(context.Background(), alex)
	require.NoError(t, err)
	assert.Empty(t, memories)
}

func TestJournalService_Create(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)
	svc := NewJournalService(&fakeJournalStore{}, fixedClock(now))

	j, err := svc.Create(context.Background(), alex, CreateJournalRequest{Content: "a good day", Date: "2024-05-30"})
	require.NoError(t, err)
	assert.Equal(t, "Alex", j.AuthorName)
	assert.Equal(t, models.DefaultJournalMood, j.Mood)
	assert.Equal(t, time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC), j.Date)

	_, err = svc.Create(context.Background(), alex, CreateJournalRequest{Content: "x", Mood: "🙂"})
	assert.ErrorIs(t, err, validate.ErrInvalidInput)
}

func TestLetterService_CreateRequiresFutureOpenDate(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewLetterService(newFakeLetterStore(), fixedClock(now))

	tests := []struct {
		name     string
		openDate string
		wantErr  bool
	}{
		{name: "tomorrow", openDate: "2024-06-02", wantErr: false},
		{name: "exactly now", openDate: now.Format(time.RFC3339), wantErr: true},
		{name: "yesterday", openDate: "2024-05-31", wantErr: true},
		{name: "missing", openDate: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), alex, CreateLetterRequest{
				Title: "For you", Content: "hello", OpenDate: tt.openDate,
			})
			if tt.wantErr {
				assert.ErrorIs(t, err, validate.ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLetterService_ListAndOpen(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	clock := fixedClock(now)
	store := newFakeLetterStore(&models.Letter{
		ID: sealedLetterID, CoupleID: "couple-1", UserID: alex.UserID, Title: "Sealed",
		Content: "see you in a year", OpenDate: now.Add(48 * time.Hour), CreatedAt: now.Add(-time.Hour),
	})
	svc := NewLetterService(store, clock)

	views, err := svc.List(context.Background(), sam)
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Nil(t, views[0].Content)
	assert.True(t, views[0].IsLocked)

	_, err = svc.Open(context.Background(), sam, sealedLetterID)
	assert.ErrorIs(t, err, ErrLetterLocked)
	assert.False(t, store.letters[sealedLetterID].IsOpened)

	clock.T = now.Add(48 * time.Hour)
	view, err := svc.Open(context.Background(), sam, sealedLetterID)
	require.NoError(t, err)
	require.NotNil(t, view.Content)
	assert.Equal(t, "see you in a year", *view.Content)
	assert.True(t, view.IsOpened)
	assert.True(t, store.letters[sealedLetterID].IsOpened)

	_, err = svc.Open(context.Background(), jo, sealedLetterID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReflectionService_CreateAndList(t *testing.T) {
	now := time.Date(2024, 6, 1, 22, 0, 0, 0, time.UTC)
	clock := fixedClock(now)
	svc := NewReflectionService(&fakeReflectionStore{}, clock)

	view, err := svc.Create(context.Background(), alex, CreateReflectionRequest{
		WhatHurt: "tone", WhatLearned: "pause", DoDifferently: "ask first",
	})
	require.NoError(t, err)
	assert.Equal(t, now.Add(24*time.Hour), view.VisibleAfter)
	assert.Equal(t, defaultReflectionMood, view.Mood)
	assert.True(t, view.IsOwn)

	groups, err := svc.List(context.Background(), sam)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "2024-06-01", groups[0].Date)
	assert.Nil(t, groups[0].Reflections[0].WhatHurt)

	clock.T = now.Add(24 * time.Hour)
	groups, err = svc.List(context.Background(), sam)
	require.NoError(t, err)
	require.NotNil(t, groups[0].Reflections[0].WhatHurt)
	assert.Equal(t, "tone", *groups[0].Reflections[0].WhatHurt)

	_, err = svc.Create(context.Background(), alex, CreateReflectionRequest{WhatHurt: "x", WhatLearned: "y"})
	assert.ErrorIs(t, err, validate.ErrInvalidInput)
}

func TestReflectionService_ListEmpty(t *testing.T) {
	svc := NewReflectionService(&fakeReflectionStore{}, fixedClock(time.Now()))

	groups, err := svc.List(context.Background(), alex)
	require.NoError(t, err)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}

func TestLoveNoteService_Create(t *testing.T) {
	store := &fakeLoveNoteStore{}
	svc := NewLoveNoteService(store, fixedClock(time.Now()))

	note, err := svc.Create(context.Background(), sam, CreateLoveNoteRequest{Content: "thank you for breakfast"})
	require.NoError(t, err)
	assert.Equal(t, "Sam", note.AuthorName)

	notes, err := svc.List(context.Background(), alex)
	require.NoError(t, err)
	assert.Len(t, notes, 1)

	_, err = svc.Create(context.Background(), sam, CreateLoveNoteRequest{})
	assert.ErrorIs(t, err, validate.ErrInvalidInput)
}
