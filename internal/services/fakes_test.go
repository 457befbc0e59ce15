package services

import (
	"bytes"
	"context"
	"io"
	"sort"
	"sync"

	"lovejournal-backend/internal/models"
	"lovejournal-backend/internal/repository"
)

// Record IDs are UUIDs, as the schema stores them.
const (
	ourMemoryID    = "5b0f7c62-3d0a-4f3e-9d1b-6c2a8e4f7a11"
	theirMemoryID  = "9e4d2a18-7c3b-4b5f-8a6e-1f0c3d5b7e22"
	sealedLetterID = "c8a1f3e5-0b2d-4e6f-a7c9-2d4e6f8a0b33"
	auroraItemID   = "1d3f5a7c-9e0b-4c2d-b4f6-8a0c2e4f6a44"
)

// fakeUserStore is a map-backed UserStore
type fakeUserStore struct {
	mu    sync.RWMutex
	users map[string]*models.User
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	f := &fakeUserStore{users: make(map[string]*models.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == user.Email {
			return repository.ErrDuplicate
		}
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserStore) GetByID(_ context.Context, id string) (*models.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) GetInviter(_ context.Context, email string) (*models.User, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for _, u := range f.users {
		if u.PartnerEmail == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserStore) SetCoupleID(_ context.Context, userID, coupleID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[userID]
	if !ok {
		return repository.ErrNotFound
	}
	u.CoupleID = coupleID
	return nil
}

func (f *fakeUserStore) UpdateProfile(_ context.Context, user *models.User) (*models.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[user.ID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	u.AnniversaryDate = user.AnniversaryDate
	u.TogetherSince = user.TogetherSince
	u.MilestoneName = user.MilestoneName
	u.UpdatedAt = user.UpdatedAt
	cp := *u
	return &cp, nil
}

// fakeCoupleStore is a map-backed CoupleStore
type fakeCoupleStore struct {
	mu      sync.Mutex
	couples map[string]*models.Couple
}

func newFakeCoupleStore() *fakeCoupleStore {
	return &fakeCoupleStore{couples: make(map[string]*models.Couple)}
}

func (f *fakeCoupleStore) Create(_ context.Context, couple *models.Couple) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *couple
	f.couples[couple.ID] = &cp
	return nil
}

func (f *fakeCoupleStore) GetByID(_ context.Context, id string) (*models.Couple, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.couples[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCoupleStore) AddPartner(_ context.Context, coupleID, userID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.couples[coupleID]
	if !ok {
		return repository.ErrNotFound
	}
	if c.UserBID != nil {
		return repository.ErrCoupleFull
	}
	c.UserBID = &userID
	return nil
}

// fakeMemoryStore is a map-backed MemoryStore
type fakeMemoryStore struct {
	memories map[string]*models.Memory
}

func newFakeMemoryStore(memories ...*models.Memory) *fakeMemoryStore {
	f := &fakeMemoryStore{memories: make(map[string]*models.Memory)}
	for _, m := range memories {
		f.memories[m.ID] = m
	}
	return f
}

func (f *fakeMemoryStore) Create(_ context.Context, m *models.Memory) error {
	f.memories[m.ID] = m
	return nil
}

func (f *fakeMemoryStore) GetByID(_ context.Context, coupleID, id string) (*models.Memory, error) {
	m, ok := f.memories[id]
	if !ok || m.CoupleID != coupleID {
		return nil, repository.ErrNotFound
	}
	return m, nil
}

func (f *fakeMemoryStore) ListByCouple(_ context.Context, coupleID string) ([]*models.Memory, error) {
	out := []*models.Memory{}
	for _, m := range f.memories {
		if m.CoupleID == coupleID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

func (f *fakeMemoryStore) Delete(_ context.Context, coupleID, id string) error {
	m, ok := f.memories[id]
	if !ok || m.CoupleID != coupleID {
		return repository.ErrNotFound
	}
	delete(f.memories, id)
	return nil
}

// fakeJournalStore is a slice-backed JournalStore
type fakeJournalStore struct {
	journals []*models.Journal
}

func (f *fakeJournalStore) Create(_ context.Context, j *models.Journal) error {
	f.journals = append(f.journals, j)
	return nil
}

func (f *fakeJournalStore) ListByCouple(_ context.Context, coupleID string) ([]*models.Journal, error) {
	out := []*models.Journal{}
	for _, j := range f.journals {
		if j.CoupleID == coupleID {
			out = append(out, j)
		}
	}
	return out, nil
}

// fakeLetterStore is a map-backed LetterStore
type fakeLetterStore struct {
	letters map[string]*models.Letter
}

func newFakeLetterStore(letters ...*models.Letter) *fakeLetterStore {
	f := &fakeLetterStore{letters: make(map[string]*models.Letter)}
	for _, l := range letters {
		f.letters[l.ID] = l
	}
	return f
}

func (f *fakeLetterStore) Create(_ context.Context, l *models.Letter) error {
	f.letters[l.ID] = l
	return nil
}

func (f *fakeLetterStore) GetByID(_ context.Context, coupleID, id string) (*models.Letter, error) {
	l, ok := f.letters[id]
	if !ok || l.CoupleID != coupleID {
		return nil, repository.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (f *fakeLetterStore) ListByCouple(_ context.Context, coupleID string) ([]*models.Letter, error) {
	out := []*models.Letter{}
	for _, l := range f.letters {
		if l.CoupleID == coupleID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].OpenDate.Before(out[j].OpenDate) })
	return out, nil
}

func (f *fakeLetterStore) MarkOpened(_ context.Context, coupleID, id string) error {
	l, ok := f.letters[id]
	if !ok || l.CoupleID != coupleID {
		return repository.ErrNotFound
	}
	l.IsOpened = true
	return nil
}

// fakeLoveNoteStore is a slice-backed LoveNoteStore
type fakeLoveNoteStore struct {
	notes []*models.LoveNote
}

func (f *fakeLoveNoteStore) Create(_ context.Context, n *models.LoveNote) error {
	f.notes = append(f.notes, n)
	return nil
}

func (f *fakeLoveNoteStore) ListByCouple(_ context.Context, coupleID string) ([]*models.LoveNote, error) {
	out := []*models.LoveNote{}
	for _, n := range f.notes {
		if n.CoupleID == coupleID {
			out = append(out, n)
		}
	}
	return out, nil
}

// fakeReflectionStore is a slice-backed ReflectionStore
type fakeReflectionStore struct {
	reflections []*models.Reflection
}

func (f *fakeReflectionStore) Create(_ context.Context, r *models.Reflection) error {
	f.reflections = append(f.reflections, r)
	return nil
}

func (f *fakeReflectionStore) ListByCouple(_ context.Context, coupleID string) ([]*models.Reflection, error) {
	out := []*models.Reflection{}
	for _, r := range f.reflections {
		if r.CoupleID == coupleID {
			out = append(out, r)
		}
	}
	return out, nil
}

// fakeAnswerStore enforces the (couple, question, user) uniqueness the
// database constraint provides
type fakeAnswerStore struct {
	answers   []*models.QuestionAnswer
	createErr error
}

func (f *fakeAnswerStore) Create(_ context.Context, a *models.QuestionAnswer) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.answers {
		if existing.CoupleID == a.CoupleID && existing.QuestionID == a.QuestionID && existing.UserID == a.UserID {
			return repository.ErrDuplicate
		}
	}
	f.answers = append(f.answers, a)
	return nil
}

func (f *fakeAnswerStore) ListByQuestion(_ context.Context, coupleID, questionID string) ([]*models.QuestionAnswer, error) {
	out := []*models.QuestionAnswer{}
	for _, a := range f.answers {
		if a.CoupleID == coupleID && a.QuestionID == questionID {
			out = append(out, a)
		}
	}
	return out, nil
}

// fakeBucketStore is a map-backed BucketStore
type fakeBucketStore struct {
	items map[string]*models.BucketItem
}

func newFakeBucketStore(items ...*models.BucketItem) *fakeBucketStore {
	f := &fakeBucketStore{items: make(map[string]*models.BucketItem)}
	for _, b := range items {
		f.items[b.ID] = b
	}
	return f
}

func (f *fakeBucketStore) Create(_ context.Context, b *models.BucketItem) error {
	f.items[b.ID] = b
	return nil
}

func (f *fakeBucketStore) GetByID(_ context.Context, coupleID, id string) (*models.BucketItem, error) {
	b, ok := f.items[id]
	if !ok || b.CoupleID != coupleID {
		return nil, repository.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeBucketStore) ListByCouple(_ context.Context, coupleID string) ([]*models.BucketItem, error) {
	out := []*models.BucketItem{}
	for _, b := range f.items {
		if b.CoupleID == coupleID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBucketStore) UpdateCompletion(_ context.Context, b *models.BucketItem) error {
	if _, ok := f.items[b.ID]; !ok {
		return repository.ErrNotFound
	}
	cp := *b
	f.items[b.ID] = &cp
	return nil
}

// fakeDateIdeaStore keeps insertion order so spins are reproducible
type fakeDateIdeaStore struct {
	ideas []*models.DateIdea
}

func (f *fakeDateIdeaStore) Create(_ context.Context, d *models.DateIdea) error {
	f.ideas = append(f.ideas, d)
	return nil
}

func (f *fakeDateIdeaStore) ListByCouple(_ context.Context, coupleID string, unusedOnly bool) ([]*models.DateIdea, error) {
	out := []*models.DateIdea{}
	for _, d := range f.ideas {
		if d.CoupleID == coupleID && (!unusedOnly || !d.IsUsed) {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeDateIdeaStore) SetUsed(_ context.Context, coupleID, id string, used bool) (*models.DateIdea, error) {
	for _, d := range f.ideas {
		if d.ID == id && d.CoupleID == coupleID {
			d.IsUsed = used
			return d, nil
		}
	}
	return nil, repository.ErrNotFound
}

// fakePulseStore keys pulses by sender
type fakePulseStore struct {
	pulses map[string]*models.Pulse
}

func newFakePulseStore() *fakePulseStore {
	return &fakePulseStore{pulses: make(map[string]*models.Pulse)}
}

func (f *fakePulseStore) Upsert(_ context.Context, p *models.Pulse) (*models.Pulse, error) {
	key := p.CoupleID + "/" + p.FromUserID
	if existing, ok := f.pulses[key]; ok {
		existing.LastPulse = p.LastPulse
		return existing, nil
	}
	cp := *p
	f.pulses[key] = &cp
	return &cp, nil
}

func (f *fakePulseStore) LatestFromPartner(_ context.Context, coupleID, userID string) (*models.Pulse, error) {
	var latest *models.Pulse
	for _, p := range f.pulses {
		if p.CoupleID != coupleID || p.FromUserID == userID {
			continue
		}
		if latest == nil || p.LastPulse.After(latest.LastPulse) {
			latest = p
		}
	}
	if latest == nil {
		return nil, repository.ErrNotFound
	}
	return latest, nil
}

// fakeStorage records uploaded objects in memory
type fakeStorage struct {
	objects map[string][]byte
	putErr  error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: make(map[string][]byte)}
}

func (f *fakeStorage) Put(_ context.Context, key, _ string, body io.Reader, _ int64) (string, error) {
	if f.putErr != nil {
		return "", f.putErr
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, body); err != nil {
		return "", err
	}
	f.objects[key] = buf.Bytes()
	return "https://media.test/" + key, nil
}

// fastArgon2 keeps hashing cheap in tests
func fastArgon2() *Argon2 {
	return &Argon2{Memory: 1024, Iterations: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}
}
