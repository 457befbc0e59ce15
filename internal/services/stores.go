package services

import (
	"context"

	"lovejournal-backend/internal/models"

	"github.com/google/uuid"
)

// The services depend on these narrow store contracts. The pgx repositories
// satisfy them in production; tests use map-backed fakes.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetInviter(ctx context.Context, email string) (*models.User, error)
	SetCoupleID(ctx context.Context, userID, coupleID string) error
	UpdateProfile(ctx context.Context, user *models.User) (*models.User, error)
}

type CoupleStore interface {
	Create(ctx context.Context, couple *models.Couple) error
	GetByID(ctx context.Context, id string) (*models.Couple, error)
	AddPartner(ctx context.Context, coupleID, userID string) error
}

type MemoryStore interface {
	Create(ctx context.Context, m *models.Memory) error
	GetByID(ctx context.Context, coupleID, id string) (*models.Memory, error)
	ListByCouple(ctx context.Context, coupleID string) ([]*models.Memory, error)
	Delete(ctx context.Context, coupleID, id string) error
}

type JournalStore interface {
	Create(ctx context.Context, j *models.Journal) error
	ListByCouple(ctx context.Context, coupleID string) ([]*models.Journal, error)
}

type LetterStore interface {
	Create(ctx context.Context, l *models.Letter) error
	GetByID(ctx context.Context, coupleID, id string) (*models.Letter, error)
	ListByCouple(ctx context.Context, coupleID string) ([]*models.Letter, error)
	MarkOpened(ctx context.Context, coupleID, id string) error
}

type LoveNoteStore interface {
	Create(ctx context.Context, n *models.LoveNote) error
	ListByCouple(ctx context.Context, coupleID string) ([]*models.LoveNote, error)
}

type ReflectionStore interface {
	Create(ctx context.Context, r *models.Reflection) error
	ListByCouple(ctx context.Context, coupleID string) ([]*models.Reflection, error)
}

type AnswerStore interface {
	Create(ctx context.Context, a *models.QuestionAnswer) error
	ListByQuestion(ctx context.Context, coupleID, questionID string) ([]*models.QuestionAnswer, error)
}

type BucketStore interface {
	Create(ctx context.Context, b *models.BucketItem) error
	GetByID(ctx context.Context, coupleID, id string) (*models.BucketItem, error)
	ListByCouple(ctx context.Context, coupleID string) ([]*models.BucketItem, error)
	UpdateCompletion(ctx context.Context, b *models.BucketItem) error
}

type DateIdeaStore interface {
	Create(ctx context.Context, d *models.DateIdea) error
	ListByCouple(ctx context.Context, coupleID string, unusedOnly bool) ([]*models.DateIdea, error)
	SetUsed(ctx context.Context, coupleID, id string, used bool) (*models.DateIdea, error)
}

type PulseStore interface {
	Upsert(ctx context.Context, p *models.Pulse) (*models.Pulse, error)
	LatestFromPartner(ctx context.Context, coupleID, userID string) (*models.Pulse, error)
}

// Actor is the authenticated caller of a couple-scoped operation
type Actor struct {
	UserID   string
	CoupleID string
	Name     string
}

// checkRecordID rejects an id that cannot name a stored record. Records are
// keyed by UUID, so anything else is reported as not found.
func checkRecordID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	return nil
}
