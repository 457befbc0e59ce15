package services

import (
	"context"
	"fmt"

	"lovejournal-backend/internal/models"
	"lovejournal-backend/internal/stats"
)

// RecordStores bundles the stores the stats-based services read from
type RecordStores struct {
	Users       UserStore
	Memories    MemoryStore
	Journals    JournalStore
	Letters     LetterStore
	LoveNotes   LoveNoteStore
	Reflections ReflectionStore
}

// load gathers every record of the caller's couple along with the caller's
// stored profile, which supplies togetherSince and the account creation date.
func (r RecordStores) load(ctx context.Context, actor *Actor) (stats.Input, *models.User, error) {
	var in stats.Input

	user, err := r.Users.GetByID(ctx, actor.UserID)
	if err != nil {
		return in, nil, fmt.Errorf("failed to get user: %w", err)
	}
	in.TogetherSince = user.TogetherSince
	in.AccountCreatedAt = user.CreatedAt

	if in.Memories, err = r.Memories.ListByCouple(ctx, actor.CoupleID); err != nil {
		return in, nil, fmt.Errorf("failed to get memories: %w", err)
	}
	if in.Journals, err = r.Journals.ListByCouple(ctx, actor.CoupleID); err != nil {
		return in, nil, fmt.Errorf("failed to get journals: %w", err)
	}
	if in.Letters, err = r.Letters.ListByCouple(ctx, actor.CoupleID); err != nil {
		return in, nil, fmt.Errorf("failed to get letters: %w", err)
	}
	if in.LoveNotes, err = r.LoveNotes.ListByCouple(ctx, actor.CoupleID); err != nil {
		return in, nil, fmt.Errorf("failed to get love notes: %w", err)
	}
	if in.Reflections, err = r.Reflections.ListByCouple(ctx, actor.CoupleID); err != nil {
		return in, nil, fmt.Errorf("failed to get reflections: %w", err)
	}
	return in, user, nil
}
