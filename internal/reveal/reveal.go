// Package reveal decides when time-delayed content may be shown to a viewer.
//
// Every function is pure: the caller supplies the records, the viewer and the
// evaluation instant. The author of a record can always see it; the partner
// sees it once its gating condition holds.
package reveal

import (
	"sort"
	"time"

	"lovejournal-backend/internal/calendar"
	"lovejournal-backend/internal/models"
)

// ReflectionDelay is how long a reflection stays hidden from the partner.
const ReflectionDelay = 24 * time.Hour

// ReflectionVisibleAfter returns the reveal instant for a reflection created
// at createdAt. It is computed once and stored; it is never recomputed.
func ReflectionVisibleAfter(createdAt time.Time) time.Time {
	return createdAt.Add(ReflectionDelay)
}

// CanRevealReflection reports whether viewerID may read r's content at now.
// The boundary now == VisibleAfter is inclusive.
func CanRevealReflection(r *models.Reflection, viewerID string, now time.Time) bool {
	return viewerID == r.UserID || !now.Before(r.VisibleAfter)
}

// CanRevealLetter reports whether viewerID may read l's content at now.
// An OpenDate at or before CreatedAt simply means the letter is already open.
func CanRevealLetter(l *models.Letter, viewerID string, now time.Time) bool {
	return viewerID == l.UserID || !now.Before(l.OpenDate)
}

// LetterView is a letter as seen by one viewer
type LetterView struct {
	models.Letter
	Content  *string `json:"content"`
	IsOwn    bool    `json:"is_own"`
	IsLocked bool    `json:"is_locked"`
}

// RedactLetter hides the content of a sealed letter from the partner. The
// title and open date stay visible so the capsule can be shown as locked.
func RedactLetter(l *models.Letter, viewerID string, now time.Time) LetterView {
	view := LetterView{
		Letter:   *l,
		IsOwn:    l.UserID == viewerID,
		IsLocked: now.Before(l.OpenDate),
	}
	if CanRevealLetter(l, viewerID, now) {
		content := l.Content
		view.Content = &content
	}
	return view
}

// ReflectionView is a reflection as seen by one viewer. The answer fields are
// nil while the reflection is hidden from that viewer.
type ReflectionView struct {
	ID            string    `json:"id"`
	CoupleID      string    `json:"couple_id"`
	UserID        string    `json:"user_id"`
	AuthorName    string    `json:"author_name"`
	Mood          string    `json:"mood"`
	WhatHurt      *string   `json:"what_hurt"`
	WhatLearned   *string   `json:"what_learned"`
	DoDifferently *string   `json:"do_differently"`
	VisibleAfter  time.Time `json:"visible_after"`
	CreatedAt     time.Time `json:"created_at"`
	IsOwn         bool      `json:"is_own"`
	IsRevealed    bool      `json:"is_revealed"`
}

// RedactReflection applies the gate to a single reflection.
func RedactReflection(r *models.Reflection, viewerID string, now time.Time) ReflectionView {
	view := ReflectionView{
		ID:           r.ID,
		CoupleID:     r.CoupleID,
		UserID:       r.UserID,
		AuthorName:   r.AuthorName,
		Mood:         r.Mood,
		VisibleAfter: r.VisibleAfter,
		CreatedAt:    r.CreatedAt,
		IsOwn:        r.UserID == viewerID,
		IsRevealed:   !now.Before(r.VisibleAfter),
	}
	if CanRevealReflection(r, viewerID, now) {
		hurt, learned, different := r.WhatHurt, r.WhatLearned, r.DoDifferently
		view.WhatHurt = &hurt
		view.WhatLearned = &learned
		view.DoDifferently = &different
	}
	return view
}

// ReflectionGroup is every reflection written on one calendar day, which is
// treated as one "fight event".
type ReflectionGroup struct {
	Date        string           `json:"date"`
	Reflections []ReflectionView `json:"reflections"`
}

// GroupReflectionsByDay buckets reflections by the calendar date of their
// CreatedAt in now's location. Two reflections a minute apart across midnight
// land in different buckets. Groups are ordered newest day first; within a
// group, reflections keep newest-first order.
func GroupReflectionsByDay(reflections []*models.Reflection, viewerID string, now time.Time) []ReflectionGroup {
	sorted := make([]*models.Reflection, len(reflections))
	copy(sorted, reflections)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	var groups []ReflectionGroup
	index := make(map[string]int)
	for _, r := range sorted {
		key := calendar.Key(r.CreatedAt, now.Location())
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, ReflectionGroup{Date: key})
		}
		groups[i].Reflections = append(groups[i].Reflections, RedactReflection(r, viewerID, now))
	}
	return groups
}

// AnswerPair is the viewer's state for one question of the day.
type AnswerPair struct {
	MyAnswer        *models.QuestionAnswer `json:"my_answer"`
	PartnerAnswered bool                   `json:"partner_answered"`
	PartnerAnswer   *models.QuestionAnswer `json:"partner_answer"`
	BothAnswered    bool                   `json:"both_answered"`
}

// PairAnswers splits the answers recorded for one (couple, question) between
// the viewer and the partner. The partner's answer is disclosed only once both
// have answered; before that only the fact that the partner answered leaks.
func PairAnswers(answers []*models.QuestionAnswer, viewerID string) AnswerPair {
	var pair AnswerPair
	var partner *models.QuestionAnswer
	for _, a := range answers {
		if a.UserID == viewerID {
			if pair.MyAnswer == nil {
				pair.MyAnswer = a
			}
			continue
		}
		if partner == nil {
			partner = a
		}
	}

	pair.PartnerAnswered = partner != nil
	pair.BothAnswered = pair.MyAnswer != nil && partner != nil
	if pair.BothAnswered {
		pair.PartnerAnswer = partner
	}
	return pair
}
