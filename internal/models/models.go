package models

import "time"

// User represents one partner of a couple
type User struct {
	ID              string     `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	PasswordHash    string     `json:"-"`
	PartnerEmail    string     `json:"partner_email"`
	Avatar          string     `json:"avatar"`
	CoupleID        string     `json:"couple_id"`
	AnniversaryDate *time.Time `json:"anniversary_date,omitempty"`
	TogetherSince   *time.Time `json:"together_since,omitempty"`
	MilestoneName   string     `json:"milestone_name"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// Couple links exactly two users. UserBID stays empty until the partner joins.
type Couple struct {
	ID        string    `json:"id"`
	UserAID   string    `json:"user_a_id"`
	UserBID   *string   `json:"user_b_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Memory is a dated moment in the couple's timeline
type Memory struct {
	ID          string         `json:"id"`
	CoupleID    string         `json:"couple_id"`
	UserID      string         `json:"user_id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Date        time.Time      `json:"date"`
	ImageURL    string         `json:"image_url"`
	AudioURL    string         `json:"audio_url"`
	Category    MemoryCategory `json:"category"`
	Mood        MemoryMood     `json:"mood"`
	CreatedAt   time.Time      `json:"created_at"`
}

// Journal is a shared diary entry
type Journal struct {
	ID         string      `json:"id"`
	CoupleID   string      `json:"couple_id"`
	UserID     string      `json:"user_id"`
	AuthorName string      `json:"author_name"`
	Content    string      `json:"content"`
	Date       time.Time   `json:"date"`
	Mood       JournalMood `json:"mood"`
	CreatedAt  time.Time   `json:"created_at"`
}

// Letter is a time capsule: sealed for the partner until OpenDate
type Letter struct {
	ID         string    `json:"id"`
	CoupleID   string    `json:"couple_id"`
	UserID     string    `json:"user_id"`
	AuthorName string    `json:"author_name"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	OpenDate   time.Time `json:"open_date"`
	IsOpened   bool      `json:"is_opened"`
	CreatedAt  time.Time `json:"created_at"`
}

// LoveNote is a short gratitude note
type LoveNote struct {
	ID         string    `json:"id"`
	CoupleID   string    `json:"couple_id"`
	UserID     string    `json:"user_id"`
	AuthorName string    `json:"author_name"`
	Content    string    `json:"content"`
	CreatedAt  time.Time `json:"created_at"`
}

// Reflection is one partner's answers in the post-conflict healing flow.
// VisibleAfter is fixed at creation to CreatedAt + 24h.
type Reflection struct {
	ID            string    `json:"id"`
	CoupleID      string    `json:"couple_id"`
	UserID        string    `json:"user_id"`
	AuthorName    string    `json:"author_name"`
	WhatHurt      string    `json:"what_hurt"`
	WhatLearned   string    `json:"what_learned"`
	DoDifferently string    `json:"do_differently"`
	Mood          string    `json:"mood"`
	VisibleAfter  time.Time `json:"visible_after"`
	CreatedAt     time.Time `json:"created_at"`
}

// QuestionAnswer is one partner's answer to a question of the day
type QuestionAnswer struct {
	ID           string    `json:"id"`
	CoupleID     string    `json:"couple_id"`
	UserID       string    `json:"user_id"`
	AuthorName   string    `json:"author_name"`
	QuestionID   string    `json:"question_id"`
	QuestionText string    `json:"question_text"`
	Answer       string    `json:"answer"`
	CreatedAt    time.Time `json:"created_at"`
}

// BucketItem is a shared dream, optionally linked to the memory that fulfilled it
type BucketItem struct {
	ID            string     `json:"id"`
	CoupleID      string     `json:"couple_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	IsCompleted   bool       `json:"is_completed"`
	CompletedDate *time.Time `json:"completed_date,omitempty"`
	MemoryID      *string    `json:"memory_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// DateIdea is an entry in the date-night spinner pool
type DateIdea struct {
	ID        string           `json:"id"`
	CoupleID  string           `json:"couple_id"`
	Title     string           `json:"title"`
	Category  DateIdeaCategory `json:"category"`
	AddedBy   string           `json:"added_by"`
	IsUsed    bool             `json:"is_used"`
	CreatedAt time.Time        `json:"created_at"`
}

// Pulse is the last "thinking of you" heartbeat sent by a user
type Pulse struct {
	ID         string    `json:"id"`
	CoupleID   string    `json:"couple_id"`
	FromUserID string    `json:"from_user_id"`
	LastPulse  time.Time `json:"last_pulse"`
}
