package services

import (
	"errors"

	"lovejournal-backend/internal/repository"
	"lovejournal-backend/internal/validate"
)

var (
	// 400
	ErrInvalidInput = validate.ErrInvalidInput

	// 401
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")

	// 403
	ErrNoCouple     = errors.New("user is not part of a couple")
	ErrLetterLocked = errors.New("letter is still sealed")

	// 404
	ErrNotFound = repository.ErrNotFound
	ErrNoIdeas  = errors.New("no unused date ideas left")

	// 409
	ErrEmailTaken          = errors.New("user already exists with this email")
	ErrDuplicateSubmission = errors.New("already answered today's question")

	// 413
	ErrFileTooLarge = errors.New("file exceeds the upload limit")

	// 415
	ErrUnsupportedMedia = errors.New("file type not allowed")

	// 422
	ErrStaleQuestion = errors.New("question is not today's question")
)
