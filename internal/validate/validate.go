// Package validate sanitizes and checks user input before it reaches a
// service. Violations wrap ErrInvalidInput.
package validate

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// ErrInvalidInput marks every validation failure (400)
var ErrInvalidInput = errors.New("invalid input")

// Default maximum lengths per field, in runes
var MaxLengths = map[string]int{
	"title":         200,
	"content":       5000,
	"description":   2000,
	"name":          100,
	"email":         254,
	"password":      128,
	"mood":          10,
	"category":      20,
	"milestoneName": 100,
}

const defaultMaxLength = 1000

// Error describes one rejected field
type Error struct {
	Field   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// Unwrap lets errors.Is match ErrInvalidInput
func (e *Error) Unwrap() error {
	return ErrInvalidInput
}

// Errorf builds a field error
func Errorf(field, format string, args ...any) error {
	return &Error{Field: field, Message: fmt.Sprintf(format, args...)}
}

// MaxLength returns the configured limit for field
func MaxLength(field string) int {
	if n, ok := MaxLengths[field]; ok {
		return n
	}
	return defaultMaxLength
}

// Sanitize trims s, drops NUL bytes, normalizes it to NFC and truncates it
// to max runes.
func Sanitize(s string, max int) string {
	s = strings.ReplaceAll(s, "\x00", "")
	s = norm.NFC.String(strings.TrimSpace(s))
	if max > 0 && utf8.RuneCountInString(s) > max {
		s = string([]rune(s)[:max])
	}
	return s
}

// Field sanitizes a field using its default limit
func Field(field, value string) string {
	return Sanitize(value, MaxLength(field))
}

// Required sanitizes value and rejects it when empty
func Required(field, value string, max int) (string, error) {
	if max <= 0 {
		max = MaxLength(field)
	}
	v := Sanitize(value, max)
	if v == "" {
		return "", Errorf(field, "%s is required", field)
	}
	return v, nil
}

// Email normalizes and checks an email address
func Email(field, value string) (string, error) {
	v, err := Required(field, value, MaxLength("email"))
	if err != nil {
		return "", err
	}
	addr, err := mail.ParseAddress(v)
	if err != nil || addr.Address != v {
		return "", Errorf(field, "invalid email format")
	}
	return strings.ToLower(v), nil
}

// Password checks the length bounds of a password without altering it
func Password(value string) error {
	n := utf8.RuneCountInString(value)
	switch {
	case n == 0:
		return Errorf("password", "password is required")
	case n < 6:
		return Errorf("password", "password is too short")
	case n > MaxLength("password"):
		return Errorf("password", "password is too long")
	}
	return nil
}

// FutureTime requires t to be strictly after now
func FutureTime(field string, t, now time.Time) error {
	if !t.After(now) {
		return Errorf(field, "%s must be in the future", field)
	}
	return nil
}

// OneOf rejects values outside a closed set
func OneOf[T ~string](field string, value T, valid func(T) bool, fallback T) (T, error) {
	if value == "" {
		return fallback, nil
	}
	if !valid(value) {
		return "", Errorf(field, "invalid value for %s", field)
	}
	return value, nil
}

// Date parses an optional calendar date ("2006-01-02") or RFC 3339 instant.
// A bare date is placed at midnight in loc. Empty input yields nil.
func Date(field, value string, loc *time.Location) (*time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return nil, nil
	}
	if loc == nil {
		loc = time.Local
	}
	if t, err := time.ParseInLocation("2006-01-02", v, loc); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, Errorf(field, "invalid date for %s", field)
	}
	return &t, nil
}
