package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrNotFound   = errors.New("record not found")
	ErrDuplicate  = errors.New("record already exists")
	ErrCoupleFull = errors.New("couple already has two partners")
)

const uniqueViolation = "23505"

// rowScanner is satisfied by pgx.Row and pgx.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// notFound maps pgx.ErrNoRows onto ErrNotFound, leaving other errors alone
func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// rowTo adapts a single-row scan function for pgx.CollectRows
func rowTo[T any](scan func(rowScanner) (*T, error)) pgx.RowToFunc[*T] {
	return func(row pgx.CollectableRow) (*T, error) {
		return scan(row)
	}
}
