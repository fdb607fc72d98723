package store

import (
	"errors"

	"github.com/jackc/pgconn"
)

var (
	// ErrNotFound is returned when the targeted record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrEmptyValue is returned when a required field is missing or blank.
	ErrEmptyValue = errors.New("required value is empty")
)

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
