package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Postgres error code for unique_violation.
const uniqueViolation = "23505"

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record violates a uniqueness constraint")
)

// mapPgError translates driver-level errors into the package's sentinel
// errors so callers can match with errors.Is instead of inspecting codes.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrDuplicate
	}
	return err
}
