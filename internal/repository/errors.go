package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// IsDuplicate - reports a unique constraint violation. The dispatch schema
// leans on these for the single-active-broadcast-per-order and
// one-offer-per-courier guarantees.
func IsDuplicate(err error) bool {
	var pgerr *pgconn.PgError
	return errors.As(err, &pgerr) && pgerr.Code == "23505"
}

// IsNotFound - reports an empty single-row read.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
