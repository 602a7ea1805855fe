package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// uniqueViolationCode is the PostgreSQL SQLSTATE for unique constraint
// violations.
const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a storage-level uniqueness
// rejection. The validation layer pre-checks uniqueness, but the constraint
// is the backstop when two concurrent writes race past the pre-check.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
