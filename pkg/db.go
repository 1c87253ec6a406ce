package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// IsUniqueViolationError checks if the error is a unique violation error
func IsUniqueViolationError(err error) bool {
	return pgErrorCode(err) == pgUniqueViolation
}

// IsForeignKeyViolationError checks if the error is a foreign key violation error
func IsForeignKeyViolationError(err error) bool {
	return pgErrorCode(err) == pgForeignKeyViolation
}

func IsCheckViolationError(err error) bool {
	return pgErrorCode(err) == pgCheckViolation
}

func IsNoRowsError(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
