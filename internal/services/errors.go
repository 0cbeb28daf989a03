// internal/services/errors.go
package services

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Domain error kinds. Raw persistence errors never cross the service
// boundary; every failure is re-signaled as one of these.
var (
	ErrNotFound       = errors.New("apartment not found")
	ErrSlugExists     = errors.New("apartment slug already exists")
	ErrDuplicateEntry = errors.New("apartment already exists")
	ErrCreateFailed   = errors.New("failed to create apartment")
	ErrUpdateFailed   = errors.New("failed to update apartment")
	ErrDeleteFailed   = errors.New("failed to delete apartment")
)

const pgUniqueViolation = "23505"

// uniqueViolation reports whether err is a uniqueness-constraint violation,
// returning text that identifies the violated constraint.
func uniqueViolation(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == pgUniqueViolation {
			return pgErr.ConstraintName, true
		}
		return "", false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return err.Error(), true
	}
	// Driver-agnostic fallback; SQLite phrases the violation differently.
	msg := err.Error()
	if strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "UNIQUE constraint failed") {
		return msg, true
	}
	return "", false
}

// classifyWriteError maps a persistence error from a write path onto a
// domain kind: slug-constraint violations and other unique violations become
// the two conflict kinds, anything else becomes the given generic failure.
func classifyWriteError(err error, fallback error) error {
	if constraint, ok := uniqueViolation(err); ok {
		if strings.Contains(strings.ToLower(constraint), "slug") {
			return ErrSlugExists
		}
		return ErrDuplicateEntry
	}
	return fallback
}
