package repository

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/mattn/go-sqlite3"
)

// Error taxonomy shared by all repositories. Expected conditions are wrapped
// around these sentinels so callers can pick behavior with errors.Is; raw
// driver errors never escape for conditions a caller can act on.
var (
	// ErrNotFound marks a lookup that matched no row, or a referential
	// precondition (e.g. tagging a question that does not exist).
	ErrNotFound = errors.New("not found")
	// ErrConflict marks a uniqueness or integrity violation the caller may
	// retry with different input.
	ErrConflict = errors.New("conflict")
	// ErrInvalidArgument marks a malformed call (e.g. empty identifier).
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnavailable marks infrastructure failure: connectivity loss, or an
	// exhausted pool past the bounded per-operation wait. Details are logged,
	// not surfaced.
	ErrUnavailable = errors.New("storage unavailable")
)

// Per-operation deadlines. These also bound the wait for a free pooled
// connection, so an exhausted pool fails instead of blocking forever.
const (
	opTimeout   = 3 * time.Second
	listTimeout = 5 * time.Second
)

// isUniqueViolation detects a SQLite UNIQUE or PRIMARY KEY constraint violation.
func isUniqueViolation(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintUnique ||
			se.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// isForeignKeyViolation detects a SQLite FOREIGN KEY constraint violation.
func isForeignKeyViolation(err error) bool {
	var se sqlite3.Error
	if errors.As(err, &se) {
		return se.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}
	return false
}

// infra logs an unexpected storage error with operation context and
// translates it to ErrUnavailable.
func infra(op string, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		log.Printf("%s: timed out waiting for storage: %v", op, err)
	} else {
		log.Printf("%s: %v", op, err)
	}
	return fmt.Errorf("%s: %w", op, ErrUnavailable)
}
