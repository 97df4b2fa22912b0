package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrInvalidKey is returned when a write is attempted without every primary key column set
	ErrInvalidKey = errors.New("invalid key")
	// ErrReferentialViolation is returned when a reference that is never backfilled points at a missing row
	ErrReferentialViolation = errors.New("referential violation")
	// ErrInconsistentState is returned when a uniqueness conflict cannot be explained by a same-key row
	ErrInconsistentState = errors.New("inconsistent state")
	// ErrNotFound is returned when a row looked up by key does not exist
	ErrNotFound = errors.New("not found")
)

// PostgreSQL error codes
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// isUniqueViolation reports whether err is a primary key or unique index conflict
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// isForeignKeyViolation reports whether err is a foreign key constraint failure
func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

// classifyWriteError maps storage failures to the store error taxonomy.
// Anything that is not a foreign key failure is returned unchanged.
func classifyWriteError(err error) error {
	if err == nil {
		return nil
	}
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%w: %w", ErrReferentialViolation, err)
	}
	return err
}
