package repositories

import (
	"errors"
	"fmt"

	"cloud-dictionary-api/internal/models"
)

// ErrNotFound is returned when no record exists for a key
var ErrNotFound = models.ErrTermNotFound

// RepositoryError wraps a failure of the backing store with the operation context
type RepositoryError struct {
	Op    string // Operation that failed ("get", "search", "put")
	Table string // Table the operation ran against
	Key   string // Term key (if applicable)
	Err   error  // Underlying error
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%s %s operation failed for key %q: %v", e.Table, e.Op, e.Key, e.Err)
	}
	return fmt.Sprintf("%s %s operation failed: %v", e.Table, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a new repository error
func NewRepositoryError(op, table, key string, err error) *RepositoryError {
	return &RepositoryError{
		Op:    op,
		Table: table,
		Key:   key,
		Err:   err,
	}
}

// NotFoundError creates a "not found" repository error
func NotFoundError(table, key string) *RepositoryError {
	return NewRepositoryError("get", table, key, ErrNotFound)
}

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsUpstream reports whether err is a store failure rather than a miss
func IsUpstream(err error) bool {
	return err != nil && !IsNotFound(err)
}
