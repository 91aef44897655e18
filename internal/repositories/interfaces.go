package repositories

import (
	"context"

	"cloud-dictionary-api/internal/models"
)

// DefaultTableName is the name of the term table in every backend
const DefaultTableName = "CloudTerms"

// TermRepository is the read-only view of the term table used by the API.
// Implementations issue exactly one logical store access per call and hold
// no per-request state.
type TermRepository interface {
	// Get performs a point read by the full primary key.
	// It returns ErrNotFound when no record exists for term.
	Get(ctx context.Context, term string) (*models.Term, error)

	// Search scans the whole table and returns the records matching q in the
	// store's native scan order. No match yields an empty, non-nil slice.
	Search(ctx context.Context, q models.SearchQuery) ([]models.Term, error)

	// Close releases any resources held by the backend
	Close() error
}

// TermWriter loads records into a table. It is used by offline tooling only;
// the request handlers never write.
type TermWriter interface {
	// PutTerms inserts or replaces the given records and returns how many were written
	PutTerms(ctx context.Context, terms []models.Term) (int, error)
}

// TermStore combines read and write access for backends that support both
type TermStore interface {
	TermRepository
	TermWriter
}
