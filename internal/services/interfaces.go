package services

import (
	"context"

	"cloud-dictionary-api/internal/models"
)

// TermService defines the read operations behind the dictionary API
type TermService interface {
	// LookupTerm returns the record stored under term, or an error matching
	// models.ErrTermNotFound when there is none
	LookupTerm(ctx context.Context, term string) (*models.Term, error)

	// SearchTerms returns every record whose term or definition contains the
	// lowercased query. An empty query returns the whole table.
	SearchTerms(ctx context.Context, query string) ([]models.Term, error)
}
