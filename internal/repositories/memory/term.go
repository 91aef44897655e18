// Package memory provides an in-process term table, used by tests and by the
// local server when no persistent store is configured.
package memory

import (
	"context"
	"sync"

	"cloud-dictionary-api/internal/models"
	"cloud-dictionary-api/internal/repositories"
)

// TermRepository keeps records in insertion order, which stands in for the
// native scan order of a real table
type TermRepository struct {
	mu    sync.RWMutex
	order []string
	terms map[string]models.Term
	err   error
	calls map[string]int
}

// NewTermRepository creates a repository seeded with the given records
func NewTermRepository(seed ...models.Term) *TermRepository {
	r := &TermRepository{
		terms: make(map[string]models.Term),
		calls: make(map[string]int),
	}
	for _, t := range seed {
		r.put(t)
	}
	return r
}

// FailWith makes every subsequent read fail with err; nil restores normal behavior
func (r *TermRepository) FailWith(err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.err = err
}

// Calls returns how many times the named operation ("get", "search") ran
func (r *TermRepository) Calls(op string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.calls[op]
}

// Get implements repositories.TermRepository
func (r *TermRepository) Get(ctx context.Context, term string) (*models.Term, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls["get"]++

	if err := ctx.Err(); err != nil {
		return nil, repositories.NewRepositoryError("get", repositories.DefaultTableName, term, err)
	}
	if r.err != nil {
		return nil, repositories.NewRepositoryError("get", repositories.DefaultTableName, term, r.err)
	}

	t, ok := r.terms[term]
	if !ok {
		return nil, repositories.NotFoundError(repositories.DefaultTableName, term)
	}
	copied := copyTerm(t)
	return &copied, nil
}

// Search implements repositories.TermRepository
func (r *TermRepository) Search(ctx context.Context, q models.SearchQuery) ([]models.Term, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls["search"]++

	if err := ctx.Err(); err != nil {
		return nil, repositories.NewRepositoryError("search", repositories.DefaultTableName, "", err)
	}
	if r.err != nil {
		return nil, repositories.NewRepositoryError("search", repositories.DefaultTableName, "", r.err)
	}

	matched := make([]models.Term, 0)
	for _, key := range r.order {
		t := r.terms[key]
		if q.Matches(t) {
			matched = append(matched, copyTerm(t))
		}
	}
	return matched, nil
}

// PutTerms implements repositories.TermWriter
func (r *TermRepository) PutTerms(ctx context.Context, terms []models.Term) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range terms {
		r.put(t)
	}
	return len(terms), nil
}

// Close implements repositories.TermRepository
func (r *TermRepository) Close() error {
	return nil
}

func (r *TermRepository) put(t models.Term) {
	if _, exists := r.terms[t.Term]; !exists {
		r.order = append(r.order, t.Term)
	}
	r.terms[t.Term] = copyTerm(t)
}

func copyTerm(t models.Term) models.Term {
	if t.Attributes == nil {
		return t
	}
	attrs := make(map[string]any, len(t.Attributes))
	for k, v := range t.Attributes {
		attrs[k] = v
	}
	t.Attributes = attrs
	return t
}
