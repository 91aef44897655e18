package services

import (
	"context"
	"time"

	"cloud-dictionary-api/internal/metrics"
	"cloud-dictionary-api/internal/models"
	"cloud-dictionary-api/internal/repositories"
)

// termService implements TermService over a single repository.
// Every call re-reads the store; nothing is cached between requests.
type termService struct {
	repo      repositories.TermRepository
	matchMode models.MatchMode
	metrics   *metrics.Recorder
}

// NewTermService creates a new term service
func NewTermService(repo repositories.TermRepository, matchMode models.MatchMode, recorder *metrics.Recorder) TermService {
	if matchMode == "" {
		matchMode = models.MatchFolded
	}
	return &termService{
		repo:      repo,
		matchMode: matchMode,
		metrics:   recorder,
	}
}

// LookupTerm performs one point read
func (s *termService) LookupTerm(ctx context.Context, term string) (*models.Term, error) {
	start := time.Now()
	record, err := s.repo.Get(ctx, term)

	switch {
	case repositories.IsNotFound(err):
		s.metrics.ObserveLookup(metrics.OutcomeMiss, time.Since(start))
	case repositories.IsUpstream(err):
		s.metrics.ObserveLookup(metrics.OutcomeError, time.Since(start))
	default:
		s.metrics.ObserveLookup(metrics.OutcomeHit, time.Since(start))
	}

	if err != nil {
		return nil, err
	}
	return record, nil
}

// SearchTerms performs one full scan filtered by the lowercased query
func (s *termService) SearchTerms(ctx context.Context, query string) ([]models.Term, error) {
	start := time.Now()
	terms, err := s.repo.Search(ctx, models.NewSearchQuery(query, s.matchMode))
	if err != nil {
		s.metrics.ObserveSearch(metrics.OutcomeError, 0, time.Since(start))
		return nil, err
	}

	outcome := metrics.OutcomeHit
	if len(terms) == 0 {
		outcome = metrics.OutcomeMiss
	}
	s.metrics.ObserveSearch(outcome, len(terms), time.Since(start))

	if terms == nil {
		terms = []models.Term{}
	}
	return terms, nil
}
