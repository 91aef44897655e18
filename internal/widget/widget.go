// Package widget implements the terminal search control: a query, the last
// successful result list, and a renderer.
package widget

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
	"github.com/sirupsen/logrus"

	"cloud-dictionary-api/internal/models"
)

// Searcher is the TermSearch call the widget depends on
type Searcher interface {
	Search(ctx context.Context, query string) ([]models.Term, error)
}

// Widget holds search state between renders. Concurrent searches are not
// de-duplicated; whichever resolves last owns the result list.
type Widget struct {
	searcher Searcher
	logger   logrus.FieldLogger
	bold     *color.Color

	mu      sync.RWMutex
	query   string
	results []models.Term
}

// New creates a widget with an empty query and no results
func New(searcher Searcher, logger logrus.FieldLogger) *Widget {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Widget{
		searcher: searcher,
		logger:   logger,
		bold:     color.New(color.Bold),
		results:  []models.Term{},
	}
}

// SetQuery replaces the current query text
func (w *Widget) SetQuery(q string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.query = q
}

// Query returns the current query text
func (w *Widget) Query() string {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.query
}

// Search issues one TermSearch call with the current query. On failure the
// error is logged and the previous results stay in place.
func (w *Widget) Search(ctx context.Context) error {
	query := w.Query()

	results, err := w.searcher.Search(ctx, query)
	if err != nil {
		w.logger.WithField("query", query).WithError(err).Error("Error searching terms")
		return err
	}
	if results == nil {
		results = []models.Term{}
	}

	w.mu.Lock()
	w.results = results
	w.mu.Unlock()
	return nil
}

// Results returns a copy of the current result list
func (w *Widget) Results() []models.Term {
	w.mu.RLock()
	defer w.mu.RUnlock()
	out := make([]models.Term, len(w.results))
	copy(out, w.results)
	return out
}

// Render writes one "term: definition" line per result, term in bold
func (w *Widget) Render(out io.Writer) error {
	for _, t := range w.Results() {
		if _, err := w.bold.Fprint(out, t.Term); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(out, ": %s\n", t.Definition); err != nil {
			return err
		}
	}
	return nil
}
