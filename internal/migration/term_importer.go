// Package migration loads term records from JSON exports into a term store.
package migration

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"cloud-dictionary-api/internal/models"
	"cloud-dictionary-api/internal/repositories"
)

// ImportResult contains the results of an import
type ImportResult struct {
	Read     int
	Written  int
	Skipped  int
	Warnings []string
	Errors   []string
}

// TermImporter writes term records to a store. It is the only writer of the
// table; the API handlers never modify it.
type TermImporter struct {
	writer repositories.TermWriter
	logger logrus.FieldLogger
}

// NewTermImporter creates a new term importer
func NewTermImporter(writer repositories.TermWriter, logger logrus.FieldLogger) *TermImporter {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &TermImporter{
		writer: writer,
		logger: logger,
	}
}

// LoadFile reads a JSON array of term records
func LoadFile(path string) ([]models.Term, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	var terms []models.Term
	if err := json.NewDecoder(f).Decode(&terms); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return terms, nil
}

// Import validates terms and writes the valid ones. Invalid records are
// skipped and reported; a repeated key keeps its last occurrence. With dryRun
// nothing is written.
func (i *TermImporter) Import(ctx context.Context, terms []models.Term, dryRun bool) (*ImportResult, error) {
	result := &ImportResult{
		Read:     len(terms),
		Warnings: make([]string, 0),
		Errors:   make([]string, 0),
	}

	index := make(map[string]int, len(terms))
	valid := make([]models.Term, 0, len(terms))
	for n, t := range terms {
		if err := t.Validate(); err != nil {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("record %d: %v", n, err))
			continue
		}
		if at, seen := index[t.Term]; seen {
			result.Warnings = append(result.Warnings, fmt.Sprintf("record %d: duplicate term %q replaces record %d", n, t.Term, at))
			valid[at] = t
			result.Skipped++
			continue
		}
		index[t.Term] = len(valid)
		valid = append(valid, t)
	}

	i.logger.WithFields(logrus.Fields{
		"read":    result.Read,
		"valid":   len(valid),
		"skipped": result.Skipped,
		"dry_run": dryRun,
	}).Info("Validated term records")

	if dryRun || len(valid) == 0 {
		return result, nil
	}

	written, err := i.writer.PutTerms(ctx, valid)
	result.Written = written
	if err != nil {
		return result, fmt.Errorf("failed to write terms: %w", err)
	}

	i.logger.WithField("written", written).Info("Term import completed")
	return result, nil
}
