package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"cloud-dictionary-api/internal/models"
	"cloud-dictionary-api/internal/repositories"

	"github.com/sirupsen/logrus"
)

const (
	selectTermSQL = `SELECT term, definition, attributes FROM CloudTerms WHERE term = ?`

	scanAllSQL = `SELECT term, definition, attributes FROM CloudTerms ORDER BY rowid`

	// instr is byte-exact, so this mirrors a case-sensitive contains() on stored values
	scanContainsSQL = `SELECT term, definition, attributes FROM CloudTerms
		WHERE instr(term, ?) > 0 OR instr(definition, ?) > 0 ORDER BY rowid`

	upsertTermSQL = `INSERT INTO CloudTerms (term, definition, attributes) VALUES (?, ?, ?)
		ON CONFLICT(term) DO UPDATE SET definition = excluded.definition, attributes = excluded.attributes`
)

// TermRepository is the SQLite-backed term table used for local development
type TermRepository struct {
	db     *sql.DB
	table  string
	logger *logrus.Logger
}

// NewTermRepository creates a new SQLite term repository
func NewTermRepository(db *sql.DB, logger *logrus.Logger) *TermRepository {
	if logger == nil {
		logger = logrus.New()
	}
	return &TermRepository{
		db:     db,
		table:  repositories.DefaultTableName,
		logger: logger,
	}
}

// Get retrieves a term by its exact key
func (r *TermRepository) Get(ctx context.Context, term string) (*models.Term, error) {
	start := time.Now()
	row := r.db.QueryRowContext(ctx, selectTermSQL, term)

	record, err := scanTerm(row)
	r.logQuery("get", selectTermSQL, time.Since(start), err)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repositories.NotFoundError(r.table, term)
		}
		return nil, repositories.NewRepositoryError("get", r.table, term, err)
	}
	return &record, nil
}

// Search reads the table in rowid order. Legacy mode pushes the
// case-sensitive predicate into SQL; folded mode filters in process so that
// non-ASCII case folding matches the other backends.
func (r *TermRepository) Search(ctx context.Context, q models.SearchQuery) ([]models.Term, error) {
	query, args := scanAllSQL, []any(nil)
	if q.Mode == models.MatchLegacy && !q.MatchAll() {
		query, args = scanContainsSQL, []any{q.Text, q.Text}
	}

	start := time.Now()
	terms, err := r.scanTerms(ctx, query, args...)
	r.logQuery("search", query, time.Since(start), err)
	if err != nil {
		return nil, repositories.NewRepositoryError("search", r.table, "", err)
	}
	return q.Filter(terms), nil
}

func (r *TermRepository) scanTerms(ctx context.Context, query string, args ...any) ([]models.Term, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	terms := make([]models.Term, 0)
	for rows.Next() {
		record, err := scanTerm(rows)
		if err != nil {
			return nil, err
		}
		terms = append(terms, record)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return terms, nil
}

// PutTerms upserts the records in a single transaction
func (r *TermRepository) PutTerms(ctx context.Context, terms []models.Term) (int, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, repositories.NewRepositoryError("put", r.table, "", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertTermSQL)
	if err != nil {
		return 0, repositories.NewRepositoryError("put", r.table, "", err)
	}
	defer stmt.Close()

	for _, t := range terms {
		attrs, err := encodeAttributes(t.Attributes)
		if err != nil {
			return 0, repositories.NewRepositoryError("put", r.table, t.Term, err)
		}
		if _, err := stmt.ExecContext(ctx, t.Term, t.Definition, attrs); err != nil {
			return 0, repositories.NewRepositoryError("put", r.table, t.Term, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, repositories.NewRepositoryError("put", r.table, "", err)
	}
	return len(terms), nil
}

// Close is a no-op; the connection is owned by the database.ConnectionManager
func (r *TermRepository) Close() error {
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTerm(row rowScanner) (models.Term, error) {
	var term, definition, attrs string
	if err := row.Scan(&term, &definition, &attrs); err != nil {
		return models.Term{}, err
	}

	record := models.NewTerm(term, definition)
	if attrs != "" && attrs != "{}" {
		if err := json.Unmarshal([]byte(attrs), &record.Attributes); err != nil {
			return models.Term{}, fmt.Errorf("failed to decode attributes of %q: %w", term, err)
		}
	}
	return record, nil
}

func encodeAttributes(attrs map[string]any) (string, error) {
	if len(attrs) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(attrs)
	if err != nil {
		return "", fmt.Errorf("failed to encode attributes: %w", err)
	}
	return string(data), nil
}

// logQuery logs a query with its execution time
func (r *TermRepository) logQuery(operation, query string, duration time.Duration, err error) {
	fields := logrus.Fields{
		"operation": operation,
		"table":     r.table,
		"query":     query,
		"duration":  duration,
	}

	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		fields["error"] = err.Error()
		r.logger.WithFields(fields).Error("Query failed")
	} else {
		r.logger.WithFields(fields).Debug("Query executed")
	}
}
