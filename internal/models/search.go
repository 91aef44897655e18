package models

import (
	"fmt"
	"strings"
)

// MatchMode selects how stored fields are compared against a search query
type MatchMode string

const (
	// MatchFolded lowercases both the query and the stored fields
	MatchFolded MatchMode = "folded"
	// MatchLegacy lowercases only the query; stored fields are compared as stored
	MatchLegacy MatchMode = "legacy"
)

// ParseMatchMode converts a configuration value into a MatchMode
func ParseMatchMode(s string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", MatchFolded:
		return MatchFolded, nil
	case MatchLegacy:
		return MatchLegacy, nil
	default:
		return "", fmt.Errorf("unknown search match mode %q", s)
	}
}

// SearchQuery is a normalized substring search over term and definition.
// Text is always lowercase.
type SearchQuery struct {
	Text string
	Mode MatchMode
}

// NewSearchQuery lowercases the raw query text
func NewSearchQuery(raw string, mode MatchMode) SearchQuery {
	if mode == "" {
		mode = MatchFolded
	}
	return SearchQuery{Text: strings.ToLower(raw), Mode: mode}
}

// MatchAll reports whether the query selects every record
func (q SearchQuery) MatchAll() bool {
	return q.Text == ""
}

// Matches reports whether the record's term or definition contains the query
func (q SearchQuery) Matches(t Term) bool {
	if q.MatchAll() {
		return true
	}
	term, definition := t.Term, t.Definition
	if q.Mode != MatchLegacy {
		term = strings.ToLower(term)
		definition = strings.ToLower(definition)
	}
	return strings.Contains(term, q.Text) || strings.Contains(definition, q.Text)
}

// Filter returns the records matching the query in their original order
func (q SearchQuery) Filter(terms []Term) []Term {
	matched := make([]Term, 0, len(terms))
	for _, t := range terms {
		if q.Matches(t) {
			matched = append(matched, t)
		}
	}
	return matched
}
