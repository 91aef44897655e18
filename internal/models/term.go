package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field names of a term record as stored in the table
const (
	FieldTerm       = "term"
	FieldDefinition = "definition"
)

// ErrTermNotFound is returned when no record exists for the requested key
var ErrTermNotFound = errors.New("term not found")

var validate = validator.New()

// Term represents a dictionary record keyed by its term name.
// Attributes holds any extra fields found on the stored record; they are
// carried through untouched and emitted next to term and definition.
type Term struct {
	Term       string         `validate:"required"`
	Definition string
	Attributes map[string]any `validate:"-"`
}

// NewTerm creates a term record without extra attributes
func NewTerm(term, definition string) Term {
	return Term{Term: term, Definition: definition}
}

// Validate checks the record before it is written to a store
func (t *Term) Validate() error {
	if err := validate.Struct(t); err != nil {
		return fmt.Errorf("invalid term record: %w", err)
	}
	if strings.TrimSpace(t.Term) == "" {
		return fmt.Errorf("invalid term record: term is blank")
	}
	return nil
}

// ToMap flattens the record into a field-name to value mapping
func (t Term) ToMap() map[string]any {
	m := make(map[string]any, len(t.Attributes)+2)
	m[FieldTerm] = t.Term
	m[FieldDefinition] = t.Definition
	// non-string term or definition values live in Attributes and win
	for k, v := range t.Attributes {
		m[k] = v
	}
	return m
}

// TermFromMap builds a record from a decoded item. A term or definition
// that is not a string is kept as an opaque attribute.
func TermFromMap(m map[string]any) Term {
	var t Term
	for k, v := range m {
		switch k {
		case FieldTerm:
			if s, ok := v.(string); ok {
				t.Term = s
				continue
			}
		case FieldDefinition:
			if s, ok := v.(string); ok {
				t.Definition = s
				continue
			}
		}
		if t.Attributes == nil {
			t.Attributes = make(map[string]any)
		}
		t.Attributes[k] = v
	}
	return t
}

// MarshalJSON emits the record as a single object with sorted keys
func (t Term) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.ToMap())
}

// UnmarshalJSON accepts any object carrying term, definition and extra fields
func (t *Term) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*t = TermFromMap(m)
	return nil
}
