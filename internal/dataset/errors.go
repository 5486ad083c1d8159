package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the dataset file does not exist.
	// It wraps fs.ErrNotExist so both can be matched with errors.Is.
	ErrNotFound = errors.New("dataset not found")

	// ErrMissingColumn is returned when a required header column is absent.
	ErrMissingColumn = errors.New("missing required column")

	// ErrInvalidValue is returned when a cell cannot be converted.
	ErrInvalidValue = errors.New("invalid value")
)

// ParseError describes malformed dataset content.
// Line and Column are 1-based; zero means unknown.
type ParseError struct {
	Source string
	Line   int
	Column string
	Err    error
}

// Error implements error.
func (e *ParseError) Error() string {
	switch {
	case e.Line > 0 && e.Column != "":
		return fmt.Sprintf("%s:%d: column %q: %v", e.Source, e.Line, e.Column, e.Err)
	case e.Line > 0:
		return fmt.Sprintf("%s:%d: %v", e.Source, e.Line, e.Err)
	default:
		return fmt.Sprintf("%s: %v", e.Source, e.Err)
	}
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}
