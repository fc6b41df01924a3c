package search_hotels

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidInput is the sentinel every ValidationError unwraps to.
	ErrInvalidInput = errors.New("search_hotels: invalid input data")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("search_hotels: internal error")
)

// ValidationError collects every broken form rule at once, the way the
// booking form reports them: one Spanish message per field.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "search_hotels: " + strings.Join(e.Messages, "; ")
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }
