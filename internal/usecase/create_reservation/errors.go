package create_reservation

import "errors"

var (
	// ErrInvalidInput is the sentinel every ValidationError unwraps to.
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("create_reservation: internal error")
)

// ValidationError carries the first broken form rule, the way the original
// reservation flow reports them: one Spanish message at a time.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "create_reservation: " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func invalid(message string) *ValidationError {
	return &ValidationError{Message: message}
}
