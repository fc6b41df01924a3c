package price_preview

import "errors"

var (
	// ErrInvalidInput is the sentinel every ValidationError unwraps to.
	ErrInvalidInput = errors.New("price_preview: invalid input data")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("price_preview: internal error")
)

// ValidationError carries the first broken rule with its Spanish message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "price_preview: " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func invalid(message string) *ValidationError {
	return &ValidationError{Message: message}
}
