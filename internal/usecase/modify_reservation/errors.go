package modify_reservation

import "errors"

var (
	// ErrNoReservation is returned when the session has no working copy.
	ErrNoReservation = errors.New("modify_reservation: no reservation loaded in session")

	// ErrNotAllowed is returned when the status table or the allow_modify
	// flag blocks modification.
	ErrNotAllowed = errors.New("modify_reservation: modification not allowed")

	// ErrWindowClosed is returned when check-in is less than the notice
	// period away.
	ErrWindowClosed = errors.New("modify_reservation: modification window closed")

	// ErrInvalidInput is the sentinel every ValidationError unwraps to.
	ErrInvalidInput = errors.New("modify_reservation: invalid input data")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("modify_reservation: internal error")
)

// ValidationError carries the first broken rule with its Spanish message.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return "modify_reservation: " + e.Message
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

func invalid(message string) *ValidationError {
	return &ValidationError{Message: message}
}
