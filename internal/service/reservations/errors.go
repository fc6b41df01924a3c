package reservations

import "errors"

var (
	// ErrNoReservation is returned when the session has no working copy to
	// act on.
	ErrNoReservation = errors.New("reservations: no reservation loaded in session")

	// ErrCodeRequired is returned when the confirmation code is missing.
	ErrCodeRequired = errors.New("reservations: confirmation code is required")

	// ErrEmailRequired is returned when the contact email is missing.
	ErrEmailRequired = errors.New("reservations: contact email is required")

	// ErrEmailInvalid is returned for malformed contact emails.
	ErrEmailInvalid = errors.New("reservations: contact email is invalid")

	// ErrPayNotAllowed is returned when the reservation's status does not
	// admit payment.
	ErrPayNotAllowed = errors.New("reservations: payment not allowed in current status")

	// ErrCancelNotAllowed is returned when cancellation is blocked by status
	// or by the allow_cancel flag.
	ErrCancelNotAllowed = errors.New("reservations: cancellation not allowed")

	// Card validation failures, one per field so handlers can map each to
	// its own message.
	ErrCardHolderRequired    = errors.New("reservations: card holder is required")
	ErrCardNumberInvalid     = errors.New("reservations: card number is invalid")
	ErrCardExpirationInvalid = errors.New("reservations: card expiration is invalid")
	ErrCardExpired           = errors.New("reservations: card is expired")
	ErrCVVInvalid            = errors.New("reservations: card cvv is invalid")

	// ErrInternal is returned on unexpected failures.
	ErrInternal = errors.New("reservations: internal error")
)
