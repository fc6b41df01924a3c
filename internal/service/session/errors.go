package session

import "errors"

var (
	// ErrSessionNotFound is returned for unknown or expired session IDs.
	ErrSessionNotFound = errors.New("session not found")

	// ErrNoReservation is returned when an action needs a working copy but
	// the session never loaded one.
	ErrNoReservation = errors.New("session has no reservation loaded")
)
