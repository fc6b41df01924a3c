package hotelbackend

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInternal is returned on client-side failures building a request.
	ErrInternal = errors.New("hotelbackend client: internal error")

	// ErrInvalidResponse is returned when the backend answers with a body the
	// client cannot decode.
	ErrInvalidResponse = errors.New("hotelbackend client: invalid response")

	// ErrUnavailable is returned on transport failures and 5xx answers. The
	// caller must leave its local state untouched and surface a generic
	// unavailability message.
	ErrUnavailable = errors.New("hotelbackend unavailable")

	// ErrBusiness is the sentinel wrapped by every BusinessError.
	ErrBusiness = errors.New("hotelbackend: request rejected")
)

// BusinessError carries a 4xx rejection from the backend: its status code and
// the user-facing messages from the `error`/`errors` payload, passed through
// verbatim.
type BusinessError struct {
	StatusCode int
	Messages   []string
}

func (e *BusinessError) Error() string {
	return fmt.Sprintf("hotelbackend: status %d: %s", e.StatusCode, strings.Join(e.Messages, "; "))
}

func (e *BusinessError) Unwrap() error { return ErrBusiness }

// Message returns the first user-facing message, or empty.
func (e *BusinessError) Message() string {
	if len(e.Messages) == 0 {
		return ""
	}
	return e.Messages[0]
}
