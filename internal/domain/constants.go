package domain

import "regexp"

// Age thresholds for guest classification (strict three-tier policy).
const (
	AdultAgeMin = 18
	ChildAgeMin = 2
	MaxGuestAge = 120
)

// Room types known to the capacity table. RoomTypeAll is the search filter
// wildcard, never a bookable type.
const (
	RoomTypeSingle = "Single"
	RoomTypeDoble  = "Doble"
	RoomTypeSuite  = "Suite"
	RoomTypeAll    = "Todos"
)

// KnownRoomType reports whether roomType is a bookable room type.
func KnownRoomType(roomType string) bool {
	_, ok := roomCapacities[roomType]
	return ok
}

// Date format constants
const (
	DateFormatISO = "2006-01-02" // YYYY-MM-DD
	DateFormatDMY = "02/01/2006" // DD/MM/YYYY, the backend's wire format
)

// Field validation patterns, same rules the booking backend enforces.
var (
	NameRegexp  = regexp.MustCompile(`^[\p{L} ]+$`)
	CityRegexp  = regexp.MustCompile(`^[\p{L}\p{N} ]+$`)
	EmailRegexp = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

	CardNumberRegexp = regexp.MustCompile(`^[0-9]{13,19}$`)
	CVVRegexp        = regexp.MustCompile(`^[0-9]{3,4}$`)
	ExpirationRegexp = regexp.MustCompile(`^(0[1-9]|1[0-2])/([0-9]{2})$`)
)
