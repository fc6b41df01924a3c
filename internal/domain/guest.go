package domain

import "errors"

var (
	// ErrFutureBirth is returned when a birth date is after today. Surfaced
	// as its own validation error, never silently clamped.
	ErrFutureBirth = errors.New("domain: birth date is in the future")

	// ErrImplausibleAge is returned when the computed age exceeds MaxGuestAge.
	ErrImplausibleAge = errors.New("domain: implausible birth date")
)

// GuestCategory is the pricing category a guest falls into by age.
type GuestCategory string

const (
	CategoryAdult   GuestCategory = "adult"
	CategoryChild   GuestCategory = "child"
	CategoryBaby    GuestCategory = "baby"
	CategoryUnknown GuestCategory = ""
)

// Label returns the Spanish display label for the category.
func (c GuestCategory) Label() string {
	switch c {
	case CategoryAdult:
		return "Adulto"
	case CategoryChild:
		return "Niño"
	case CategoryBaby:
		return "Bebé"
	default:
		return "Sin clasificar"
	}
}

// Guest is one occupant of a reservation. Age and Category are derived from
// Birth and are recomputed whenever Birth or the reference date changes; they
// are never stored independently.
type Guest struct {
	Name     string        `json:"name"`
	Birth    string        `json:"birth"` // wire format DD/MM/YYYY
	Age      *int          `json:"age,omitempty"`
	Category GuestCategory `json:"category,omitempty"`
}

// Classification is the result of classifying a guest by birth date.
type Classification struct {
	Age      int
	Category GuestCategory
}

// Classify computes age in completed years as of today and maps it to a
// category. Policy: strict three-tier — under 2 baby, under 18 child,
// otherwise adult.
func Classify(birth, today Date) (Classification, error) {
	age := today.Year - birth.Year
	// Cumpleaños todavía no alcanzado este año
	if today.Month < birth.Month || (today.Month == birth.Month && today.Day < birth.Day) {
		age--
	}

	if age < 0 {
		return Classification{}, ErrFutureBirth
	}
	if age > MaxGuestAge {
		return Classification{}, ErrImplausibleAge
	}

	category := CategoryAdult
	if age < AdultAgeMin {
		if age >= ChildAgeMin {
			category = CategoryChild
		} else {
			category = CategoryBaby
		}
	}

	return Classification{Age: age, Category: category}, nil
}
