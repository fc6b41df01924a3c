package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidDate is returned for any input that does not name an existing
// calendar date. Callers must treat it as a validation failure, never fatal.
var ErrInvalidDate = errors.New("domain: invalid date")

// Date is a calendar date without time of day or zone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate builds a Date, validating that the calendar date exists.
func NewDate(year int, month time.Month, day int) (Date, error) {
	d := Date{Year: year, Month: month, Day: day}
	if !d.exists() {
		return Date{}, fmt.Errorf("%w: %04d-%02d-%02d", ErrInvalidDate, year, month, day)
	}
	return d, nil
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) exists() bool {
	if d.Year < 1 || d.Year > 9999 || d.Month < time.January || d.Month > time.December || d.Day < 1 {
		return false
	}
	// time.Date normalizes out-of-range components; a round-trip mismatch
	// means the date does not exist (e.g. 31/02).
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
	y, m, day := t.Date()
	return y == d.Year && m == d.Month && day == d.Day
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight of the date in the given location.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, loc)
}

// Compare returns -1, 0 or 1 ordering d against other.
func (d Date) Compare(other Date) int {
	switch {
	case d.Year != other.Year:
		return sign(d.Year - other.Year)
	case d.Month != other.Month:
		return sign(int(d.Month) - int(other.Month))
	default:
		return sign(d.Day - other.Day)
	}
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}

// Before reports whether d is earlier than other.
func (d Date) Before(other Date) bool { return d.Compare(other) < 0 }

// After reports whether d is later than other.
func (d Date) After(other Date) bool { return d.Compare(other) > 0 }

// AddDays returns the date n days after d.
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time(time.UTC).AddDate(0, 0, n))
}

// NightsUntil returns the number of nights between d and checkout, at least 1
// when checkout is after d.
func (d Date) NightsUntil(checkout Date) int {
	nights := int(checkout.Time(time.UTC).Sub(d.Time(time.UTC)).Hours() / 24)
	if nights < 1 {
		return 1
	}
	return nights
}

// String formats the date as ISO YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// FormatDMY formats the date as DD/MM/YYYY, the backend's wire format.
func (d Date) FormatDMY() string {
	return fmt.Sprintf("%02d/%02d/%04d", d.Day, d.Month, d.Year)
}

// ParseDate parses the flexible date representations accepted by the booking
// forms: ISO "yyyy-mm-dd", slash forms with day/month disambiguation, and a
// generic timestamp fallback. Returns ErrInvalidDate for anything that does
// not name an existing date.
func ParseDate(input string) (Date, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Date{}, fmt.Errorf("%w: empty input", ErrInvalidDate)
	}

	if parts, ok := splitNumeric(s, "-"); ok {
		return NewDate(parts[0], time.Month(parts[1]), parts[2])
	}

	if parts, ok := splitNumeric(s, "/"); ok {
		return dateFromSlashParts(parts[0], parts[1], parts[2])
	}

	// Fallback genérico para literales con hora
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return DateOf(t), nil
		}
	}

	return Date{}, fmt.Errorf("%w: unparsable input %q", ErrInvalidDate, input)
}

// splitNumeric splits s on sep and parses exactly three integer parts.
func splitNumeric(s, sep string) ([3]int, bool) {
	var out [3]int
	if !strings.Contains(s, sep) {
		return out, false
	}
	parts := strings.Split(s, sep)
	if len(parts) != 3 {
		return out, false
	}
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return out, false
		}
		out[i] = n
	}
	return out, true
}

// dateFromSlashParts resolves "a/b/c" into a calendar date. Forms where a
// component exceeds 31 are unambiguous; otherwise the magnitude heuristic
// decides, defaulting to the day-first locale order.
func dateFromSlashParts(a, b, c int) (Date, error) {
	switch {
	case c > 31:
		// d/m/y
		return NewDate(c, time.Month(b), a)
	case a > 31:
		// y/m/d
		return NewDate(a, time.Month(b), c)
	case a <= 12 && b > 12:
		// a solo puede ser mes
		return NewDate(c, time.Month(a), b)
	case a > 12 && b <= 12:
		// a solo puede ser día
		return NewDate(c, time.Month(b), a)
	default:
		// día primero (convención local)
		return NewDate(c, time.Month(b), a)
	}
}
