package create_reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
)

// User-facing validation messages, same wording the booking backend uses.
const (
	msgEmailRequired    = "El correo electrónico de contacto es obligatorio"
	msgEmailInvalid     = "El correo electrónico de contacto tiene un formato inválido"
	msgHotelRequired    = "Falta el campo hotel"
	msgRoomTypeRequired = "Falta el campo room_type"
	msgRoomTypeInvalid  = "Hotel o tipo de habitación inválido"
	msgDatesInvalid     = "Fechas inválidas"
	msgNoGuests         = "Debe haber al menos un huésped"

	fmtGuestNameRequired = "El nombre del huésped %d es obligatorio"
	fmtGuestNameInvalid  = "El nombre del huésped %d solo admite letras y espacios"
	fmtGuestBirthInvalid = "La fecha de nacimiento del huésped %d debe tener formato dd/mm/yyyy"
	fmtGuestBirthFuture  = "La fecha de nacimiento del huésped %d no puede ser futura"
)

// validated carries the normalized form values after a successful pass:
// parsed dates, classified guests and their folded counts.
type validated struct {
	checkin  domain.Date
	checkout domain.Date
	guests   []domain.Guest
	counts   domain.OccupancyCount
}

// validateRequest runs the full reservation pipeline locally, in the same
// order the backend enforces it: contact data, stay parameters, then each
// guest (name, birth, classification), then the occupancy rules. The first
// broken rule stops the pass.
func validateRequest(req *Request, now time.Time) (validated, error) {
	var out validated

	email := strings.TrimSpace(req.ContactEmail)
	if email == "" {
		return out, invalid(msgEmailRequired)
	}
	if !domain.EmailRegexp.MatchString(email) {
		return out, invalid(msgEmailInvalid)
	}

	if strings.TrimSpace(req.Hotel) == "" {
		return out, invalid(msgHotelRequired)
	}
	if req.RoomType == "" {
		return out, invalid(msgRoomTypeRequired)
	}
	if !domain.KnownRoomType(req.RoomType) {
		return out, invalid(msgRoomTypeInvalid)
	}

	checkin, errIn := domain.ParseDate(req.Checkin)
	checkout, errOut := domain.ParseDate(req.Checkout)
	if errIn != nil || errOut != nil || checkout.Compare(checkin) <= 0 {
		return out, invalid(msgDatesInvalid)
	}

	if len(req.Guests) == 0 {
		return out, invalid(msgNoGuests)
	}

	today := domain.DateOf(now)
	guests := make([]domain.Guest, 0, len(req.Guests))
	for idx, input := range req.Guests {
		guest, err := validateGuest(input, idx+1, today)
		if err != nil {
			return out, err
		}
		guests = append(guests, guest)
	}

	counts := domain.CountByCategory(guests)
	if violations := domain.ValidateGuestList(req.RoomType, guests, counts); len(violations) > 0 {
		return out, invalid(violations[0].Message())
	}

	out.checkin = checkin
	out.checkout = checkout
	out.guests = guests
	out.counts = counts
	return out, nil
}

// validateGuest checks one guest row. idx is 1-based for the messages.
func validateGuest(input GuestInput, idx int, today domain.Date) (domain.Guest, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return domain.Guest{}, invalid(fmt.Sprintf(fmtGuestNameRequired, idx))
	}
	if !domain.NameRegexp.MatchString(name) {
		return domain.Guest{}, invalid(fmt.Sprintf(fmtGuestNameInvalid, idx))
	}

	birth, err := domain.ParseDate(strings.TrimSpace(input.Birth))
	if err != nil {
		return domain.Guest{}, invalid(fmt.Sprintf(fmtGuestBirthInvalid, idx))
	}

	classification, err := domain.Classify(birth, today)
	if err != nil {
		if errors.Is(err, domain.ErrFutureBirth) {
			return domain.Guest{}, invalid(fmt.Sprintf(fmtGuestBirthFuture, idx))
		}
		// Edad implausible: mismo mensaje de formato que usa el backend
		return domain.Guest{}, invalid(fmt.Sprintf(fmtGuestBirthInvalid, idx))
	}

	age := classification.Age
	return domain.Guest{
		Name:     name,
		Birth:    birth.FormatDMY(),
		Age:      &age,
		Category: classification.Category,
	}, nil
}
