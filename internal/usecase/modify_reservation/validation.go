package modify_reservation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
)

// User-facing validation messages, same wording the booking backend uses.
const (
	msgDatesInvalid = "Fechas inválidas"
	msgNoGuests     = "Debe haber al menos un huésped"

	fmtGuestNameRequired = "El nombre del huésped %d es obligatorio"
	fmtGuestNameInvalid  = "El nombre del huésped %d solo admite letras y espacios"
	fmtGuestBirthInvalid = "La fecha de nacimiento del huésped %d debe tener formato dd/mm/yyyy"
	fmtGuestBirthFuture  = "La fecha de nacimiento del huésped %d no puede ser futura"
)

type validated struct {
	checkin  domain.Date
	checkout domain.Date
	guests   []domain.Guest
}

// validateRequest checks the new stay parameters against the reservation's
// room type. Same guest pipeline as creation; first broken rule wins.
func validateRequest(req *Request, roomType string, today domain.Date) (validated, error) {
	var out validated

	checkin, errIn := domain.ParseDate(req.Checkin)
	checkout, errOut := domain.ParseDate(req.Checkout)
	if errIn != nil || errOut != nil || checkout.Compare(checkin) <= 0 {
		return out, invalid(msgDatesInvalid)
	}

	if len(req.Guests) == 0 {
		return out, invalid(msgNoGuests)
	}

	guests := make([]domain.Guest, 0, len(req.Guests))
	for idx, input := range req.Guests {
		guest, err := validateGuest(input, idx+1, today)
		if err != nil {
			return out, err
		}
		guests = append(guests, guest)
	}

	counts := domain.CountByCategory(guests)
	if violations := domain.ValidateGuestList(roomType, guests, counts); len(violations) > 0 {
		return out, invalid(violations[0].Message())
	}

	out.checkin = checkin
	out.checkout = checkout
	out.guests = guests
	return out, nil
}

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
