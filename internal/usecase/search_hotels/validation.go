package search_hotels

import (
	"strings"
	"time"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
)

// User-facing validation messages, same wording the booking backend uses.
const (
	msgCityRequired      = "La ciudad es obligatoria."
	msgCityInvalid       = "La ciudad solo admite letras, números y espacios."
	msgCheckinRequired   = "La fecha de entrada es obligatoria y debe tener formato dd/mm/yyyy."
	msgCheckinInPast     = "La fecha de entrada no puede ser menor a la actual."
	msgCheckoutRequired  = "La fecha de salida es obligatoria y debe tener formato dd/mm/yyyy."
	msgCheckoutNotAfter  = "La fecha de salida debe ser posterior a la de entrada."
	msgRoomTypeInvalid   = "Tipo de habitación inválido."
	msgNoAdult           = "Debe haber al menos un adulto en la reserva."
	msgNegativeCounts    = "No se permiten valores negativos en niños o bebés."
	msgOverCapacity      = "La habitación seleccionada no admite la cantidad de huéspedes indicada."
)

// validated carries the parsed form values the use case needs after a
// successful validation pass.
type validated struct {
	checkin  domain.Date
	checkout domain.Date
	nights   int
}

// validateRequest checks the whole form and collects every broken rule. The
// guest's "today" is the UTC clock shifted by the reported zone offset.
func validateRequest(req *Request, now time.Time) (validated, *ValidationError) {
	var out validated
	var messages []string

	city := strings.TrimSpace(req.City)
	if city == "" {
		messages = append(messages, msgCityRequired)
	} else if !domain.CityRegexp.MatchString(city) {
		messages = append(messages, msgCityInvalid)
	}

	today := domain.DateOf(now.UTC().Add(-time.Duration(req.TZOffsetMinutes) * time.Minute))

	checkin, checkinErr := domain.ParseDate(req.Checkin)
	if checkinErr != nil {
		messages = append(messages, msgCheckinRequired)
	} else if checkin.Before(today) {
		messages = append(messages, msgCheckinInPast)
	}

	checkout, checkoutErr := domain.ParseDate(req.Checkout)
	if checkoutErr != nil {
		messages = append(messages, msgCheckoutRequired)
	} else if checkinErr == nil && checkout.Compare(checkin) <= 0 {
		messages = append(messages, msgCheckoutNotAfter)
	}

	roomType := req.RoomType
	if roomType == "" {
		roomType = domain.RoomTypeSingle
	}
	if roomType != domain.RoomTypeAll && !domain.KnownRoomType(roomType) {
		messages = append(messages, msgRoomTypeInvalid)
	}

	if req.Adults < 1 {
		messages = append(messages, msgNoAdult)
	}
	if req.Children < 0 || req.Babies < 0 {
		messages = append(messages, msgNegativeCounts)
	}

	if roomType != domain.RoomTypeAll && domain.KnownRoomType(roomType) {
		capacity := domain.CapacityFor(roomType)
		if req.Adults > capacity.Adults || req.Children > capacity.Children || req.Babies > capacity.Babies {
			messages = append(messages, msgOverCapacity)
		}
	}

	if len(messages) > 0 {
		return out, &ValidationError{Messages: messages}
	}

	out.checkin = checkin
	out.checkout = checkout
	out.nights = checkin.NightsUntil(checkout)
	return out, nil
}
