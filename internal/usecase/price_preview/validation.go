package price_preview

import (
	"strings"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
)

// User-facing validation messages, same wording the booking backend uses.
const (
	msgHotelAndTypeRequired = "Hotel y tipo de habitación son obligatorios"
	msgRoomTypeInvalid      = "Hotel o tipo de habitación inválido"
	msgDatesInvalid         = "Fechas inválidas"
	msgNoAdult              = "Debe haber al menos un adulto en la reserva"
	msgNegativeCounts       = "Los conteos no pueden ser negativos"
	msgOverCapacity         = "La cantidad de huéspedes excede la capacidad de la habitación seleccionada"
)

type validated struct {
	checkin  domain.Date
	checkout domain.Date
}

// validateRequest checks the preview parameters. First broken rule wins.
func validateRequest(req *Request) (validated, error) {
	var out validated

	if strings.TrimSpace(req.Hotel) == "" || req.RoomType == "" {
		return out, invalid(msgHotelAndTypeRequired)
	}
	if !domain.KnownRoomType(req.RoomType) {
		return out, invalid(msgRoomTypeInvalid)
	}

	checkin, errIn := domain.ParseDate(req.Checkin)
	checkout, errOut := domain.ParseDate(req.Checkout)
	if errIn != nil || errOut != nil || checkout.Compare(checkin) <= 0 {
		return out, invalid(msgDatesInvalid)
	}

	if req.Counts.Adult < 1 {
		return out, invalid(msgNoAdult)
	}
	if req.Counts.Child < 0 || req.Counts.Baby < 0 {
		return out, invalid(msgNegativeCounts)
	}

	if violations := domain.ValidateOccupancy(req.RoomType, req.Counts); len(violations) > 0 {
		return out, invalid(msgOverCapacity)
	}

	out.checkin = checkin
	out.checkout = checkout
	return out, nil
}
