package modify_reservation

import (
	"time"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
	modifyReservation "github.com/dreamstay-app/DS-BookingGateway/internal/usecase/modify_reservation"
)

// GuestPayload is one guest as typed into the modification form.
type GuestPayload struct {
	Name  string `json:"name"`
	Birth string `json:"birth"`
}

// ModifyReservationRequest HTTP request model. With preview_only set, the
// backend computes the price delta without committing anything.
type ModifyReservationRequest struct {
	Checkin     string         `json:"checkin"`
	Checkout    string         `json:"checkout"`
	Guests      []GuestPayload `json:"guests"`
	PreviewOnly bool           `json:"preview_only"`
}

// ModifyReservationResponse HTTP response model: either the price delta
// (preview) or the committed reservation, never both.
type ModifyReservationResponse struct {
	Preview     *hotelbackend.ModifyPreview `json:"preview,omitempty"`
	Reservation *domain.Reservation         `json:"reservation,omitempty"`
	StatusInfo  *domain.StatusInfo          `json:"status_info,omitempty"`
	Actions     []domain.Action             `json:"actions,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *ModifyReservationRequest) ToUseCaseRequest() *modifyReservation.Request {
	guests := make([]modifyReservation.GuestInput, len(r.Guests))
	for i, g := range r.Guests {
		guests[i] = modifyReservation.GuestInput{Name: g.Name, Birth: g.Birth}
	}
	return &modifyReservation.Request{
		Checkin:     r.Checkin,
		Checkout:    r.Checkout,
		Guests:      guests,
		PreviewOnly: r.PreviewOnly,
	}
}

// FromUseCaseResponse builds the HTTP response as of now.
func FromUseCaseResponse(result *modifyReservation.Response, now time.Time) ModifyReservationResponse {
	if result.Preview != nil {
		return ModifyReservationResponse{Preview: result.Preview}
	}

	info := domain.InfoFor(result.Reservation.Status)
	return ModifyReservationResponse{
		Reservation: result.Reservation,
		StatusInfo:  &info,
		Actions:     result.Reservation.PermittedActions(now),
	}
}
