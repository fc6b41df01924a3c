package pay_reservation

import (
	"time"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
	"github.com/dreamstay-app/DS-BookingGateway/internal/service/reservations"
)

// PayRequest HTTP request model. Card data passes through to the backend and
// is never logged or stored.
type PayRequest struct {
	CardHolder   string `json:"card_holder"`
	CardNumber   string `json:"card_number"`
	Expiration   string `json:"expiration"` // MM/AA
	CVV          string `json:"cvv"`
	ReceiptEmail string `json:"receipt_email,omitempty"`
}

// ReservationResponse HTTP response model: the paid reservation plus the
// display policy and the actions available right now.
type ReservationResponse struct {
	Reservation *domain.Reservation `json:"reservation"`
	StatusInfo  domain.StatusInfo   `json:"status_info"`
	Actions     []domain.Action     `json:"actions"`
}

// ToPayInput converts the HTTP request into the service model.
func (r *PayRequest) ToPayInput() reservations.PayInput {
	return reservations.PayInput{
		CardHolder:   r.CardHolder,
		CardNumber:   r.CardNumber,
		Expiration:   r.Expiration,
		CVV:          r.CVV,
		ReceiptEmail: r.ReceiptEmail,
	}
}

// NewReservationResponse builds the response for a reservation as of now.
func NewReservationResponse(reservation *domain.Reservation, now time.Time) ReservationResponse {
	return ReservationResponse{
		Reservation: reservation,
		StatusInfo:  domain.InfoFor(reservation.Status),
		Actions:     reservation.PermittedActions(now),
	}
}
