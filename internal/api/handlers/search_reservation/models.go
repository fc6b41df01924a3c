package search_reservation

import (
	"time"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
)

// SearchReservationRequest HTTP request model.
type SearchReservationRequest struct {
	Code  string `json:"code"`
	Email string `json:"email"`
}

// ReservationResponse HTTP response model: the located reservation plus the
// display policy and the actions available right now.
type ReservationResponse struct {
	Reservation *domain.Reservation `json:"reservation"`
	StatusInfo  domain.StatusInfo   `json:"status_info"`
	Actions     []domain.Action     `json:"actions"`
}

// NewReservationResponse builds the response for a reservation as of now.
func NewReservationResponse(reservation *domain.Reservation, now time.Time) ReservationResponse {
	return ReservationResponse{
		Reservation: reservation,
		StatusInfo:  domain.InfoFor(reservation.Status),
		Actions:     reservation.PermittedActions(now),
	}
}
