package create_reservation

import (
	"time"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
	createReservation "github.com/dreamstay-app/DS-BookingGateway/internal/usecase/create_reservation"
)

// GuestPayload is one guest as typed into the form.
type GuestPayload struct {
	Name  string `json:"name"`
	Birth string `json:"birth"`
}

// CreateReservationRequest HTTP request model.
type CreateReservationRequest struct {
	Hotel        string         `json:"hotel"`
	RoomType     string         `json:"room_type"`
	Checkin      string         `json:"checkin"`
	Checkout     string         `json:"checkout"`
	ContactEmail string         `json:"contact_email"`
	Guests       []GuestPayload `json:"guests"`
}

// ReservationResponse HTTP response model: the working copy plus the display
// policy and the actions available right now.
type ReservationResponse struct {
	Reservation *domain.Reservation `json:"reservation"`
	StatusInfo  domain.StatusInfo   `json:"status_info"`
	Actions     []domain.Action     `json:"actions"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *CreateReservationRequest) ToUseCaseRequest() *createReservation.Request {
	guests := make([]createReservation.GuestInput, len(r.Guests))
	for i, g := range r.Guests {
		guests[i] = createReservation.GuestInput{Name: g.Name, Birth: g.Birth}
	}
	return &createReservation.Request{
		Hotel:        r.Hotel,
		RoomType:     r.RoomType,
		Checkin:      r.Checkin,
		Checkout:     r.Checkout,
		ContactEmail: r.ContactEmail,
		Guests:       guests,
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
