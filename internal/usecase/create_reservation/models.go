package create_reservation

import "github.com/dreamstay-app/DS-BookingGateway/internal/domain"

// GuestInput is one guest as typed into the form.
type GuestInput struct {
	Name  string
	Birth string
}

// Request is the reservation form as submitted.
type Request struct {
	Hotel        string
	RoomType     string
	Checkin      string
	Checkout     string
	ContactEmail string
	Guests       []GuestInput
}

// Response carries the reservation the backend materialized, already loaded
// into the session as the working copy.
type Response struct {
	Reservation *domain.Reservation
}
