package modify_reservation

import (
	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
)

// GuestInput is one guest as typed into the modification form.
type GuestInput struct {
	Name  string
	Birth string
}

// Request carries the new stay parameters. With PreviewOnly set, the backend
// computes the price delta without committing anything.
type Request struct {
	Checkin     string
	Checkout    string
	Guests      []GuestInput
	PreviewOnly bool
}

// Response carries either the price delta (preview) or the committed
// reservation, never both.
type Response struct {
	Preview     *hotelbackend.ModifyPreview
	Reservation *domain.Reservation
}
