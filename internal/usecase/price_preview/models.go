package price_preview

import "github.com/dreamstay-app/DS-BookingGateway/internal/domain"

// Request asks for a recomputed price for tentative stay parameters.
type Request struct {
	Hotel    string
	RoomType string
	Checkin  string
	Checkout string
	Counts   domain.OccupancyCount
}

// Response is the settled display decision. Effective is what the UI must
// show now; on a stale request it is whatever the newer preview settled.
type Response struct {
	Effective *domain.PriceDetail
	Changed   bool
	Stale     bool
	Offer     *string
}
