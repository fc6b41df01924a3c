package search_hotels

import "github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"

// Request is the hotel search form as submitted. Dates arrive in any format
// the parser accepts; TZOffsetMinutes shifts "today" to the guest's zone for
// the not-in-the-past check.
type Request struct {
	City            string
	Checkin         string
	Checkout        string
	RoomType        string
	Adults          int
	Children        int
	Babies          int
	TZOffsetMinutes int
}

// Response carries the backend's results, cheapest hotel first.
type Response struct {
	Results []hotelbackend.HotelResult
	Nights  int
	Cached  bool
}
