package search_hotels

import (
	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
	searchHotels "github.com/dreamstay-app/DS-BookingGateway/internal/usecase/search_hotels"
)

// SearchRequest HTTP request model. Dates accept both DD/MM/YYYY and ISO;
// tz_offset_minutes shifts "today" to the guest's zone, same convention as
// JavaScript's getTimezoneOffset.
type SearchRequest struct {
	City            string `json:"city"`
	Checkin         string `json:"checkin"`
	Checkout        string `json:"checkout"`
	RoomType        string `json:"room_type"`
	Adults          int    `json:"adults"`
	Children        int    `json:"children"`
	Babies          int    `json:"babies"`
	TZOffsetMinutes int    `json:"tz_offset_minutes"`
}

// SearchResponse HTTP response model.
type SearchResponse struct {
	Results []hotelbackend.HotelResult `json:"results"`
	Nights  int                        `json:"nights"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *SearchRequest) ToUseCaseRequest() *searchHotels.Request {
	return &searchHotels.Request{
		City:            r.City,
		Checkin:         r.Checkin,
		Checkout:        r.Checkout,
		RoomType:        r.RoomType,
		Adults:          r.Adults,
		Children:        r.Children,
		Babies:          r.Babies,
		TZOffsetMinutes: r.TZOffsetMinutes,
	}
}
