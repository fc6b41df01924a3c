package price_preview

import (
	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
	pricePreview "github.com/dreamstay-app/DS-BookingGateway/internal/usecase/price_preview"
)

// PricePreviewRequest HTTP request model.
type PricePreviewRequest struct {
	Hotel    string                `json:"hotel"`
	RoomType string                `json:"room_type"`
	Checkin  string                `json:"checkin"`
	Checkout string                `json:"checkout"`
	Counts   domain.OccupancyCount `json:"counts"`
}

// PricePreviewResponse HTTP response model. Price is what the UI must show
// now; on a stale request it is whatever the newer preview settled.
type PricePreviewResponse struct {
	Price   *domain.PriceDetail `json:"price"`
	Changed bool                `json:"changed"`
	Stale   bool                `json:"stale,omitempty"`
	Offer   *string             `json:"offer,omitempty"`
}

// ToUseCaseRequest converts the HTTP request into the use case model.
func (r *PricePreviewRequest) ToUseCaseRequest() *pricePreview.Request {
	return &pricePreview.Request{
		Hotel:    r.Hotel,
		RoomType: r.RoomType,
		Checkin:  r.Checkin,
		Checkout: r.Checkout,
		Counts:   r.Counts,
	}
}
