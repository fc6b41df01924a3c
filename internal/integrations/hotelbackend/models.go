package hotelbackend

import "github.com/dreamstay-app/DS-BookingGateway/internal/domain"

// SearchRequest is the hotel availability query forwarded to the backend.
// Dates travel in DD/MM/YYYY, already normalized by the gateway.
type SearchRequest struct {
	City     string `json:"city"`
	Checkin  string `json:"checkin"`
	Checkout string `json:"checkout"`
	RoomType string `json:"room_type"`
	Adults   int    `json:"adults"`
	Children int    `json:"children"`
	Babies   int    `json:"babies"`
}

// Room is one available room inside a search result.
type Room struct {
	Name              string              `json:"name"`
	Type              string              `json:"type"`
	Capacity          string              `json:"capacity"`
	CapacityBreakdown domain.RoomCapacity `json:"capacity_breakdown"`
	State             string              `json:"state"`
	PricePerNight     float64             `json:"price_per_night"`
	Price             float64             `json:"price"`
	Offer             *string             `json:"offer,omitempty"`
	PriceDetail       *domain.PriceDetail `json:"price_detail,omitempty"`
}

// HotelResult is one hotel with its available rooms, cheapest first.
type HotelResult struct {
	Hotel  string   `json:"hotel"`
	City   string   `json:"city"`
	Offers []string `json:"offers"`
	Rooms  []Room   `json:"rooms"`
	Nights int      `json:"nights"`
}

// GuestPayload is one guest in a create/modify request. Derived fields (age,
// category) are backend-computed and never sent.
type GuestPayload struct {
	Name  string `json:"name"`
	Birth string `json:"birth"` // DD/MM/YYYY
}

// CreateReservationRequest creates a reservation.
type CreateReservationRequest struct {
	Hotel        string         `json:"hotel"`
	RoomType     string         `json:"room_type"`
	Checkin      string         `json:"checkin"`
	Checkout     string         `json:"checkout"`
	ContactEmail string         `json:"contact_email"`
	Guests       []GuestPayload `json:"guests"`
}

// SearchReservationRequest looks a reservation up by code and contact email.
type SearchReservationRequest struct {
	Code  string `json:"code"`
	Email string `json:"email"`
}

type reservationEnvelope struct {
	Reservation *domain.Reservation `json:"reservation"`
}

// PricePreviewRequest asks the backend to recompute a price for tentative
// stay parameters.
type PricePreviewRequest struct {
	Hotel    string                `json:"hotel"`
	RoomType string                `json:"room_type"`
	Checkin  string                `json:"checkin"`
	Checkout string                `json:"checkout"`
	Counts   domain.OccupancyCount `json:"counts"`
}

// PricePreviewResponse is the backend's recomputed price detail.
type PricePreviewResponse struct {
	PriceDetail *domain.PriceDetail `json:"price_detail"`
	Offer       *string             `json:"offer,omitempty"`
}

// PayRequest settles a pending reservation. Card data is forwarded as
// received; the gateway validates format only and stores nothing.
type PayRequest struct {
	ConfirmationCode string `json:"confirmation_code"`
	CardHolder       string `json:"card_holder"`
	CardNumber       string `json:"card_number"`
	Expiration       string `json:"expiration"` // MM/AA
	CVV              string `json:"cvv"`
	ReceiptEmail     string `json:"receipt_email,omitempty"`
}

// ModifyRequest changes the stay parameters of a reservation. With
// PreviewOnly set the backend computes the price delta without committing.
type ModifyRequest struct {
	ConfirmationCode string         `json:"confirmation_code"`
	Checkin          string         `json:"checkin"`
	Checkout         string         `json:"checkout"`
	Guests           []GuestPayload `json:"guests"`
	PreviewOnly      bool           `json:"preview_only"`
}

// ModifyPreview is the price delta for a tentative modification.
type ModifyPreview struct {
	NewTotal      float64 `json:"new_total"`
	Difference    float64 `json:"difference"`
	PaymentAction string  `json:"payment_action"` // charge | refund | no_refund
}

// ModifyResponse carries either the preview or the committed reservation.
type ModifyResponse struct {
	Preview     *ModifyPreview      `json:"preview,omitempty"`
	Reservation *domain.Reservation `json:"reservation,omitempty"`
}

// Refund is the backend's cancellation refund decision.
type Refund struct {
	Amount float64 `json:"amount"`
	Policy string  `json:"policy"`
}

// CancelResponse is the outcome of a cancellation.
type CancelResponse struct {
	Reservation *domain.Reservation `json:"reservation"`
	Refund      *Refund             `json:"refund,omitempty"`
}

type cancelRequest struct {
	ConfirmationCode string `json:"confirmation_code"`
}

type receptionRequest struct {
	ConfirmationCode string `json:"confirmation_code"`
}

// CheckinResult confirms a registered check-in with its real timestamp.
type CheckinResult struct {
	Message  string `json:"message"`
	Hotel    string `json:"hotel"`
	RoomType string `json:"room_type"`
	Checkin  string `json:"checkin"` // "2006-01-02 15:04:05"
}

// CheckoutResult confirms a finished stay. It carries the full ledger entry
// the backend materialized so the gateway can record it locally.
type CheckoutResult struct {
	Message          string              `json:"message"`
	ConfirmationCode string              `json:"confirmation_code"`
	Hotel            string              `json:"hotel"`
	RoomType         string              `json:"room_type"`
	Guests           []domain.Guest      `json:"guests,omitempty"`
	Checkin          string              `json:"checkin,omitempty"` // real arrival timestamp
	Checkout         string              `json:"checkout"`
	Total            float64             `json:"total"`
	PriceDetail      *domain.PriceDetail `json:"price_detail,omitempty"`
	Offers           []string            `json:"offers,omitempty"`
}

// errorBody is the backend's rejection payload: single message or list.
type errorBody struct {
	Error  string   `json:"error"`
	Errors []string `json:"errors"`
}

func (b errorBody) messages() []string {
	if len(b.Errors) > 0 {
		return b.Errors
	}
	if b.Error != "" {
		return []string{b.Error}
	}
	return nil
}
