package cancel_reservation

import (
	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
	"github.com/dreamstay-app/DS-BookingGateway/pkg/money"
)

// RefundView carries the refund outcome with the amount already formatted
// for display.
type RefundView struct {
	Amount        float64 `json:"amount"`
	AmountDisplay string  `json:"amount_display"`
	Policy        string  `json:"policy"`
}

// CancelReservationResponse HTTP response model: the cancelled reservation
// with its refund outcome.
type CancelReservationResponse struct {
	Reservation *domain.Reservation `json:"reservation"`
	StatusInfo  domain.StatusInfo   `json:"status_info"`
	Refund      *RefundView         `json:"refund,omitempty"`
}

// NewRefundView formats a backend refund for display. A nil refund stays nil.
func NewRefundView(refund *hotelbackend.Refund) *RefundView {
	if refund == nil {
		return nil
	}
	return &RefundView{
		Amount:        refund.Amount,
		AmountDisplay: money.ARSFormatter{}.Format(refund.Amount),
		Policy:        refund.Policy,
	}
}
