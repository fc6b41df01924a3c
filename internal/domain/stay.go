package domain

import "time"

// Stay is one completed stay as recorded at check-out: the reception ledger
// row. Checkin and Checkout are the real timestamps, not the reserved dates.
type Stay struct {
	ID               int64        `json:"id"`
	ConfirmationCode string       `json:"confirmation_code"`
	Hotel            string       `json:"hotel"`
	RoomType         string       `json:"room_type"`
	Guests           []Guest      `json:"guests"`
	Checkin          string       `json:"checkin"`  // "2006-01-02 15:04:05"
	Checkout         string       `json:"checkout"` // "2006-01-02 15:04:05"
	Total            float64      `json:"total"`
	PriceDetail      *PriceDetail `json:"price_detail,omitempty"`
	Offers           []string     `json:"offers,omitempty"`
	RecordedAt       time.Time    `json:"recorded_at"`
}
