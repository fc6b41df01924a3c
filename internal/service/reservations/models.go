package reservations

// PayInput carries the payment form fields. Card data passes through to the
// backend and is never logged or stored.
type PayInput struct {
	CardHolder   string
	CardNumber   string
	Expiration   string // MM/AA
	CVV          string
	ReceiptEmail string
}
