package reservations

import (
	"strconv"
	"strings"
	"time"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
)

// validatePayInput checks the payment form the way the original booking form
// does: holder present, 13 to 19 card digits, MM/AA expiry still in force,
// CVV of 3 or 4 digits, optional receipt email well-formed.
func validatePayInput(input PayInput, now time.Time) error {
	if strings.TrimSpace(input.CardHolder) == "" {
		return ErrCardHolderRequired
	}

	cardNumber := strings.ReplaceAll(input.CardNumber, " ", "")
	if !domain.CardNumberRegexp.MatchString(cardNumber) {
		return ErrCardNumberInvalid
	}

	match := domain.ExpirationRegexp.FindStringSubmatch(strings.TrimSpace(input.Expiration))
	if match == nil {
		return ErrCardExpirationInvalid
	}
	month, _ := strconv.Atoi(match[1])
	year, _ := strconv.Atoi(match[2])

	// Vigente hasta el último día del mes indicado
	expiryEnd := time.Date(2000+year, time.Month(month), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	if !now.Before(expiryEnd) {
		return ErrCardExpired
	}

	if !domain.CVVRegexp.MatchString(input.CVV) {
		return ErrCVVInvalid
	}

	if email := strings.TrimSpace(input.ReceiptEmail); email != "" && !domain.EmailRegexp.MatchString(email) {
		return ErrEmailInvalid
	}

	return nil
}

// validateLookup checks the code+email pair before hitting the backend.
func validateLookup(code, email string) error {
	if code == "" {
		return ErrCodeRequired
	}
	if email == "" {
		return ErrEmailRequired
	}
	if !domain.EmailRegexp.MatchString(email) {
		return ErrEmailInvalid
	}
	return nil
}
