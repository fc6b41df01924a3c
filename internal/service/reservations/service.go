package reservations

import (
	"context"
	"strings"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
)

// Service implements the session-bound reservation actions: lookup, pay,
// cancel, and the reception check-in/check-out flows. Every action gates on
// the local state machine before calling the backend; the backend's answer
// replaces the session's working copy wholesale.
type Service struct {
	backend BackendClient
	stays   StaysRepository
	time    TimeProvider
	logger  Logger
}

// NewService creates the reservations service.
func NewService(backend BackendClient, stays StaysRepository, time TimeProvider, logger Logger) *Service {
	return &Service{
		backend: backend,
		stays:   stays,
		time:    time,
		logger:  logger,
	}
}

// Lookup finds a reservation by confirmation code and contact email and loads
// it into the session as the working copy.
func (s *Service) Lookup(ctx context.Context, state SessionState, code, email string) (*domain.Reservation, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	email = strings.TrimSpace(email)

	if err := validateLookup(code, email); err != nil {
		s.logger.Warn("Lookup: validation failed: %v", err)
		return nil, err
	}

	s.logger.Info("Lookup: searching reservation code=%s", code)
	reservation, err := s.backend.SearchReservation(ctx, hotelbackend.SearchReservationRequest{
		Code:  code,
		Email: email,
	})
	if err != nil {
		s.logger.Warn("Lookup: backend search failed for code=%s: %v", code, err)
		return nil, err
	}

	state.SetReservation(reservation)
	s.logger.Info("Lookup: loaded reservation code=%s status=%s", code, reservation.Status)
	return reservation, nil
}

// Pay settles a pending reservation. The state machine gate runs first, then
// the card form validation, and only then the backend call.
func (s *Service) Pay(ctx context.Context, state SessionState, input PayInput) (*domain.Reservation, error) {
	current, err := state.Reservation()
	if err != nil {
		return nil, ErrNoReservation
	}

	if !current.CanBePaid() {
		s.logger.Warn("Pay: not allowed for code=%s status=%s", current.ConfirmationCode, current.Status)
		return nil, ErrPayNotAllowed
	}

	if err := validatePayInput(input, s.time.Now()); err != nil {
		s.logger.Warn("Pay: card validation failed for code=%s: %v", current.ConfirmationCode, err)
		return nil, err
	}

	updated, err := s.backend.Pay(ctx, hotelbackend.PayRequest{
		ConfirmationCode: current.ConfirmationCode,
		CardHolder:       input.CardHolder,
		CardNumber:       strings.ReplaceAll(input.CardNumber, " ", ""),
		Expiration:       strings.TrimSpace(input.Expiration),
		CVV:              input.CVV,
		ReceiptEmail:     strings.TrimSpace(input.ReceiptEmail),
	})
	if err != nil {
		return nil, err
	}

	state.SetReservation(updated)
	s.logger.Info("Pay: reservation code=%s now status=%s", updated.ConfirmationCode, updated.Status)
	return updated, nil
}

// Cancel cancels the working copy's reservation, honouring the allow_cancel
// override and the status table.
func (s *Service) Cancel(ctx context.Context, state SessionState) (*hotelbackend.CancelResponse, error) {
	current, err := state.Reservation()
	if err != nil {
		return nil, ErrNoReservation
	}

	if !current.CanBeCancelled() {
		s.logger.Warn("Cancel: not allowed for code=%s status=%s", current.ConfirmationCode, current.Status)
		return nil, ErrCancelNotAllowed
	}

	resp, err := s.backend.Cancel(ctx, current.ConfirmationCode)
	if err != nil {
		return nil, err
	}

	state.SetReservation(resp.Reservation)
	s.logger.Info("Cancel: reservation code=%s cancelled", current.ConfirmationCode)
	return resp, nil
}

// Checkin registers an arrival at reception. Reception works by code alone;
// the backend is the state authority here.
func (s *Service) Checkin(ctx context.Context, code string) (*hotelbackend.CheckinResult, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrCodeRequired
	}

	result, err := s.backend.Checkin(ctx, code)
	if err != nil {
		s.logger.Warn("Checkin: failed for code=%s: %v", code, err)
		return nil, err
	}

	s.logger.Info("Checkin: code=%s hotel=%s at %s", code, result.Hotel, result.Checkin)
	return result, nil
}

// Checkout finishes an occupied stay and records it in the local ledger. The
// checkout already happened backend-side by the time the ledger write runs,
// so a storage failure is logged but never fails the request.
func (s *Service) Checkout(ctx context.Context, code string) (*hotelbackend.CheckoutResult, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil, ErrCodeRequired
	}

	result, err := s.backend.Checkout(ctx, code)
	if err != nil {
		s.logger.Warn("Checkout: failed for code=%s: %v", code, err)
		return nil, err
	}

	stay := &domain.Stay{
		ConfirmationCode: code,
		Hotel:            result.Hotel,
		RoomType:         result.RoomType,
		Guests:           result.Guests,
		Checkin:          result.Checkin,
		Checkout:         result.Checkout,
		Total:            result.Total,
		PriceDetail:      result.PriceDetail,
		Offers:           result.Offers,
	}
	if result.ConfirmationCode != "" {
		stay.ConfirmationCode = result.ConfirmationCode
	}

	if _, err := s.stays.Record(ctx, stay); err != nil {
		s.logger.Error("Checkout: failed to record stay for code=%s: %v", code, err)
	}

	s.logger.Info("Checkout: code=%s hotel=%s at %s", code, result.Hotel, result.Checkout)
	return result, nil
}

// ListStays returns the ledger of completed stays, latest first.
func (s *Service) ListStays(ctx context.Context) ([]*domain.Stay, error) {
	stays, err := s.stays.List(ctx)
	if err != nil {
		s.logger.Error("ListStays: repository error: %v", err)
		return nil, err
	}
	return stays, nil
}
