package reservations

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
	"github.com/dreamstay-app/DS-BookingGateway/pkg/ptr"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type stubBackend struct {
	searchResult   *domain.Reservation
	searchErr      error
	payResult      *domain.Reservation
	payErr         error
	payCalled      bool
	cancelResult   *hotelbackend.CancelResponse
	cancelErr      error
	checkinResult  *hotelbackend.CheckinResult
	checkinErr     error
	checkoutResult *hotelbackend.CheckoutResult
	checkoutErr    error
}

func (b *stubBackend) SearchReservation(_ context.Context, _ hotelbackend.SearchReservationRequest) (*domain.Reservation, error) {
	return b.searchResult, b.searchErr
}

func (b *stubBackend) Pay(_ context.Context, _ hotelbackend.PayRequest) (*domain.Reservation, error) {
	b.payCalled = true
	return b.payResult, b.payErr
}

func (b *stubBackend) Cancel(_ context.Context, _ string) (*hotelbackend.CancelResponse, error) {
	return b.cancelResult, b.cancelErr
}

func (b *stubBackend) Checkin(_ context.Context, _ string) (*hotelbackend.CheckinResult, error) {
	return b.checkinResult, b.checkinErr
}

func (b *stubBackend) Checkout(_ context.Context, _ string) (*hotelbackend.CheckoutResult, error) {
	return b.checkoutResult, b.checkoutErr
}

type stubStays struct {
	recorded []*domain.Stay
	listErr  error
}

func (s *stubStays) Record(_ context.Context, stay *domain.Stay) (*domain.Stay, error) {
	s.recorded = append(s.recorded, stay)
	return stay, nil
}

func (s *stubStays) List(_ context.Context) ([]*domain.Stay, error) {
	return s.recorded, s.listErr
}

type stubState struct {
	reservation *domain.Reservation
}

func (s *stubState) Reservation() (*domain.Reservation, error) {
	if s.reservation == nil {
		return nil, ErrNoReservation
	}
	return s.reservation, nil
}

func (s *stubState) SetReservation(r *domain.Reservation) { s.reservation = r }

var testNow = time.Date(2025, time.October, 10, 12, 0, 0, 0, time.UTC)

func newService(backend *stubBackend, stays *stubStays) *Service {
	return NewService(backend, stays, fixedTime{testNow}, testLogger{})
}

func validPayInput() PayInput {
	return PayInput{
		CardHolder: "Ana García",
		CardNumber: "4111 1111 1111 1111",
		Expiration: "12/27",
		CVV:        "123",
	}
}

func TestLookup(t *testing.T) {
	backend := &stubBackend{
		searchResult: &domain.Reservation{ConfirmationCode: "AB12CD34", Status: domain.StatusConfirmada},
	}
	state := &stubState{}
	svc := newService(backend, &stubStays{})

	reservation, err := svc.Lookup(context.Background(), state, "  ab12cd34 ", "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, "AB12CD34", reservation.ConfirmationCode)

	// La copia de trabajo queda cargada en la sesión
	loaded, err := state.Reservation()
	require.NoError(t, err)
	assert.Same(t, reservation, loaded)
}

func TestLookup_Validation(t *testing.T) {
	svc := newService(&stubBackend{}, &stubStays{})
	state := &stubState{}

	_, err := svc.Lookup(context.Background(), state, "", "ana@example.com")
	assert.ErrorIs(t, err, ErrCodeRequired)

	_, err = svc.Lookup(context.Background(), state, "AB12CD34", "")
	assert.ErrorIs(t, err, ErrEmailRequired)

	_, err = svc.Lookup(context.Background(), state, "AB12CD34", "no-es-un-mail")
	assert.ErrorIs(t, err, ErrEmailInvalid)
}

func TestPay(t *testing.T) {
	backend := &stubBackend{
		payResult: &domain.Reservation{ConfirmationCode: "AB12CD34", Status: domain.StatusConfirmada},
	}
	state := &stubState{
		reservation: &domain.Reservation{ConfirmationCode: "AB12CD34", Status: domain.StatusPendientePago},
	}
	svc := newService(backend, &stubStays{})

	updated, err := svc.Pay(context.Background(), state, validPayInput())
	require.NoError(t, err)
	assert.Equal(t, domain.StatusConfirmada, updated.Status)
	assert.Same(t, updated, state.reservation)
}

func TestPay_GateBeforeValidation(t *testing.T) {
	backend := &stubBackend{}
	state := &stubState{
		reservation: &domain.Reservation{ConfirmationCode: "AB12CD34", Status: domain.StatusConfirmada},
	}
	svc := newService(backend, &stubStays{})

	_, err := svc.Pay(context.Background(), state, validPayInput())
	assert.ErrorIs(t, err, ErrPayNotAllowed)
	assert.False(t, backend.payCalled)
}

func TestPay_NoReservation(t *testing.T) {
	svc := newService(&stubBackend{}, &stubStays{})

	_, err := svc.Pay(context.Background(), &stubState{}, validPayInput())
	assert.ErrorIs(t, err, ErrNoReservation)
}

func TestPay_CardValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*PayInput)
		wantErr error
	}{
		{"missing holder", func(in *PayInput) { in.CardHolder = "  " }, ErrCardHolderRequired},
		{"card too short", func(in *PayInput) { in.CardNumber = "411111111111" }, ErrCardNumberInvalid},
		{"card with letters", func(in *PayInput) { in.CardNumber = "4111x1111111111" }, ErrCardNumberInvalid},
		{"malformed expiry", func(in *PayInput) { in.Expiration = "13/27" }, ErrCardExpirationInvalid},
		{"expired card", func(in *PayInput) { in.Expiration = "09/25" }, ErrCardExpired},
		{"bad cvv", func(in *PayInput) { in.CVV = "12" }, ErrCVVInvalid},
		{"bad receipt email", func(in *PayInput) { in.ReceiptEmail = "sin-arroba" }, ErrEmailInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &stubBackend{}
			state := &stubState{
				reservation: &domain.Reservation{ConfirmationCode: "AB12CD34", Status: domain.StatusPendientePago},
			}
			svc := newService(backend, &stubStays{})

			input := validPayInput()
			tt.mutate(&input)

			_, err := svc.Pay(context.Background(), state, input)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.False(t, backend.payCalled)
		})
	}
}

func TestPay_CardValidThroughExpiryMonth(t *testing.T) {
	backend := &stubBackend{
		payResult: &domain.Reservation{ConfirmationCode: "AB12CD34", Status: domain.StatusConfirmada},
	}
	state := &stubState{
		reservation: &domain.Reservation{ConfirmationCode: "AB12CD34", Status: domain.StatusPendientePago},
	}
	svc := newService(backend, &stubStays{})

	// Octubre 2025 sigue vigente durante todo octubre
	input := validPayInput()
	input.Expiration = "10/25"

	_, err := svc.Pay(context.Background(), state, input)
	assert.NoError(t, err)
}

func TestCancel(t *testing.T) {
	backend := &stubBackend{
		cancelResult: &hotelbackend.CancelResponse{
			Reservation: &domain.Reservation{ConfirmationCode: "AB12CD34", Status: domain.StatusCancelada},
			Refund:      &hotelbackend.Refund{Amount: 750, Policy: "Reembolso total."},
		},
	}
	state := &stubState{
		reservation: &domain.Reservation{ConfirmationCode: "AB12CD34", Status: domain.StatusConfirmada},
	}
	svc := newService(backend, &stubStays{})

	resp, err := svc.Cancel(context.Background(), state)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusCancelada, resp.Reservation.Status)
	assert.Equal(t, domain.StatusCancelada, state.reservation.Status)
}

func TestCancel_Blocked(t *testing.T) {
	svc := newService(&stubBackend{}, &stubStays{})

	// allow_cancel en false bloquea aunque el estado lo permita
	state := &stubState{
		reservation: &domain.Reservation{
			ConfirmationCode: "AB12CD34",
			Status:           domain.StatusConfirmada,
			AllowCancel:      ptr.Ptr(false),
		},
	}
	_, err := svc.Cancel(context.Background(), state)
	assert.ErrorIs(t, err, ErrCancelNotAllowed)

	// Estado terminal
	state = &stubState{
		reservation: &domain.Reservation{ConfirmationCode: "AB12CD34", Status: domain.StatusCompletada},
	}
	_, err = svc.Cancel(context.Background(), state)
	assert.ErrorIs(t, err, ErrCancelNotAllowed)
}

func TestCheckin(t *testing.T) {
	backend := &stubBackend{
		checkinResult: &hotelbackend.CheckinResult{Message: "Check-in realizado", Hotel: "DreamStay Palermo"},
	}
	svc := newService(backend, &stubStays{})

	result, err := svc.Checkin(context.Background(), " ab12cd34 ")
	require.NoError(t, err)
	assert.Equal(t, "Check-in realizado", result.Message)

	_, err = svc.Checkin(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrCodeRequired)
}

func TestCheckout_RecordsStay(t *testing.T) {
	backend := &stubBackend{
		checkoutResult: &hotelbackend.CheckoutResult{
			Message:          "Check-out realizado",
			ConfirmationCode: "AB12CD34",
			Hotel:            "DreamStay Palermo",
			RoomType:         domain.RoomTypeDoble,
			Guests:           []domain.Guest{{Name: "Ana García"}},
			Checkin:          "2025-10-15 14:03:00",
			Checkout:         "2025-10-18 10:21:00",
			Total:            750,
		},
	}
	staysRepo := &stubStays{}
	svc := newService(backend, staysRepo)

	result, err := svc.Checkout(context.Background(), "AB12CD34")
	require.NoError(t, err)
	assert.Equal(t, "Check-out realizado", result.Message)

	require.Len(t, staysRepo.recorded, 1)
	stay := staysRepo.recorded[0]
	assert.Equal(t, "AB12CD34", stay.ConfirmationCode)
	assert.Equal(t, "DreamStay Palermo", stay.Hotel)
	assert.Equal(t, "2025-10-18 10:21:00", stay.Checkout)
	assert.Equal(t, float64(750), stay.Total)
}

func TestListStays(t *testing.T) {
	staysRepo := &stubStays{
		recorded: []*domain.Stay{{ConfirmationCode: "AB12CD34"}},
	}
	svc := newService(&stubBackend{}, staysRepo)

	stays, err := svc.ListStays(context.Background())
	require.NoError(t, err)
	assert.Len(t, stays, 1)
}
