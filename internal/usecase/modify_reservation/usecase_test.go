package modify_reservation

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
	resp    *hotelbackend.ModifyResponse
	err     error
	calls   int
	lastReq hotelbackend.ModifyRequest
}

func (b *stubBackend) Modify(_ context.Context, req hotelbackend.ModifyRequest) (*hotelbackend.ModifyResponse, error) {
	b.calls++
	b.lastReq = req
	return b.resp, b.err
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

func newUseCase(backend *stubBackend) *UseCase {
	uc := NewUseCase(backend, testLogger{})
	uc.timeProvider = fixedTime{testNow}
	return uc
}

func confirmedState() *stubState {
	return &stubState{
		reservation: &domain.Reservation{
			ConfirmationCode: "AB12CD34",
			RoomType:         domain.RoomTypeDoble,
			Status:           domain.StatusConfirmada,
			Checkin:          "15/10/2025", // a 5 días: ventana abierta
			Checkout:         "18/10/2025",
			Total:            750,
		},
	}
}

func validRequest() *Request {
	return &Request{
		Checkin:  "16/10/2025",
		Checkout: "20/10/2025",
		Guests: []GuestInput{
			{Name: "Ana García", Birth: "10/01/1990"},
			{Name: "Luis Pérez", Birth: "20/05/1988"},
		},
	}
}

func TestExecute_Preview(t *testing.T) {
	backend := &stubBackend{
		resp: &hotelbackend.ModifyResponse{
			Preview: &hotelbackend.ModifyPreview{NewTotal: 1000, Difference: 250, PaymentAction: "charge"},
		},
	}
	state := confirmedState()
	uc := newUseCase(backend)

	req := validRequest()
	req.PreviewOnly = true

	resp, err := uc.Execute(context.Background(), state, req)
	require.NoError(t, err)
	require.NotNil(t, resp.Preview)
	assert.Equal(t, "charge", resp.Preview.PaymentAction)
	assert.True(t, backend.lastReq.PreviewOnly)

	// El preview no toca la copia de trabajo
	assert.Equal(t, float64(750), state.reservation.Total)
}

func TestExecute_Commit(t *testing.T) {
	updated := &domain.Reservation{
		ConfirmationCode: "AB12CD34",
		RoomType:         domain.RoomTypeDoble,
		Status:           domain.StatusConfirmada,
		Checkin:          "16/10/2025",
		Checkout:         "20/10/2025",
		Total:            1000,
	}
	backend := &stubBackend{resp: &hotelbackend.ModifyResponse{Reservation: updated}}
	state := confirmedState()
	uc := newUseCase(backend)

	resp, err := uc.Execute(context.Background(), state, validRequest())
	require.NoError(t, err)
	assert.Same(t, updated, resp.Reservation)
	assert.Same(t, updated, state.reservation)

	assert.Equal(t, "16/10/2025", backend.lastReq.Checkin)
	assert.Equal(t, "20/10/2025", backend.lastReq.Checkout)
}

func TestExecute_NoReservation(t *testing.T) {
	uc := newUseCase(&stubBackend{})

	_, err := uc.Execute(context.Background(), &stubState{}, validRequest())
	assert.ErrorIs(t, err, ErrNoReservation)
}

func TestExecute_WindowClosed(t *testing.T) {
	backend := &stubBackend{}
	state := confirmedState()
	state.reservation.Checkin = "11/10/2025" // mañana: quedan 12h

	uc := newUseCase(backend)
	_, err := uc.Execute(context.Background(), state, validRequest())
	assert.ErrorIs(t, err, ErrWindowClosed)
	assert.Zero(t, backend.calls)
}

func TestExecute_GateByStatus(t *testing.T) {
	backend := &stubBackend{}
	uc := newUseCase(backend)

	for _, status := range []domain.ReservationStatus{
		domain.StatusPendientePago,
		domain.StatusOcupada,
		domain.StatusCancelada,
		domain.StatusCompletada,
	} {
		state := confirmedState()
		state.reservation.Status = status

		_, err := uc.Execute(context.Background(), state, validRequest())
		assert.ErrorIs(t, err, ErrNotAllowed, "status %s", status)
	}
	assert.Zero(t, backend.calls)
}

func TestExecute_GateByAllowFlag(t *testing.T) {
	backend := &stubBackend{}
	state := confirmedState()
	state.reservation.AllowModify = ptr.Ptr(false)

	uc := newUseCase(backend)
	_, err := uc.Execute(context.Background(), state, validRequest())
	assert.ErrorIs(t, err, ErrNotAllowed)
	assert.Zero(t, backend.calls)
}

func TestExecute_GateBeforeValidation(t *testing.T) {
	// Con la ventana cerrada ni siquiera se validan los campos
	backend := &stubBackend{}
	state := confirmedState()
	state.reservation.Checkin = "11/10/2025"

	uc := newUseCase(backend)
	req := validRequest()
	req.Guests = nil

	_, err := uc.Execute(context.Background(), state, req)
	assert.ErrorIs(t, err, ErrWindowClosed)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantMsg string
	}{
		{"bad dates", func(r *Request) { r.Checkin = "no-fecha" }, msgDatesInvalid},
		{"checkout not after checkin", func(r *Request) { r.Checkout = r.Checkin }, msgDatesInvalid},
		{"no guests", func(r *Request) { r.Guests = nil }, msgNoGuests},
		{"guest name missing", func(r *Request) { r.Guests[0].Name = "" }, "El nombre del huésped 1 es obligatorio"},
		{"guest birth future", func(r *Request) { r.Guests[1].Birth = "01/01/2026" }, "La fecha de nacimiento del huésped 2 no puede ser futura"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &stubBackend{}
			uc := newUseCase(backend)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), confirmedState(), req)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantMsg, verr.Message)
			assert.Zero(t, backend.calls)
		})
	}
}

func TestExecute_CapacityAgainstCurrentRoom(t *testing.T) {
	backend := &stubBackend{}
	state := confirmedState()
	uc := newUseCase(backend)

	// Tres adultos no entran en la Doble reservada
	req := validRequest()
	req.Guests = append(req.Guests, GuestInput{Name: "Pedro Gómez", Birth: "02/02/1980"})

	_, err := uc.Execute(context.Background(), state, req)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "Adulto: 3 de 2")
	assert.Zero(t, backend.calls)
}

func TestExecute_BackendErrorKeepsCopy(t *testing.T) {
	backend := &stubBackend{err: hotelbackend.ErrUnavailable}
	state := confirmedState()
	original := state.reservation

	uc := newUseCase(backend)
	_, err := uc.Execute(context.Background(), state, validRequest())
	assert.ErrorIs(t, err, hotelbackend.ErrUnavailable)
	assert.Same(t, original, state.reservation)
}
