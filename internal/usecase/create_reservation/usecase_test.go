package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type stubBackend struct {
	result  *domain.Reservation
	err     error
	calls   int
	lastReq hotelbackend.CreateReservationRequest
}

func (b *stubBackend) CreateReservation(_ context.Context, req hotelbackend.CreateReservationRequest) (*domain.Reservation, error) {
	b.calls++
	b.lastReq = req
	return b.result, b.err
}

type stubState struct {
	reservation *domain.Reservation
}

func (s *stubState) SetReservation(r *domain.Reservation) { s.reservation = r }

var testNow = time.Date(2025, time.October, 10, 12, 0, 0, 0, time.UTC)

func newUseCase(backend *stubBackend) *UseCase {
	uc := NewUseCase(backend, testLogger{})
	uc.timeProvider = fixedTime{testNow}
	return uc
}

func validRequest() *Request {
	return &Request{
		Hotel:        "DreamStay Palermo",
		RoomType:     domain.RoomTypeDoble,
		Checkin:      "15/10/2025",
		Checkout:     "18/10/2025",
		ContactEmail: "ana@example.com",
		Guests: []GuestInput{
			{Name: "Ana García", Birth: "10/01/1990"},
			{Name: "Luis Pérez", Birth: "20/05/1988"},
			{Name: "Sofía Pérez", Birth: "03/03/2018"},
		},
	}
}

func TestExecute(t *testing.T) {
	backend := &stubBackend{
		result: &domain.Reservation{
			ConfirmationCode: "AB12CD34",
			Status:           domain.StatusPendientePago,
			Total:            750,
			PriceDetail:      &domain.PriceDetail{Total: 750},
		},
	}
	state := &stubState{}
	uc := newUseCase(backend)

	resp, err := uc.Execute(context.Background(), state, validRequest())
	require.NoError(t, err)
	assert.Equal(t, "AB12CD34", resp.Reservation.ConfirmationCode)

	// La sesión queda con la copia de trabajo cargada
	assert.Same(t, resp.Reservation, state.reservation)

	// Doble con 2 adultos y 1 niño pasa la validación local completa
	require.Len(t, backend.lastReq.Guests, 3)
	assert.Equal(t, "10/01/1990", backend.lastReq.Guests[0].Birth)
}

func TestExecute_CapacityRejectedBeforeNetwork(t *testing.T) {
	backend := &stubBackend{}
	state := &stubState{}
	uc := newUseCase(backend)

	// Doble admite 2 adultos y 1 niño: un niño más se rechaza localmente
	req := validRequest()
	req.Guests = append(req.Guests, GuestInput{Name: "Tomás Pérez", Birth: "01/06/2020"})

	_, err := uc.Execute(context.Background(), state, req)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Zero(t, backend.calls)
	assert.Nil(t, state.reservation)
}

func TestExecute_NoAdultRejected(t *testing.T) {
	backend := &stubBackend{}
	uc := newUseCase(backend)

	req := validRequest()
	req.Guests = []GuestInput{{Name: "Sofía Pérez", Birth: "03/03/2018"}}

	_, err := uc.Execute(context.Background(), &stubState{}, req)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Debe haber al menos un adulto en la reserva.", verr.Message)
	assert.Zero(t, backend.calls)
}

func TestExecute_FormValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Request)
		wantMsg string
	}{
		{"missing email", func(r *Request) { r.ContactEmail = " " }, msgEmailRequired},
		{"bad email", func(r *Request) { r.ContactEmail = "sin-arroba" }, msgEmailInvalid},
		{"missing hotel", func(r *Request) { r.Hotel = "" }, msgHotelRequired},
		{"missing room type", func(r *Request) { r.RoomType = "" }, msgRoomTypeRequired},
		{"unknown room type", func(r *Request) { r.RoomType = "Penthouse" }, msgRoomTypeInvalid},
		{"bad checkin", func(r *Request) { r.Checkin = "no-fecha" }, msgDatesInvalid},
		{"checkout before checkin", func(r *Request) { r.Checkout = "14/10/2025" }, msgDatesInvalid},
		{"no guests", func(r *Request) { r.Guests = nil }, msgNoGuests},
		{"guest name missing", func(r *Request) { r.Guests[1].Name = "  " }, "El nombre del huésped 2 es obligatorio"},
		{"guest name with digits", func(r *Request) { r.Guests[0].Name = "Ana 2" }, "El nombre del huésped 1 solo admite letras y espacios"},
		{"guest birth malformed", func(r *Request) { r.Guests[2].Birth = "31/02/2018" }, "La fecha de nacimiento del huésped 3 debe tener formato dd/mm/yyyy"},
		{"guest birth in future", func(r *Request) { r.Guests[0].Birth = "01/01/2026" }, "La fecha de nacimiento del huésped 1 no puede ser futura"},
		{"guest birth implausible", func(r *Request) { r.Guests[0].Birth = "01/01/1890" }, "La fecha de nacimiento del huésped 1 debe tener formato dd/mm/yyyy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			backend := &stubBackend{}
			uc := newUseCase(backend)

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), &stubState{}, req)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantMsg, verr.Message)
			assert.Zero(t, backend.calls)
		})
	}
}

func TestExecute_GuestNamesWithAccents(t *testing.T) {
	backend := &stubBackend{result: &domain.Reservation{ConfirmationCode: "AB12CD34"}}
	uc := newUseCase(backend)

	req := validRequest()
	req.Guests[0].Name = "María José Ñandú"

	_, err := uc.Execute(context.Background(), &stubState{}, req)
	assert.NoError(t, err)
}

func TestExecute_BackendErrorKeepsSessionUntouched(t *testing.T) {
	backend := &stubBackend{
		err: &hotelbackend.BusinessError{
			StatusCode: 400,
			Messages:   []string{"La habitación seleccionada no tiene disponibilidad para esas fechas"},
		},
	}
	state := &stubState{}
	uc := newUseCase(backend)

	_, err := uc.Execute(context.Background(), state, validRequest())
	assert.ErrorIs(t, err, hotelbackend.ErrBusiness)
	assert.Nil(t, state.reservation)
}
