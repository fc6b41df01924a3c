package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/dreamstay-app/DS-BookingGateway/pkg/ptr"
)

func TestActionsFor(t *testing.T) {
	assert.Equal(t, []Action{ActionPay}, ActionsFor(StatusPendientePago))
	assert.Equal(t, []Action{ActionModify, ActionCancel}, ActionsFor(StatusConfirmada))
	assert.Equal(t, []Action{ActionCheckout}, ActionsFor(StatusOcupada))
	assert.Empty(t, ActionsFor(StatusCancelada))
	assert.Empty(t, ActionsFor(StatusCompletada))

	// Estado desconocido: sin acciones, nunca error ni pánico
	assert.Empty(t, ActionsFor(ReservationStatus("en_revision")))
	assert.Empty(t, ActionsFor(""))
}

func confirmedReservation(checkin time.Time) *Reservation {
	return &Reservation{
		ConfirmationCode: "DS-TEST01",
		Status:           StatusConfirmada,
		Checkin:          DateOf(checkin).FormatDMY(),
		Checkout:         DateOf(checkin.AddDate(0, 0, 2)).FormatDMY(),
	}
}

func TestCanBeModified_Window(t *testing.T) {
	now := time.Date(2025, time.October, 10, 12, 0, 0, 0, time.UTC)

	// Check-in pasado mañana: la ventana sigue abierta (36h hasta la medianoche)
	r := confirmedReservation(now.Add(48 * time.Hour))
	assert.True(t, r.CanBeModified(now))

	// Check-in mañana: quedan 12h, la ventana ya cerró
	r = confirmedReservation(now.Add(24 * time.Hour))
	assert.False(t, r.CanBeModified(now))
}

func TestCanBeModified_WindowBoundary(t *testing.T) {
	// Medianoche del check-in exactamente 24h después de now
	now := time.Date(2025, time.October, 10, 0, 0, 0, 0, time.UTC)
	r := confirmedReservation(now.Add(24 * time.Hour))
	assert.True(t, r.CanBeModified(now))

	assert.False(t, r.CanBeModified(now.Add(time.Minute)))
}

func TestCanBeModified_AllowFlag(t *testing.T) {
	now := time.Date(2025, time.October, 10, 12, 0, 0, 0, time.UTC)
	r := confirmedReservation(now.Add(72 * time.Hour))

	r.AllowModify = ptr.Ptr(false)
	assert.False(t, r.CanBeModified(now))

	// true explícito difiere a la tabla, igual que nil
	r.AllowModify = ptr.Ptr(true)
	assert.True(t, r.CanBeModified(now))
}

func TestCanBeModified_StatusGate(t *testing.T) {
	now := time.Date(2025, time.October, 10, 12, 0, 0, 0, time.UTC)
	r := confirmedReservation(now.Add(72 * time.Hour))

	for _, status := range []ReservationStatus{StatusPendientePago, StatusOcupada, StatusCancelada, StatusCompletada} {
		r.Status = status
		assert.False(t, r.CanBeModified(now), "status %s", status)
	}
}

func TestModifyWindowOpen_UnparsableCheckin(t *testing.T) {
	now := time.Date(2025, time.October, 10, 12, 0, 0, 0, time.UTC)
	r := &Reservation{Status: StatusConfirmada, Checkin: "mañana"}

	assert.False(t, r.ModifyWindowOpen(now))
	assert.False(t, r.CanBeModified(now))
}

func TestCanBeCancelled(t *testing.T) {
	r := &Reservation{Status: StatusConfirmada}
	assert.True(t, r.CanBeCancelled())

	r.AllowCancel = ptr.Ptr(false)
	assert.False(t, r.CanBeCancelled())

	r.AllowCancel = nil
	r.Status = StatusCancelada
	assert.False(t, r.CanBeCancelled())
}

func TestCanBePaid(t *testing.T) {
	r := &Reservation{Status: StatusPendientePago}
	assert.True(t, r.CanBePaid())

	r.Status = StatusConfirmada
	assert.False(t, r.CanBePaid())
}

func TestIsTerminal(t *testing.T) {
	for _, status := range []ReservationStatus{StatusCancelada, StatusCompletada} {
		r := &Reservation{Status: status}
		assert.True(t, r.IsTerminal(), "status %s", status)
	}
	for _, status := range []ReservationStatus{StatusPendientePago, StatusConfirmada, StatusOcupada} {
		r := &Reservation{Status: status}
		assert.False(t, r.IsTerminal(), "status %s", status)
	}
}

func TestPermittedActions(t *testing.T) {
	now := time.Date(2025, time.October, 10, 12, 0, 0, 0, time.UTC)

	r := confirmedReservation(now.Add(72 * time.Hour))
	assert.Equal(t, []Action{ActionModify, ActionCancel}, r.PermittedActions(now))

	// Dentro de las 24h solo queda cancelar
	r = confirmedReservation(now.Add(10 * time.Hour))
	assert.Equal(t, []Action{ActionCancel}, r.PermittedActions(now))

	r.AllowCancel = ptr.Ptr(false)
	assert.Empty(t, r.PermittedActions(now))
}

func TestInfoFor(t *testing.T) {
	info := InfoFor(StatusConfirmada)
	assert.Equal(t, "Confirmada", info.Label)
	assert.Equal(t, "#16A34A", info.Color)

	// Desconocido: fallback neutro con el estado crudo como etiqueta
	info = InfoFor(ReservationStatus("en_revision"))
	assert.Equal(t, "en_revision", info.Label)
	assert.Equal(t, "#475569", info.Color)

	info = InfoFor("")
	assert.Equal(t, "Estado desconocido", info.Label)
}
