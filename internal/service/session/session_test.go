package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

func detailWithTotal(total float64) *domain.PriceDetail {
	return &domain.PriceDetail{
		Nights:           3,
		Counts:           domain.OccupancyCount{Adult: 2},
		PerNight:         domain.PerNightRates{Adult: total / 6},
		SubtotalPerNight: total / 3,
		Total:            total,
	}
}

func reservationWithTotal(total float64) *domain.Reservation {
	return &domain.Reservation{
		ConfirmationCode: "AB12CD34",
		Status:           domain.StatusConfirmada,
		PriceDetail:      detailWithTotal(total),
		Total:            total,
	}
}

func newSession(t *testing.T) *Session {
	t.Helper()
	return NewManager(time.Hour, testLogger{}, nil).Create()
}

func TestSession_NoReservation(t *testing.T) {
	s := newSession(t)

	_, err := s.Reservation()
	assert.ErrorIs(t, err, ErrNoReservation)
	assert.Nil(t, s.BasePrice())
	assert.Nil(t, s.EffectivePrice())
}

func TestSession_SetReservationEstablishesBase(t *testing.T) {
	s := newSession(t)
	s.SetReservation(reservationWithTotal(750))

	r, err := s.Reservation()
	require.NoError(t, err)
	assert.Equal(t, "AB12CD34", r.ConfirmationCode)
	assert.Equal(t, float64(750), s.BasePrice().Total)
	assert.Equal(t, float64(750), s.EffectivePrice().Total)
}

func TestSession_PreviewLifecycle(t *testing.T) {
	s := newSession(t)
	s.SetReservation(reservationWithTotal(750))

	gen := s.BeginPreview()
	rec, ok := s.CompletePreview(gen, detailWithTotal(1000))
	require.True(t, ok)
	assert.True(t, rec.Changed)
	assert.Equal(t, float64(1000), s.EffectivePrice().Total)

	// La base no se toca hasta confirmar
	assert.Equal(t, float64(750), s.BasePrice().Total)
}

func TestSession_FailPreviewRevertsToBase(t *testing.T) {
	s := newSession(t)
	s.SetReservation(reservationWithTotal(750))

	gen := s.BeginPreview()
	_, ok := s.CompletePreview(gen, detailWithTotal(1000))
	require.True(t, ok)

	gen = s.BeginPreview()
	rec, ok := s.FailPreview(gen)
	require.True(t, ok)
	assert.False(t, rec.Changed)
	assert.Equal(t, float64(750), s.EffectivePrice().Total)
}

func TestSession_StalePreviewDiscarded(t *testing.T) {
	s := newSession(t)
	s.SetReservation(reservationWithTotal(750))

	first := s.BeginPreview()
	second := s.BeginPreview()

	// La respuesta del primer preview llega después del segundo begin
	_, ok := s.CompletePreview(first, detailWithTotal(999))
	assert.False(t, ok)
	assert.Equal(t, float64(750), s.EffectivePrice().Total)

	rec, ok := s.CompletePreview(second, detailWithTotal(1000))
	require.True(t, ok)
	assert.True(t, rec.Changed)
	assert.Equal(t, float64(1000), s.EffectivePrice().Total)
}

func TestSession_OutOfOrderSettlement(t *testing.T) {
	s := newSession(t)
	s.SetReservation(reservationWithTotal(750))

	first := s.BeginPreview()
	second := s.BeginPreview()

	// El último preview iniciado gana, aunque su respuesta llegue primero
	rec, ok := s.CompletePreview(second, detailWithTotal(1200))
	require.True(t, ok)
	assert.True(t, rec.Changed)

	_, ok = s.CompletePreview(first, detailWithTotal(999))
	assert.False(t, ok)
	_, ok = s.FailPreview(first)
	assert.False(t, ok)

	assert.Equal(t, float64(1200), s.EffectivePrice().Total)
}

func TestSession_PromoteBase(t *testing.T) {
	s := newSession(t)
	s.SetReservation(reservationWithTotal(750))

	gen := s.BeginPreview()
	_, ok := s.CompletePreview(gen, detailWithTotal(1000))
	require.True(t, ok)

	s.PromoteBase(detailWithTotal(1000))
	assert.Equal(t, float64(1000), s.BasePrice().Total)
	assert.Equal(t, float64(1000), s.EffectivePrice().Total)

	// Un preview pendiente de antes de la promoción ya no puede asentarse
	_, ok = s.CompletePreview(gen, detailWithTotal(555))
	assert.False(t, ok)
}

func TestSession_SetReservationInvalidatesPreview(t *testing.T) {
	s := newSession(t)
	s.SetReservation(reservationWithTotal(750))

	gen := s.BeginPreview()
	s.SetReservation(reservationWithTotal(900))

	_, ok := s.CompletePreview(gen, detailWithTotal(1000))
	assert.False(t, ok)
	assert.Equal(t, float64(900), s.EffectivePrice().Total)
}

func TestManager_CreateAndGet(t *testing.T) {
	m := NewManager(time.Hour, testLogger{}, nil)

	s := m.Create()
	assert.NotEmpty(t, s.ID())
	assert.Equal(t, 1, m.Len())

	got, err := m.Get(s.ID())
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = m.Get("no-such-session")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestManager_Expiry(t *testing.T) {
	m := NewManager(30*time.Minute, testLogger{}, nil)

	current := time.Date(2025, time.October, 10, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return current }

	s := m.Create()

	// Sigue viva dentro del TTL y el acceso renueva el timer
	current = current.Add(20 * time.Minute)
	_, err := m.Get(s.ID())
	require.NoError(t, err)

	current = current.Add(25 * time.Minute)
	_, err = m.Get(s.ID())
	require.NoError(t, err)

	// Sin actividad el TTL la vence
	current = current.Add(31 * time.Minute)
	_, err = m.Get(s.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.Equal(t, 0, m.Len())
}

func TestManager_PurgeExpired(t *testing.T) {
	m := NewManager(30*time.Minute, testLogger{}, nil)

	current := time.Date(2025, time.October, 10, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return current }

	stale := m.Create()
	current = current.Add(40 * time.Minute)
	fresh := m.Create()

	removed := m.PurgeExpired()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, m.Len())

	_, err := m.Get(stale.ID())
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = m.Get(fresh.ID())
	assert.NoError(t, err)
}

func TestManager_Delete(t *testing.T) {
	m := NewManager(time.Hour, testLogger{}, nil)
	s := m.Create()

	m.Delete(s.ID())
	assert.Equal(t, 0, m.Len())

	// Borrar dos veces no falla
	m.Delete(s.ID())
}
