package get_reservation

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamstay-app/DS-BookingGateway/internal/api/middleware"
	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
	"github.com/dreamstay-app/DS-BookingGateway/internal/service/session"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

func serveWithSession(t *testing.T, s *session.Session) *httptest.ResponseRecorder {
	t.Helper()

	handler := NewHandler(testLogger{})

	req := httptest.NewRequest(http.MethodGet, "/reservation", nil)
	req.Header.Set(middleware.HeaderSessionID, s.ID())
	rec := httptest.NewRecorder()

	middleware.Session(stubProvider{s})(http.HandlerFunc(handler.Handle)).ServeHTTP(rec, req)
	return rec
}

type stubProvider struct{ s *session.Session }

func (p stubProvider) Get(id string) (*session.Session, error) {
	if id == p.s.ID() {
		return p.s, nil
	}
	return nil, session.ErrSessionNotFound
}

func TestHandle_ReturnsWorkingCopy(t *testing.T) {
	manager := session.NewManager(time.Minute, testLogger{}, nil)
	s := manager.Create()

	checkin := domain.DateOf(time.Now().Add(72 * time.Hour))
	s.SetReservation(&domain.Reservation{
		ConfirmationCode: "AB12CD34",
		Hotel:            "Hotel Libertador",
		RoomType:         domain.RoomTypeDoble,
		Status:           domain.StatusConfirmada,
		Checkin:          checkin.FormatDMY(),
		Total:            750,
	})

	rec := serveWithSession(t, s)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Reservation *domain.Reservation `json:"reservation"`
		StatusInfo  domain.StatusInfo   `json:"status_info"`
		Actions     []domain.Action     `json:"actions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "AB12CD34", resp.Reservation.ConfirmationCode)
	assert.Equal(t, "Confirmada", resp.StatusInfo.Label)
	assert.Contains(t, resp.Actions, domain.ActionModify)
	assert.Contains(t, resp.Actions, domain.ActionCancel)
}

func TestHandle_NoReservation(t *testing.T) {
	manager := session.NewManager(time.Minute, testLogger{}, nil)
	s := manager.Create()

	rec := serveWithSession(t, s)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "No hay una reserva")
}
