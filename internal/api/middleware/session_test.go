package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dreamstay-app/DS-BookingGateway/internal/service/session"
)

type testLogger struct{}

func (testLogger) Info(string, ...interface{})  {}
func (testLogger) Warn(string, ...interface{})  {}
func (testLogger) Error(string, ...interface{}) {}

func TestSession_InjectsSession(t *testing.T) {
	manager := session.NewManager(time.Minute, testLogger{}, nil)
	s := manager.Create()

	var got *session.Session
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		injected, ok := GetSession(r.Context())
		require.True(t, ok)
		got = injected
	})

	req := httptest.NewRequest(http.MethodGet, "/reservation", nil)
	req.Header.Set(HeaderSessionID, s.ID())
	rec := httptest.NewRecorder()

	Session(manager)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Same(t, s, got)
}

func TestSession_MissingHeader(t *testing.T) {
	manager := session.NewManager(time.Minute, testLogger{}, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a session")
	})

	req := httptest.NewRequest(http.MethodGet, "/reservation", nil)
	rec := httptest.NewRecorder()

	Session(manager)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "sesión activa")
}

func TestSession_UnknownID(t *testing.T) {
	manager := session.NewManager(time.Minute, testLogger{}, nil)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run with an unknown session")
	})

	req := httptest.NewRequest(http.MethodGet, "/reservation", nil)
	req.Header.Set(HeaderSessionID, "no-such-session")
	rec := httptest.NewRecorder()

	Session(manager)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "expiró")
}
