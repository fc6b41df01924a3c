package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers"
	"github.com/dreamstay-app/DS-BookingGateway/internal/service/session"
)

// HeaderSessionID carries the guest session identifier.
const HeaderSessionID = "X-Session-ID"

const (
	msgSessionRequired = "Se requiere una sesión activa"
	msgSessionExpired  = "La sesión expiró o no existe. Iniciá una nueva sesión."
)

type sessionKeyType struct{}

var sessionKey sessionKeyType

// SessionProvider resolves session IDs to live sessions.
type SessionProvider interface {
	Get(id string) (*session.Session, error)
}

// Session requires a valid X-Session-ID header and injects the resolved
// session into the request context.
func Session(provider SessionProvider) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(HeaderSessionID)
			if id == "" {
				handlers.RespondUnauthorized(w, msgSessionRequired)
				return
			}

			s, err := provider.Get(id)
			if err != nil {
				handlers.RespondUnauthorized(w, msgSessionExpired)
				return
			}

			ctx := context.WithValue(r.Context(), sessionKey, s)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSession returns the session injected by the Session middleware.
func GetSession(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*session.Session)
	return s, ok
}
