package create_session

import "github.com/dreamstay-app/DS-BookingGateway/internal/service/session"

// SessionManager is the session store surface the handler depends on.
type SessionManager interface {
	Create() *session.Session
	Delete(id string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
