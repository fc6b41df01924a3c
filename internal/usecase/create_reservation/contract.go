package create_reservation

import (
	"context"
	"time"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
)

// BackendClient is the hotel backend surface the use case depends on.
type BackendClient interface {
	CreateReservation(ctx context.Context, req hotelbackend.CreateReservationRequest) (*domain.Reservation, error)
}

// SessionState receives the created reservation as the session's working copy.
type SessionState interface {
	SetReservation(r *domain.Reservation)
}

// TimeProvider supplies the current time. Swappable in tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger defines the logging contract the use case depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
