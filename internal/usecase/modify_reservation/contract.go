package modify_reservation

import (
	"context"
	"time"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
)

// BackendClient is the hotel backend surface the use case depends on.
type BackendClient interface {
	Modify(ctx context.Context, req hotelbackend.ModifyRequest) (*hotelbackend.ModifyResponse, error)
}

// SessionState is the per-guest working state the modification operates on.
type SessionState interface {
	Reservation() (*domain.Reservation, error)
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
