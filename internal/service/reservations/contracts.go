package reservations

import (
	"context"
	"time"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
)

// BackendClient is the hotel backend surface the service depends on.
type BackendClient interface {
	SearchReservation(ctx context.Context, req hotelbackend.SearchReservationRequest) (*domain.Reservation, error)
	Pay(ctx context.Context, req hotelbackend.PayRequest) (*domain.Reservation, error)
	Cancel(ctx context.Context, confirmationCode string) (*hotelbackend.CancelResponse, error)
	Checkin(ctx context.Context, confirmationCode string) (*hotelbackend.CheckinResult, error)
	Checkout(ctx context.Context, confirmationCode string) (*hotelbackend.CheckoutResult, error)
}

// StaysRepository is the ledger of completed stays.
type StaysRepository interface {
	Record(ctx context.Context, stay *domain.Stay) (*domain.Stay, error)
	List(ctx context.Context) ([]*domain.Stay, error)
}

// SessionState is the per-guest working state the actions operate on.
type SessionState interface {
	Reservation() (*domain.Reservation, error)
	SetReservation(r *domain.Reservation)
}

// TimeProvider supplies the current time. Swappable in tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger defines the logging contract the service depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
