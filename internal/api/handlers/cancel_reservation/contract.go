package cancel_reservation

import (
	"context"

	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
	"github.com/dreamstay-app/DS-BookingGateway/internal/service/reservations"
)

type ReservationsService interface {
	Cancel(ctx context.Context, state reservations.SessionState) (*hotelbackend.CancelResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
