package pay_reservation

import (
	"context"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
	"github.com/dreamstay-app/DS-BookingGateway/internal/service/reservations"
)

type ReservationsService interface {
	Pay(ctx context.Context, state reservations.SessionState, input reservations.PayInput) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
