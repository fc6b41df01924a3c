package search_reservation

import (
	"context"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
	"github.com/dreamstay-app/DS-BookingGateway/internal/service/reservations"
)

type ReservationsService interface {
	Lookup(ctx context.Context, state reservations.SessionState, code, email string) (*domain.Reservation, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
