package list_stays

import (
	"context"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
)

type ReservationsService interface {
	ListStays(ctx context.Context) ([]*domain.Stay, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
