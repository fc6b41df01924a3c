package checkin

import (
	"context"

	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
)

type ReservationsService interface {
	Checkin(ctx context.Context, code string) (*hotelbackend.CheckinResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
