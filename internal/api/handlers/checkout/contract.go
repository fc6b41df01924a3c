package checkout

import (
	"context"

	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
)

type ReservationsService interface {
	Checkout(ctx context.Context, code string) (*hotelbackend.CheckoutResult, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
