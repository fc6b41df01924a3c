package modify_reservation

import (
	"context"

	modifyReservation "github.com/dreamstay-app/DS-BookingGateway/internal/usecase/modify_reservation"
)

type ModifyReservationUseCase interface {
	Execute(ctx context.Context, state modifyReservation.SessionState, req *modifyReservation.Request) (*modifyReservation.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
