package create_reservation

import (
	"context"
	"strings"

	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
)

// UseCase runs the full reservation pipeline: local validation of the whole
// form, then the backend create, then the session takes the result as its
// working copy and price baseline.
type UseCase struct {
	backend      BackendClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case.
func NewUseCase(backend BackendClient, logger Logger) *UseCase {
	return &UseCase{
		backend:      backend,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute creates a reservation for the session.
func (uc *UseCase) Execute(ctx context.Context, state SessionState, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: hotel=%s, type=%s, checkin=%s, checkout=%s, guests=%d",
		req.Hotel, req.RoomType, req.Checkin, req.Checkout, len(req.Guests))

	// 1. Validación local completa: nada inválido cruza la red
	parsed, err := validateRequest(req, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Creación en el backend, fechas normalizadas a dd/mm/yyyy
	guests := make([]hotelbackend.GuestPayload, len(parsed.guests))
	for i, g := range parsed.guests {
		guests[i] = hotelbackend.GuestPayload{Name: g.Name, Birth: g.Birth}
	}

	reservation, err := uc.backend.CreateReservation(ctx, hotelbackend.CreateReservationRequest{
		Hotel:        strings.TrimSpace(req.Hotel),
		RoomType:     req.RoomType,
		Checkin:      parsed.checkin.FormatDMY(),
		Checkout:     parsed.checkout.FormatDMY(),
		ContactEmail: strings.TrimSpace(req.ContactEmail),
		Guests:       guests,
	})
	if err != nil {
		uc.logger.Warn("CreateReservation: backend create failed: %v", err)
		return nil, err
	}

	// 3. La reserva creada pasa a ser la copia de trabajo y el precio base
	state.SetReservation(reservation)

	uc.logger.Info("CreateReservation: created code=%s status=%s total=%.2f",
		reservation.ConfirmationCode, reservation.Status, reservation.Total)
	return &Response{Reservation: reservation}, nil
}
