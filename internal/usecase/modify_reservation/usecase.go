package modify_reservation

import (
	"context"
	"time"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
)

// UseCase modifies the session's reservation, or previews the price delta of
// a tentative modification. The local gate (status table, allow_modify flag,
// notice window) runs before any validation or network call; the backend
// revalidates everything on commit.
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

// Execute runs one modification or preview for the session.
func (uc *UseCase) Execute(ctx context.Context, state SessionState, req *Request) (*Response, error) {
	current, err := state.Reservation()
	if err != nil {
		return nil, ErrNoReservation
	}

	uc.logger.Info("ModifyReservation: code=%s, checkin=%s, checkout=%s, guests=%d, preview=%t",
		current.ConfirmationCode, req.Checkin, req.Checkout, len(req.Guests), req.PreviewOnly)

	// 1. Gate local: tabla de estados, flag allow_modify y ventana de aviso
	now := uc.timeProvider.Now()
	if err := gate(current, now); err != nil {
		uc.logger.Warn("ModifyReservation: gate blocked code=%s status=%s: %v",
			current.ConfirmationCode, current.Status, err)
		return nil, err
	}

	// 2. Validación de los nuevos parámetros contra el tipo de habitación actual
	parsed, err := validateRequest(req, current.RoomType, domain.DateOf(now))
	if err != nil {
		uc.logger.Warn("ModifyReservation: validation failed for code=%s: %v", current.ConfirmationCode, err)
		return nil, err
	}

	// 3. Llamada al backend
	guests := make([]hotelbackend.GuestPayload, len(parsed.guests))
	for i, g := range parsed.guests {
		guests[i] = hotelbackend.GuestPayload{Name: g.Name, Birth: g.Birth}
	}

	resp, err := uc.backend.Modify(ctx, hotelbackend.ModifyRequest{
		ConfirmationCode: current.ConfirmationCode,
		Checkin:          parsed.checkin.FormatDMY(),
		Checkout:         parsed.checkout.FormatDMY(),
		Guests:           guests,
		PreviewOnly:      req.PreviewOnly,
	})
	if err != nil {
		uc.logger.Warn("ModifyReservation: backend call failed for code=%s: %v", current.ConfirmationCode, err)
		return nil, err
	}

	// 4. Un preview no toca la sesión; un commit reemplaza la copia entera
	if req.PreviewOnly {
		uc.logger.Info("ModifyReservation: preview for code=%s: new_total=%.2f action=%s",
			current.ConfirmationCode, resp.Preview.NewTotal, resp.Preview.PaymentAction)
		return &Response{Preview: resp.Preview}, nil
	}

	state.SetReservation(resp.Reservation)
	uc.logger.Info("ModifyReservation: committed code=%s total=%.2f",
		resp.Reservation.ConfirmationCode, resp.Reservation.Total)
	return &Response{Reservation: resp.Reservation}, nil
}

// gate applies the local pre-conditions: the allow_modify flag and the
// status table block outright; the notice window gets its own error so the
// UI can explain the 24 hour rule.
func gate(r *domain.Reservation, now time.Time) error {
	if r.AllowModify != nil && !*r.AllowModify {
		return ErrNotAllowed
	}

	permitted := false
	for _, a := range domain.ActionsFor(r.Status) {
		if a == domain.ActionModify {
			permitted = true
			break
		}
	}
	if !permitted {
		return ErrNotAllowed
	}

	if !r.ModifyWindowOpen(now) {
		return ErrWindowClosed
	}
	return nil
}
