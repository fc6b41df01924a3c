package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers"
	"github.com/dreamstay-app/DS-BookingGateway/internal/api/middleware"
	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
	"github.com/dreamstay-app/DS-BookingGateway/internal/service/reservations"
)

const (
	msgNoReservation      = "No hay una reserva cargada en la sesión"
	msgCancelNotAllowed   = "La reserva no permite cancelación en su estado actual."
	msgBackendUnavailable = "Error de conexión con el backend"
)

type Handler struct {
	service ReservationsService
	logger  Logger
}

func NewHandler(service ReservationsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservation/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	state, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.Cancel(r.Context(), state)
	if err != nil {
		var businessErr *hotelbackend.BusinessError

		switch {
		case errors.Is(err, reservations.ErrNoReservation):
			h.logger.Warn("POST /reservation/cancel - No reservation in session: id=%s", state.ID())
			handlers.RespondNotFound(w, msgNoReservation)

		case errors.Is(err, reservations.ErrCancelNotAllowed):
			h.logger.Warn("POST /reservation/cancel - Cancellation not allowed: session=%s", state.ID())
			handlers.RespondForbidden(w, msgCancelNotAllowed)

		case errors.As(err, &businessErr):
			h.logger.Warn("POST /reservation/cancel - Backend rejected cancellation: session=%s, status=%d",
				state.ID(), businessErr.StatusCode)
			handlers.RespondBusinessMessages(w, businessErr.StatusCode, businessErr.Messages)

		case errors.Is(err, hotelbackend.ErrUnavailable):
			h.logger.Error("POST /reservation/cancel - Backend unavailable: %v", err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("POST /reservation/cancel - Failed to cancel reservation: session=%s, error=%v",
				state.ID(), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservation/cancel - Reservation cancelled: code=%s",
		result.Reservation.ConfirmationCode)
	handlers.RespondJSON(w, http.StatusOK, CancelReservationResponse{
		Reservation: result.Reservation,
		StatusInfo:  domain.InfoFor(result.Reservation.Status),
		Refund:      NewRefundView(result.Refund),
	})
}
