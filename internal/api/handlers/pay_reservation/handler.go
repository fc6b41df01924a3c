package pay_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers"
	"github.com/dreamstay-app/DS-BookingGateway/internal/api/middleware"
	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
	"github.com/dreamstay-app/DS-BookingGateway/internal/service/reservations"
)

// Same wording the payment form shows per field.
const (
	msgInvalidRequestBody  = "El cuerpo de la solicitud es inválido"
	msgNoReservation       = "No hay una reserva cargada en la sesión"
	msgPayNotAllowed       = "La reserva no admite el pago en su estado actual."
	msgCardHolderInvalid   = "El nombre del titular solo admite letras y espacios."
	msgCardNumberInvalid   = "El número de tarjeta debe tener entre 13 y 19 dígitos."
	msgExpirationInvalid   = "La fecha debe tener formato MM/AA."
	msgCardExpired         = "La tarjeta debe estar vigente."
	msgCVVInvalid          = "El CVV debe tener 3 o 4 dígitos."
	msgReceiptEmailInvalid = "Ingresá un correo válido para recibir el comprobante."
	msgBackendUnavailable  = "Error de conexión con el backend"
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

// Handle POST /api/v1/reservation/pay
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	state, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var req PayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservation/pay - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	reservation, err := h.service.Pay(r.Context(), state, req.ToPayInput())
	if err != nil {
		var businessErr *hotelbackend.BusinessError

		switch {
		case errors.Is(err, reservations.ErrNoReservation):
			h.logger.Warn("POST /reservation/pay - No reservation in session: id=%s", state.ID())
			handlers.RespondNotFound(w, msgNoReservation)

		case errors.Is(err, reservations.ErrPayNotAllowed):
			h.logger.Warn("POST /reservation/pay - Payment not allowed: session=%s", state.ID())
			handlers.RespondConflict(w, msgPayNotAllowed)

		case errors.Is(err, reservations.ErrCardHolderRequired):
			handlers.RespondBadRequest(w, msgCardHolderInvalid)

		case errors.Is(err, reservations.ErrCardNumberInvalid):
			handlers.RespondBadRequest(w, msgCardNumberInvalid)

		case errors.Is(err, reservations.ErrCardExpirationInvalid):
			handlers.RespondBadRequest(w, msgExpirationInvalid)

		case errors.Is(err, reservations.ErrCardExpired):
			handlers.RespondBadRequest(w, msgCardExpired)

		case errors.Is(err, reservations.ErrCVVInvalid):
			handlers.RespondBadRequest(w, msgCVVInvalid)

		case errors.Is(err, reservations.ErrEmailInvalid):
			handlers.RespondBadRequest(w, msgReceiptEmailInvalid)

		case errors.As(err, &businessErr):
			h.logger.Warn("POST /reservation/pay - Backend rejected payment: session=%s, status=%d",
				state.ID(), businessErr.StatusCode)
			handlers.RespondBusinessMessages(w, businessErr.StatusCode, businessErr.Messages)

		case errors.Is(err, hotelbackend.ErrUnavailable):
			h.logger.Error("POST /reservation/pay - Backend unavailable: %v", err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("POST /reservation/pay - Failed to pay reservation: session=%s, error=%v",
				state.ID(), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservation/pay - Payment accepted: code=%s, status=%s",
		reservation.ConfirmationCode, reservation.Status)
	handlers.RespondJSON(w, http.StatusOK, NewReservationResponse(reservation, time.Now()))
}
