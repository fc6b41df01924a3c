package search_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers"
	"github.com/dreamstay-app/DS-BookingGateway/internal/api/middleware"
	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
	"github.com/dreamstay-app/DS-BookingGateway/internal/service/reservations"
)

// Same wording the booking backend uses for this form.
const (
	msgInvalidRequestBody = "El cuerpo de la solicitud es inválido"
	msgCodeRequired       = "El codigo de reserva es obligatorio"
	msgEmailRequired      = "El correo electronico es obligatorio"
	msgEmailInvalid       = "El correo electronico tiene un formato invalido"
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

// Handle POST /api/v1/reservations/search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	state, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var req SearchReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations/search - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	reservation, err := h.service.Lookup(r.Context(), state, req.Code, req.Email)
	if err != nil {
		var businessErr *hotelbackend.BusinessError

		switch {
		case errors.Is(err, reservations.ErrCodeRequired):
			handlers.RespondBadRequest(w, msgCodeRequired)

		case errors.Is(err, reservations.ErrEmailRequired):
			handlers.RespondBadRequest(w, msgEmailRequired)

		case errors.Is(err, reservations.ErrEmailInvalid):
			handlers.RespondBadRequest(w, msgEmailInvalid)

		case errors.As(err, &businessErr):
			h.logger.Warn("POST /reservations/search - Backend rejected lookup: code=%s, status=%d",
				req.Code, businessErr.StatusCode)
			handlers.RespondBusinessMessages(w, businessErr.StatusCode, businessErr.Messages)

		case errors.Is(err, hotelbackend.ErrUnavailable):
			h.logger.Error("POST /reservations/search - Backend unavailable: %v", err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("POST /reservations/search - Failed to look up reservation: code=%s, error=%v",
				req.Code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations/search - Reservation loaded: code=%s, status=%s, session=%s",
		reservation.ConfirmationCode, reservation.Status, state.ID())
	handlers.RespondJSON(w, http.StatusOK, NewReservationResponse(reservation, time.Now()))
}
