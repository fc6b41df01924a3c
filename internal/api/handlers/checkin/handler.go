package checkin

import (
	"errors"
	"net/http"

	"github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers"
	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
	"github.com/dreamstay-app/DS-BookingGateway/internal/service/reservations"
)

const (
	msgInvalidRequestBody = "El cuerpo de la solicitud es inválido"
	msgCodeRequired       = "El codigo de reserva es obligatorio"
	msgBackendUnavailable = "Error de conexión con el backend"
)

// CheckinRequest HTTP request model.
type CheckinRequest struct {
	ConfirmationCode string `json:"confirmation_code"`
}

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

// Handle POST /api/v1/reception/checkin
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CheckinRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reception/checkin - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Checkin(r.Context(), req.ConfirmationCode)
	if err != nil {
		var businessErr *hotelbackend.BusinessError

		switch {
		case errors.Is(err, reservations.ErrCodeRequired):
			handlers.RespondBadRequest(w, msgCodeRequired)

		case errors.As(err, &businessErr):
			h.logger.Warn("POST /reception/checkin - Backend rejected check-in: code=%s, status=%d",
				req.ConfirmationCode, businessErr.StatusCode)
			handlers.RespondBusinessMessages(w, businessErr.StatusCode, businessErr.Messages)

		case errors.Is(err, hotelbackend.ErrUnavailable):
			h.logger.Error("POST /reception/checkin - Backend unavailable: %v", err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("POST /reception/checkin - Failed to check in: code=%s, error=%v",
				req.ConfirmationCode, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reception/checkin - Check-in registered: code=%s, hotel=%s",
		req.ConfirmationCode, result.Hotel)
	handlers.RespondJSON(w, http.StatusOK, result)
}
