package modify_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers"
	"github.com/dreamstay-app/DS-BookingGateway/internal/api/middleware"
	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
	modifyReservation "github.com/dreamstay-app/DS-BookingGateway/internal/usecase/modify_reservation"
)

const (
	msgInvalidRequestBody = "El cuerpo de la solicitud es inválido"
	msgNoReservation      = "No hay una reserva cargada en la sesión"
	msgNotAllowed         = "La reserva no permite modificaciones en su estado actual."
	msgWindowClosed       = "Las modificaciones se permiten hasta 24 horas antes del check-in."
	msgBackendUnavailable = "Error de conexión con el backend"
)

type Handler struct {
	useCase ModifyReservationUseCase
	logger  Logger
}

func NewHandler(useCase ModifyReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	state, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var req ModifyReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservation - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), state, req.ToUseCaseRequest())
	if err != nil {
		var validationErr *modifyReservation.ValidationError
		var businessErr *hotelbackend.BusinessError

		switch {
		case errors.Is(err, modifyReservation.ErrNoReservation):
			h.logger.Warn("PUT /reservation - No reservation in session: id=%s", state.ID())
			handlers.RespondNotFound(w, msgNoReservation)

		case errors.Is(err, modifyReservation.ErrNotAllowed):
			h.logger.Warn("PUT /reservation - Modification not allowed: session=%s", state.ID())
			handlers.RespondForbidden(w, msgNotAllowed)

		case errors.Is(err, modifyReservation.ErrWindowClosed):
			h.logger.Warn("PUT /reservation - Modification window closed: session=%s", state.ID())
			handlers.RespondConflict(w, msgWindowClosed)

		case errors.As(err, &validationErr):
			h.logger.Warn("PUT /reservation - Validation failed: session=%s: %s", state.ID(), validationErr.Message)
			handlers.RespondBadRequest(w, validationErr.Message)

		case errors.As(err, &businessErr):
			h.logger.Warn("PUT /reservation - Backend rejected modification: session=%s, status=%d",
				state.ID(), businessErr.StatusCode)
			handlers.RespondBusinessMessages(w, businessErr.StatusCode, businessErr.Messages)

		case errors.Is(err, hotelbackend.ErrUnavailable):
			h.logger.Error("PUT /reservation - Backend unavailable: %v", err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("PUT /reservation - Failed to modify reservation: session=%s, error=%v",
				state.ID(), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.Preview != nil {
		h.logger.Info("PUT /reservation - Preview computed: session=%s, new_total=%.2f, action=%s",
			state.ID(), result.Preview.NewTotal, result.Preview.PaymentAction)
	} else {
		h.logger.Info("PUT /reservation - Modification committed: code=%s, total=%.2f",
			result.Reservation.ConfirmationCode, result.Reservation.Total)
	}
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, time.Now()))
}
