package create_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers"
	"github.com/dreamstay-app/DS-BookingGateway/internal/api/middleware"
	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
	createReservation "github.com/dreamstay-app/DS-BookingGateway/internal/usecase/create_reservation"
)

const (
	msgInvalidRequestBody = "El cuerpo de la solicitud es inválido"
	msgBackendUnavailable = "Error de conexión con el backend"
)

type Handler struct {
	useCase CreateReservationUseCase
	logger  Logger
}

func NewHandler(useCase CreateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	state, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var req CreateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), state, req.ToUseCaseRequest())
	if err != nil {
		var validationErr *createReservation.ValidationError
		var businessErr *hotelbackend.BusinessError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /reservations - Validation failed: hotel=%s, room_type=%s: %s",
				req.Hotel, req.RoomType, validationErr.Message)
			handlers.RespondErrors(w, http.StatusBadRequest, []string{validationErr.Message})

		case errors.As(err, &businessErr):
			h.logger.Warn("POST /reservations - Backend rejected reservation: hotel=%s, status=%d",
				req.Hotel, businessErr.StatusCode)
			handlers.RespondBusinessMessages(w, businessErr.StatusCode, businessErr.Messages)

		case errors.Is(err, hotelbackend.ErrUnavailable):
			h.logger.Error("POST /reservations - Backend unavailable: %v", err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("POST /reservations - Failed to create reservation: hotel=%s, error=%v", req.Hotel, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /reservations - Reservation created: code=%s, hotel=%s, session=%s",
		result.Reservation.ConfirmationCode, result.Reservation.Hotel, state.ID())
	handlers.RespondJSON(w, http.StatusCreated, NewReservationResponse(result.Reservation, time.Now()))
}
