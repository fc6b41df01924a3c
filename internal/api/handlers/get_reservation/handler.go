package get_reservation

import (
	"net/http"
	"time"

	"github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers"
	"github.com/dreamstay-app/DS-BookingGateway/internal/api/middleware"
	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
)

const msgNoReservation = "No hay una reserva cargada en la sesión"

type Handler struct {
	logger Logger
}

func NewHandler(logger Logger) *Handler {
	return &Handler{logger: logger}
}

// ReservationResponse HTTP response model: the working copy plus the display
// policy and the actions available right now.
type ReservationResponse struct {
	Reservation *domain.Reservation `json:"reservation"`
	StatusInfo  domain.StatusInfo   `json:"status_info"`
	Actions     []domain.Action     `json:"actions"`
	Price       *domain.PriceDetail `json:"price,omitempty"`
}

// Handle GET /api/v1/reservation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	state, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	reservation, err := state.Reservation()
	if err != nil {
		h.logger.Warn("GET /reservation - No reservation in session: id=%s", state.ID())
		handlers.RespondNotFound(w, msgNoReservation)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ReservationResponse{
		Reservation: reservation,
		StatusInfo:  domain.InfoFor(reservation.Status),
		Actions:     reservation.PermittedActions(time.Now()),
		Price:       state.EffectivePrice(),
	})
}
