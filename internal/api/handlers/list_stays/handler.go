package list_stays

import (
	"net/http"

	"github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers"
	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
	"github.com/dreamstay-app/DS-BookingGateway/pkg/money"
)

// StayView is one ledger entry with its total already formatted for display.
type StayView struct {
	*domain.Stay
	TotalDisplay string `json:"total_display"`
}

// StaysResponse HTTP response model, most recent check-out first.
type StaysResponse struct {
	Stays []StayView `json:"estadias"`
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

// Handle GET /api/v1/reception/stays
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	stays, err := h.service.ListStays(r.Context())
	if err != nil {
		h.logger.Error("GET /reception/stays - Failed to list stays: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	formatter := money.ARSFormatter{}
	views := make([]StayView, len(stays))
	for i, stay := range stays {
		views[i] = StayView{Stay: stay, TotalDisplay: formatter.Format(stay.Total)}
	}

	handlers.RespondJSON(w, http.StatusOK, StaysResponse{Stays: views})
}
