package create_session

import (
	"net/http"

	"github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers"
	"github.com/dreamstay-app/DS-BookingGateway/internal/api/middleware"
)

type Handler struct {
	manager SessionManager
	logger  Logger
}

func NewHandler(manager SessionManager, logger Logger) *Handler {
	return &Handler{
		manager: manager,
		logger:  logger,
	}
}

// Handle POST /api/v1/sessions
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	s := h.manager.Create()

	h.logger.Info("POST /sessions - Session created: id=%s", s.ID())
	handlers.RespondJSON(w, http.StatusCreated, SessionResponse{SessionID: s.ID()})
}

// HandleDelete DELETE /api/v1/sessions
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := r.Header.Get(middleware.HeaderSessionID)
	if id == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	h.manager.Delete(id)
	h.logger.Info("DELETE /sessions - Session removed: id=%s", id)
	w.WriteHeader(http.StatusNoContent)
}
