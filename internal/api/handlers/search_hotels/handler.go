package search_hotels

import (
	"errors"
	"net/http"

	"github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers"
	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
	searchHotels "github.com/dreamstay-app/DS-BookingGateway/internal/usecase/search_hotels"
)

const (
	msgInvalidRequestBody = "El cuerpo de la solicitud es inválido"
	msgBackendUnavailable = "Error de conexión con el backend"
)

type Handler struct {
	useCase SearchHotelsUseCase
	logger  Logger
}

func NewHandler(useCase SearchHotelsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/hotels/search
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SearchRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /hotels/search - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var validationErr *searchHotels.ValidationError
		var businessErr *hotelbackend.BusinessError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /hotels/search - Validation failed: city=%s, errors=%d",
				req.City, len(validationErr.Messages))
			handlers.RespondErrors(w, http.StatusBadRequest, validationErr.Messages)

		case errors.As(err, &businessErr):
			h.logger.Warn("POST /hotels/search - Backend rejected search: city=%s, status=%d",
				req.City, businessErr.StatusCode)
			handlers.RespondBusinessMessages(w, businessErr.StatusCode, businessErr.Messages)

		case errors.Is(err, hotelbackend.ErrUnavailable):
			h.logger.Error("POST /hotels/search - Backend unavailable: %v", err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("POST /hotels/search - Failed to search hotels: city=%s, error=%v", req.City, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /hotels/search - Search completed: city=%s, hotels=%d, nights=%d, cached=%t",
		req.City, len(result.Results), result.Nights, result.Cached)
	handlers.RespondJSON(w, http.StatusOK, SearchResponse{Results: result.Results, Nights: result.Nights})
}
