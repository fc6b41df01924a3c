package price_preview

import (
	"errors"
	"net/http"

	"github.com/dreamstay-app/DS-BookingGateway/internal/api/handlers"
	"github.com/dreamstay-app/DS-BookingGateway/internal/api/middleware"
	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
	pricePreview "github.com/dreamstay-app/DS-BookingGateway/internal/usecase/price_preview"
)

const (
	msgInvalidRequestBody = "El cuerpo de la solicitud es inválido"
	msgBackendUnavailable = "Error de conexión con el backend"
)

type Handler struct {
	useCase PricePreviewUseCase
	logger  Logger
}

func NewHandler(useCase PricePreviewUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/price-preview
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	state, ok := middleware.GetSession(r.Context())
	if !ok {
		handlers.RespondInternalError(w)
		return
	}

	var req PricePreviewRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /price-preview - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), state, req.ToUseCaseRequest())
	if err != nil {
		var validationErr *pricePreview.ValidationError
		var businessErr *hotelbackend.BusinessError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /price-preview - Validation failed: hotel=%s, room_type=%s: %s",
				req.Hotel, req.RoomType, validationErr.Message)
			handlers.RespondBadRequest(w, validationErr.Message)

		case errors.As(err, &businessErr):
			h.logger.Warn("POST /price-preview - Backend rejected preview: hotel=%s, status=%d",
				req.Hotel, businessErr.StatusCode)
			handlers.RespondBusinessMessages(w, businessErr.StatusCode, businessErr.Messages)

		case errors.Is(err, hotelbackend.ErrUnavailable):
			h.logger.Error("POST /price-preview - Backend unavailable: %v", err)
			handlers.RespondBadGateway(w, msgBackendUnavailable)

		default:
			h.logger.Error("POST /price-preview - Failed to preview price: hotel=%s, error=%v", req.Hotel, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, PricePreviewResponse{
		Price:   result.Effective,
		Changed: result.Changed,
		Stale:   result.Stale,
		Offer:   result.Offer,
	})
}
