package price_preview

import (
	"context"
	"strings"

	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
)

// UseCase recomputes the displayed price for tentative stay parameters. Every
// request claims a preview generation before calling the backend; a request
// that lost its generation to a newer one discards its result silently and
// reports what the newer preview settled. A failed or invalid request reverts
// the display to the base price.
type UseCase struct {
	backend BackendClient
	logger  Logger
}

// NewUseCase creates the use case.
func NewUseCase(backend BackendClient, logger Logger) *UseCase {
	return &UseCase{
		backend: backend,
		logger:  logger,
	}
}

// Execute runs one price preview against the session's preview state.
func (uc *UseCase) Execute(ctx context.Context, state PreviewState, req *Request) (*Response, error) {
	uc.logger.Info("PricePreview: hotel=%s, type=%s, checkin=%s, checkout=%s, counts=%d/%d/%d",
		req.Hotel, req.RoomType, req.Checkin, req.Checkout,
		req.Counts.Adult, req.Counts.Child, req.Counts.Baby)

	// 1. Validación local. Una consulta inválida equivale a un preview
	// fallido: el precio mostrado vuelve a la base.
	parsed, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("PricePreview: validation failed: %v", err)
		gen := state.BeginPreview()
		state.FailPreview(gen)
		return nil, err
	}

	// 2. Reclamamos la generación antes de cruzar la red
	gen := state.BeginPreview()

	// 3. Consulta al backend
	resp, err := uc.backend.PricePreview(ctx, hotelbackend.PricePreviewRequest{
		Hotel:    strings.TrimSpace(req.Hotel),
		RoomType: req.RoomType,
		Checkin:  parsed.checkin.FormatDMY(),
		Checkout: parsed.checkout.FormatDMY(),
		Counts:   req.Counts,
	})
	if err != nil {
		uc.logger.Warn("PricePreview: backend call failed: %v", err)
		if _, ok := state.FailPreview(gen); !ok {
			// Un preview más nuevo ya ganó: este error no toca nada
			uc.logger.Info("PricePreview: stale failure discarded, gen=%d", gen)
		}
		return nil, err
	}

	// 4. Asentamos solo si seguimos siendo el preview vigente
	rec, ok := state.CompletePreview(gen, resp.PriceDetail)
	if !ok {
		uc.logger.Info("PricePreview: stale result discarded, gen=%d", gen)
		return &Response{Effective: state.EffectivePrice(), Stale: true}, nil
	}

	return &Response{
		Effective: rec.Effective,
		Changed:   rec.Changed,
		Offer:     resp.Offer,
	}, nil
}
