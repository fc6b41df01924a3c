package price_preview

import (
	"context"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
)

// BackendClient is the hotel backend surface the use case depends on.
type BackendClient interface {
	PricePreview(ctx context.Context, req hotelbackend.PricePreviewRequest) (*hotelbackend.PricePreviewResponse, error)
}

// PreviewState is the session's price-preview surface. BeginPreview hands out
// a generation; only the most recently issued generation may settle.
type PreviewState interface {
	BeginPreview() uint64
	CompletePreview(gen uint64, detail *domain.PriceDetail) (domain.PriceReconciliation, bool)
	FailPreview(gen uint64) (domain.PriceReconciliation, bool)
	EffectivePrice() *domain.PriceDetail
}

// Logger defines the logging contract the use case depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
