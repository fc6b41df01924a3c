package price_preview

import (
	"context"

	pricePreview "github.com/dreamstay-app/DS-BookingGateway/internal/usecase/price_preview"
)

type PricePreviewUseCase interface {
	Execute(ctx context.Context, state pricePreview.PreviewState, req *pricePreview.Request) (*pricePreview.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
