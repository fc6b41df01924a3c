package search_hotels

import (
	"context"
	"time"

	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
)

// BackendClient is the hotel backend surface the use case depends on.
type BackendClient interface {
	SearchHotels(ctx context.Context, req hotelbackend.SearchRequest) ([]hotelbackend.HotelResult, error)
}

// SearchCache caches search responses for identical queries. A nil cache
// disables caching; Get misses and errors both fall through to the backend.
type SearchCache interface {
	Get(ctx context.Context, key string) ([]hotelbackend.HotelResult, bool)
	Set(ctx context.Context, key string, results []hotelbackend.HotelResult)
}

// TimeProvider supplies the current time. Swappable in tests.
type TimeProvider interface {
	Now() time.Time
}

// Logger defines the logging contract the use case depends on.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time source.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
