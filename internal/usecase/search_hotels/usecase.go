package search_hotels

import (
	"context"
	"fmt"
	"strings"

	"github.com/dreamstay-app/DS-BookingGateway/internal/domain"
	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
)

// UseCase validates a hotel search form and proxies it to the backend,
// consulting the response cache first.
type UseCase struct {
	backend      BackendClient
	cache        SearchCache
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase creates the use case. cache may be nil.
func NewUseCase(backend BackendClient, cache SearchCache, logger Logger) *UseCase {
	return &UseCase{
		backend:      backend,
		cache:        cache,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute runs a hotel search.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SearchHotels: city=%s, checkin=%s, checkout=%s, type=%s, guests=%d/%d/%d",
		req.City, req.Checkin, req.Checkout, req.RoomType, req.Adults, req.Children, req.Babies)

	// 1. Validación local: ninguna búsqueda inválida llega al backend
	parsed, verr := validateRequest(req, uc.timeProvider.Now())
	if verr != nil {
		uc.logger.Warn("SearchHotels: validation failed: %v", verr)
		return nil, verr
	}

	roomType := req.RoomType
	if roomType == "" {
		roomType = domain.RoomTypeSingle
	}

	backendReq := hotelbackend.SearchRequest{
		City:     strings.TrimSpace(req.City),
		Checkin:  parsed.checkin.FormatDMY(),
		Checkout: parsed.checkout.FormatDMY(),
		RoomType: roomType,
		Adults:   req.Adults,
		Children: req.Children,
		Babies:   req.Babies,
	}

	// 2. Cache: misma consulta normalizada, misma respuesta
	key := cacheKey(backendReq)
	if uc.cache != nil {
		if results, ok := uc.cache.Get(ctx, key); ok {
			uc.logger.Info("SearchHotels: cache hit for key=%s", key)
			return &Response{Results: results, Nights: parsed.nights, Cached: true}, nil
		}
	}

	// 3. Consulta al backend
	results, err := uc.backend.SearchHotels(ctx, backendReq)
	if err != nil {
		uc.logger.Warn("SearchHotels: backend search failed: %v", err)
		return nil, err
	}

	// 4. Poblamos el cache para la próxima consulta idéntica
	if uc.cache != nil {
		uc.cache.Set(ctx, key, results)
	}

	uc.logger.Info("SearchHotels: %d hotels found for city=%s", len(results), backendReq.City)
	return &Response{Results: results, Nights: parsed.nights}, nil
}

func cacheKey(req hotelbackend.SearchRequest) string {
	return fmt.Sprintf("search:%s|%s|%s|%s|%d|%d|%d",
		strings.ToLower(req.City), req.Checkin, req.Checkout, req.RoomType,
		req.Adults, req.Children, req.Babies)
}
