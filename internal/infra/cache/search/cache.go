package search

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dreamstay-app/DS-BookingGateway/internal/integrations/hotelbackend"
)

const keyPrefix = "booking-gateway:"

// Cache stores hotel search responses in Redis for a short TTL so identical
// queries within the window skip the backend. Strictly best-effort: every
// Redis failure degrades to a miss and the search proceeds normally.
type Cache struct {
	client  *redis.Client
	ttl     time.Duration
	log     Logger
	metrics MetricsCollector
}

// NewCache creates a search cache on an existing Redis client. metrics may
// be nil.
func NewCache(client *redis.Client, ttl time.Duration, log Logger, metrics MetricsCollector) *Cache {
	return &Cache{
		client:  client,
		ttl:     ttl,
		log:     log,
		metrics: metrics,
	}
}

// Get returns the cached results for key, if present and decodable.
func (c *Cache) Get(ctx context.Context, key string) ([]hotelbackend.HotelResult, bool) {
	payload, err := c.client.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.observe("miss")
			return nil, false
		}
		c.log.Warn("search cache: get failed for key=%s: %v", key, err)
		c.observe("error")
		return nil, false
	}

	var results []hotelbackend.HotelResult
	if err := json.Unmarshal([]byte(payload), &results); err != nil {
		c.log.Error("search cache: undecodable entry for key=%s: %v", key, err)
		c.observe("error")
		return nil, false
	}

	c.log.Debug("search cache: hit for key=%s", key)
	c.observe("hit")
	return results, true
}

// Set stores results under key for the configured TTL.
func (c *Cache) Set(ctx context.Context, key string, results []hotelbackend.HotelResult) {
	payload, err := json.Marshal(results)
	if err != nil {
		c.log.Error("search cache: encode failed for key=%s: %v", key, err)
		return
	}

	if err := c.client.Set(ctx, keyPrefix+key, payload, c.ttl).Err(); err != nil {
		c.log.Warn("search cache: set failed for key=%s: %v", key, err)
	}
}

func (c *Cache) observe(result string) {
	if c.metrics == nil {
		return
	}
	c.metrics.ObserveCacheLookup(result)
}
