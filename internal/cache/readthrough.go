package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/alexivanou/worldinfo-api/internal/observability"
	"go.uber.org/zap"
)

// Lookup applies the read-through pattern: check the cache under key, and on
// a miss call fetch, store its result and return it. fetch returning nil
// means the source has no data; that outcome is terminal and not cached.
// Cache errors degrade to a fetch and never surface to the caller.
func Lookup[T any](ctx context.Context, c Cache, logger *zap.Logger, kind, key string, ttl time.Duration, fetch func(context.Context) *T) (*T, error) {
	raw, ok, err := c.Get(ctx, key)
	if err != nil {
		logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
	}
	if ok {
		var cached T
		if err := json.Unmarshal(raw, &cached); err == nil {
			observability.CacheRequestsTotal.WithLabelValues(kind, "hit").Inc()
			return &cached, nil
		}
		logger.Warn("discarding undecodable cache entry", zap.String("key", key))
	}
	observability.CacheRequestsTotal.WithLabelValues(kind, "miss").Inc()

	value := fetch(ctx)
	if value == nil {
		return nil, nil
	}

	if raw, err := json.Marshal(value); err == nil {
		if err := c.Set(ctx, key, raw, ttl); err != nil {
			logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
		}
	}
	return value, nil
}
