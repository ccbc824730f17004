// Package cache provides the ephemeral key-value store backing the
// read-through lookups (weather, currency, news). Values are opaque bytes;
// the backend is selected by configuration the same way the database
// backend is.
package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/alexivanou/worldinfo-api/internal/config"
)

// Cache defines the interface for the ephemeral lookup cache.
// Get returns cached bytes if present and not expired, Set stores bytes
// with a TTL.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

// New creates a cache backend based on configuration.
func New(cfg config.CacheConfig) (Cache, error) {
	switch cfg.Type {
	case config.CacheTypeMemcached:
		return NewMemcached(cfg.Addr), nil
	case config.CacheTypeRedis:
		return NewRedis(cfg.Addr)
	case config.CacheTypeMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown cache type %q", cfg.Type)
	}
}
