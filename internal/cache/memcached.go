package cache

import (
	"context"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
)

const keyPrefix = "worldinfo:"

// Memcached implements Cache using memcached.
type Memcached struct {
	client *memcache.Client
}

// NewMemcached creates a memcached-backed cache for the given address.
func NewMemcached(addr string) *Memcached {
	return &Memcached{client: memcache.New(addr)}
}

// Get implements Cache.Get. A cache miss returns (nil, false, nil).
func (c *Memcached) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if ctx.Err() != nil {
		return nil, false, ctx.Err()
	}
	item, err := c.client.Get(keyPrefix + key)
	if err != nil {
		if err == memcache.ErrCacheMiss {
			return nil, false, nil
		}
		return nil, false, err
	}
	return item.Value, true, nil
}

// Set implements Cache.Set.
func (c *Memcached) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	expSec := int32(ttl.Seconds())
	const maxRelativeExp = 30 * 24 * 60 * 60 // memcached treats larger values as unix timestamps
	if expSec <= 0 || expSec > maxRelativeExp {
		expSec = 600
	}
	return c.client.Set(&memcache.Item{
		Key:        keyPrefix + key,
		Value:      value,
		Expiration: expSec,
	})
}

// Close closes the memcached client connections.
func (c *Memcached) Close() error {
	return c.client.Close()
}
