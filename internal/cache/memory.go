package cache

import (
	"context"
	"sync"
	"time"
)

// Memory implements Cache with an in-process map and TTL-based expiration.
// Expired entries are removed on access. Safe for concurrent use.
type Memory struct {
	mu   sync.Mutex
	data map[string]memoryEntry
}

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// NewMemory creates a new in-memory cache instance.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]memoryEntry)}
}

// Get retrieves cached bytes for the key if present and not expired.
func (c *Memory) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.data[key]
	if !ok {
		return nil, false, nil
	}
	if time.Now().After(entry.expiresAt) {
		delete(c.data, key)
		return nil, false, nil
	}
	return entry.value, true, nil
}

// Set stores bytes under the key with the given TTL.
func (c *Memory) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.data[key] = memoryEntry{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
	return nil
}
