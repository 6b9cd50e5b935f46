package cache

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRUCache is an in-process bounded cache, meant to sit in front of a
// RedisCache or FileCache for hot reactions (the same accession set or
// entity/role composition requested repeatedly within a process).
type LRUCache struct {
	entries *lru.Cache[string, lruEntry]
}

type lruEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewLRUCache creates a bounded in-memory cache holding up to size
// entries.
func NewLRUCache(size int) (Cache, error) {
	entries, err := lru.New[string, lruEntry](size)
	if err != nil {
		return nil, err
	}
	return &LRUCache{entries: entries}, nil
}

// Get retrieves a value, evicting it in place if it has expired.
func (c *LRUCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	entry, ok := c.entries.Get(key)
	if !ok {
		return nil, false, nil
	}
	if !entry.expiresAt.IsZero() && time.Now().After(entry.expiresAt) {
		c.entries.Remove(key)
		return nil, false, nil
	}
	return entry.data, true, nil
}

// Set stores a value with the given TTL (0 means no expiration).
func (c *LRUCache) Set(ctx context.Context, key string, data []byte, ttl time.Duration) error {
	entry := lruEntry{data: data}
	if ttl > 0 {
		entry.expiresAt = time.Now().Add(ttl)
	}
	c.entries.Add(key, entry)
	return nil
}

// Delete removes a key.
func (c *LRUCache) Delete(ctx context.Context, key string) error {
	c.entries.Remove(key)
	return nil
}

// Close does nothing; the cache is purely in-memory.
func (c *LRUCache) Close() error {
	return nil
}

var _ Cache = (*LRUCache)(nil)
