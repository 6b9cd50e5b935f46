// Package cache provides storage backends and keys for memoizing the
// layout engine's expensive-but-pure computations. Its only user is
// onto.CachingSource, which caches compartment-tree reductions;
// layout.Compute() results are not cached (Keyer.LayoutKey has no caller
// outside tests). A cache never changes the answer, only whether it is
// recomputed — the layout engine itself never reads or writes a cache.
package cache

import (
	"context"
	"time"
)

// Cache stores opaque byte blobs (JSON-encoded layouts or compartment
// trees) behind a string key, with optional TTL expiration.
type Cache interface {
	// Get retrieves a value. hit is false on a miss; err is only set for
	// a genuine backend failure, never for a miss.
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)

	// Set stores a value. ttl <= 0 means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources (connections, file handles) held by
	// the cache.
	Close() error
}
