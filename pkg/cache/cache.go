// Package cache provides byte-level caching for fetched usage data and
// rendered cards.
//
// # Backends
//
//   - [NullCache]: caches nothing; used when caching is disabled
//   - [FileCache]: JSON entries on disk, for the CLI
//   - [MemoryCache]: bounded in-process LRU, for a single server
//   - [RedisCache]: shared cache for several server instances
//
// # Keys
//
// Keys are built by a [Keyer] so every component agrees on the layout of
// the key space. [ScopedKeyer] prefixes every key, which lets several
// deployments share one Redis database.
//
//	keyer := cache.NewDefaultKeyer()
//	key := keyer.UsageKey("octocat", cache.UsageKeyOpts{SizeWeight: 1})
//	data, ok, err := c.Get(ctx, key)
package cache

import (
	"context"
	"time"
)

// Default time-to-live values.
const (
	// TTLUsage bounds how long fetched language usage is reused.
	TTLUsage = 6 * time.Hour

	// TTLCard bounds how long a rendered card is reused.
	TTLCard = 6 * time.Hour

	// TTLHTTP is the default lifetime of cached HTTP responses.
	TTLHTTP = time.Hour
)

// Cache stores opaque byte payloads under string keys.
//
// Get reports a miss as (nil, false, nil); errors are reserved for backend
// failures. A ttl of zero or less means the entry does not expire.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by caches that can drop all of their entries.
// Clear returns the number of entries removed.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}
