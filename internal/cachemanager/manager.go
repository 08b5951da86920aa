// Package cachemanager caches values that are expensive to rebuild, such as
// rendered collection panels, behind a small generic interface.
package cachemanager

import (
	"context"
	"time"
)

// CacheManager stores values under string-like keys with a per-entry TTL.
type CacheManager[K ~string, V any] interface {
	Get(ctx context.Context, key K) (V, bool)
	Set(ctx context.Context, key K, value V, ttl time.Duration)
	Delete(ctx context.Context, keys ...K) error
	Flush(ctx context.Context) error
}
