package cachemanager

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/zjrosen/dlist/internal/log"
)

// Loader builds the value for input when the key is not cached.
type Loader[V any, I any] func(ctx context.Context, input I) (V, error)

// Stats counts lookups since the cache was created or last flushed.
type Stats struct {
	Hits   uint64
	Misses uint64
}

// ReadThroughCache fills a CacheManager from a Loader on misses. Failed loads
// are returned to the caller and not stored.
type ReadThroughCache[K ~string, V any, I any] struct {
	store  CacheManager[K, V]
	load   Loader[V, I]
	hits   atomic.Uint64
	misses atomic.Uint64
}

func NewReadThroughCache[K ~string, V any, I any](store CacheManager[K, V], load Loader[V, I]) *ReadThroughCache[K, V, I] {
	return &ReadThroughCache[K, V, I]{store: store, load: load}
}

// Get returns the cached value for key, loading it from input on a miss.
func (r *ReadThroughCache[K, V, I]) Get(ctx context.Context, key K, input I, ttl time.Duration) (V, error) {
	if value, ok := r.store.Get(ctx, key); ok {
		r.hits.Add(1)
		return value, nil
	}
	r.misses.Add(1)

	value, err := r.load(ctx, input)
	if err != nil {
		return value, err
	}
	r.store.Set(ctx, key, value, ttl)
	return value, nil
}

// Stats returns the hit and miss counts.
func (r *ReadThroughCache[K, V, I]) Stats() Stats {
	return Stats{Hits: r.hits.Load(), Misses: r.misses.Load()}
}

// Flush drops every cached value and resets the stats.
func (r *ReadThroughCache[K, V, I]) Flush(ctx context.Context) error {
	log.Debug(log.CatCache, "flushing read-through cache", "hits", r.hits.Swap(0), "misses", r.misses.Swap(0))
	return r.store.Flush(ctx)
}
