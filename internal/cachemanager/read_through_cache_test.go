package cachemanager

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type renderInput struct {
	Values []int64
}

func countingLoader(calls *int) func(context.Context, renderInput) (string, error) {
	return func(_ context.Context, in renderInput) (string, error) {
		*calls++
		return fmt.Sprint(in.Values), nil
	}
}

func TestReadThroughCache_LoadsOnceThenHits(t *testing.T) {
	calls := 0
	cache := NewInMemoryCacheManager[panelKey, string]("panels", DefaultExpiration, DefaultCleanupInterval)
	rt := NewReadThroughCache[panelKey, string, renderInput](cache, countingLoader(&calls))

	for range 3 {
		got, err := rt.Get(context.Background(), "demo:1", renderInput{Values: []int64{5, 7}}, time.Minute)
		require.NoError(t, err)
		require.Equal(t, "[5 7]", got)
	}
	require.Equal(t, 1, calls)

	require.NoError(t, rt.Flush(context.Background()))
	_, err := rt.Get(context.Background(), "demo:1", renderInput{Values: []int64{5, 7}}, time.Minute)
	require.NoError(t, err)
	require.Equal(t, 2, calls)
}

func TestReadThroughCache_Stats(t *testing.T) {
	calls := 0
	cache := NewInMemoryCacheManager[panelKey, string]("panels", DefaultExpiration, DefaultCleanupInterval)
	rt := NewReadThroughCache[panelKey, string, renderInput](cache, countingLoader(&calls))

	ctx := context.Background()
	for _, key := range []panelKey{"a", "a", "b", "a"} {
		_, err := rt.Get(ctx, key, renderInput{}, time.Minute)
		require.NoError(t, err)
	}
	require.Equal(t, Stats{Hits: 2, Misses: 2}, rt.Stats())
	require.Equal(t, 2, cache.Len())

	require.NoError(t, rt.Flush(ctx))
	require.Equal(t, Stats{}, rt.Stats())
	require.Equal(t, 0, cache.Len())
}

func TestReadThroughCache_ErrorsAreNotCached(t *testing.T) {
	errRender := errors.New("render failed")
	calls := 0
	cache := NewInMemoryCacheManager[panelKey, string]("panels", DefaultExpiration, DefaultCleanupInterval)
	rt := NewReadThroughCache[panelKey, string, renderInput](cache, func(context.Context, renderInput) (string, error) {
		calls++
		return "", errRender
	})

	_, err := rt.Get(context.Background(), "demo:1", renderInput{}, time.Minute)
	require.ErrorIs(t, err, errRender)
	_, err = rt.Get(context.Background(), "demo:1", renderInput{}, time.Minute)
	require.ErrorIs(t, err, errRender)
	require.Equal(t, 2, calls)
}
