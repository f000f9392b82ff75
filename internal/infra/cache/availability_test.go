//go:build unit

package cache_test

import (
	"context"
	"testing"
	"time"

	"bookwise/internal/infra/cache"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) *cache.AvailabilityCache {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return cache.NewAvailabilityCache(client, 10*time.Minute)
}

func TestAvailabilityCache_RoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	_, ok, err := c.GetDates(ctx, 1, 2, "2025-06")
	require.NoError(t, err)
	assert.False(t, ok)

	dates := []string{"2025-06-02", "2025-06-09"}
	require.NoError(t, c.SetDates(ctx, 1, 2, "2025-06", dates))

	got, ok, err := c.GetDates(ctx, 1, 2, "2025-06")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, dates, got)
}

func TestAvailabilityCache_EmptyMonthIsCached(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetDates(ctx, 1, 2, "2025-07", []string{}))

	got, ok, err := c.GetDates(ctx, 1, 2, "2025-07")
	require.NoError(t, err)
	assert.True(t, ok, "a fully booked month is still a cache hit")
	assert.Empty(t, got)
}

func TestAvailabilityCache_InvalidateProvider(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.SetDates(ctx, 1, 2, "2025-06", []string{"2025-06-02"}))
	require.NoError(t, c.SetDates(ctx, 3, 2, "2025-07", []string{"2025-07-01"}))
	require.NoError(t, c.SetDates(ctx, 1, 9, "2025-06", []string{"2025-06-14"}))

	require.NoError(t, c.InvalidateProvider(ctx, 2))

	_, ok, err := c.GetDates(ctx, 1, 2, "2025-06")
	require.NoError(t, err)
	assert.False(t, ok)
	_, ok, err = c.GetDates(ctx, 3, 2, "2025-07")
	require.NoError(t, err)
	assert.False(t, ok)

	// other providers keep their entries
	_, ok, err = c.GetDates(ctx, 1, 9, "2025-06")
	require.NoError(t, err)
	assert.True(t, ok)
}
