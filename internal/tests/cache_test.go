package tests

import (
	"context"
	"testing"
	"time"

	"qrorder/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*storage.RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewRedisCache(client, time.Hour), mr
}

func TestRedisCache_Translations(t *testing.T) {
	ctx := context.Background()
	cache, mr := newTestCache(t)

	_, hit, err := cache.Get(ctx, "menu.3.name", "en")
	require.NoError(t, err)
	assert.False(t, hit)

	require.NoError(t, cache.Set(ctx, "menu.3.name", "en", "Americano"))

	text, hit, err := cache.Get(ctx, "menu.3.name", "en")
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "Americano", text)

	// Languages are independent key spaces.
	_, hit, err = cache.Get(ctx, "menu.3.name", "ja")
	require.NoError(t, err)
	assert.False(t, hit)

	assert.True(t, mr.Exists("i18n:en:menu.3.name"))

	mr.FastForward(2 * time.Hour)
	_, hit, err = cache.Get(ctx, "menu.3.name", "en")
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisCache_SalesRanking(t *testing.T) {
	ctx := context.Background()
	cache, _ := newTestCache(t)

	require.NoError(t, cache.IncrementSales(ctx, 10, 3, 2))
	require.NoError(t, cache.IncrementSales(ctx, 10, 4, 5))
	require.NoError(t, cache.IncrementSales(ctx, 10, 3, 1))
	// Another restaurant's sales stay out of this ranking.
	require.NoError(t, cache.IncrementSales(ctx, 11, 9, 100))

	ranked, err := cache.TopSellers(ctx, 10, 10)
	require.NoError(t, err)
	require.Len(t, ranked, 2)
	assert.Equal(t, 4, ranked[0].MenuID)
	assert.Equal(t, int64(5), ranked[0].Sales)
	assert.Equal(t, 3, ranked[1].MenuID)
	assert.Equal(t, int64(3), ranked[1].Sales)

	topOne, err := cache.TopSellers(ctx, 10, 1)
	require.NoError(t, err)
	require.Len(t, topOne, 1)
	assert.Equal(t, 4, topOne[0].MenuID)
}
