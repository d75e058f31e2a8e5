package storage_test

import (
	"context"
	"testing"
	"time"

	"overcooked-chatbot/chat-svc/internal/domain"
	"overcooked-chatbot/chat-svc/internal/storage"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) (*storage.RedisCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return storage.NewRedisCache(client, 10*time.Minute), mr
}

func TestRedisCache_MenuRoundTrip(t *testing.T) {
	cache, mr := setupRedis(t)
	ctx := context.Background()

	_, err := cache.GetMenu(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)

	items := []domain.MenuItem{{ID: 4, RestaurantID: 1, Name: "Butter Naan", Price: decimal.RequireFromString("45.50"), Category: "Breads", Available: true}}
	require.NoError(t, cache.SetMenu(ctx, 1, items))

	ttl := mr.TTL(storage.MenuKey(1))
	assert.GreaterOrEqual(t, ttl, 10*time.Minute)
	assert.Less(t, ttl, 11*time.Minute)

	got, err := cache.GetMenu(ctx, 1)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Butter Naan", got[0].Name)
	assert.True(t, got[0].Price.Equal(items[0].Price))

	mr.FastForward(12 * time.Minute)
	_, err = cache.GetMenu(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrCacheMiss)
}

func TestRedisCache_TopItems(t *testing.T) {
	cache, mr := setupRedis(t)

	_, err := mr.ZAdd(storage.PopularKey(1), 3, "7")
	require.NoError(t, err)
	_, err = mr.ZAdd(storage.PopularKey(1), 9, "4")
	require.NoError(t, err)
	_, err = mr.ZAdd(storage.PopularKey(1), 1, "junk")
	require.NoError(t, err)

	sales, err := cache.TopItems(context.Background(), 1, 5)
	require.NoError(t, err)
	assert.Equal(t, []domain.ItemSales{{MenuItemID: 4, Sold: 9}, {MenuItemID: 7, Sold: 3}}, sales)
}

func TestRedisCache_TopItemsEmpty(t *testing.T) {
	cache, _ := setupRedis(t)

	sales, err := cache.TopItems(context.Background(), 2, 5)
	require.NoError(t, err)
	assert.Empty(t, sales)
}
