package storage

import (
	"context"
	"testing"
	"time"

	"overcooked-chatbot/agg-svc/internal/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	return NewStore(rdb, 48*time.Hour), mr
}

func TestRecordOrder(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 1, 20, 30, 0, 0, time.UTC)

	first := domain.OrderEvent{
		Type:         domain.EventOrderConfirmed,
		OrderID:      1,
		RestaurantID: 3,
		Items: []domain.EventItem{
			{MenuItemID: 11, Quantity: 2},
			{MenuItemID: 12, Quantity: 1},
		},
		Timestamp: day,
	}
	second := domain.OrderEvent{
		Type:         domain.EventOrderConfirmed,
		OrderID:      2,
		RestaurantID: 3,
		Items: []domain.EventItem{
			{MenuItemID: 11, Quantity: 5},
			{MenuItemID: 13, Quantity: 0},
		},
		Timestamp: day,
	}

	require.NoError(t, store.RecordOrder(ctx, first))
	require.NoError(t, store.RecordOrder(ctx, second))

	score, err := mr.ZScore("popular:3", "11")
	require.NoError(t, err)
	assert.Equal(t, float64(7), score)

	score, err = mr.ZScore("popular:3", "12")
	require.NoError(t, err)
	assert.Equal(t, float64(1), score)

	members, err := mr.ZMembers("popular:3")
	require.NoError(t, err)
	assert.NotContains(t, members, "13")

	daily := DailyKey(day, 3)
	assert.Equal(t, "popular:daily:2026-03-01:3", daily)
	score, err = mr.ZScore(daily, "11")
	require.NoError(t, err)
	assert.Equal(t, float64(7), score)
	assert.Equal(t, 48*time.Hour, mr.TTL(daily))
	assert.Equal(t, time.Duration(0), mr.TTL("popular:3"))
}

func TestRecordOrder_DefaultsToNow(t *testing.T) {
	store, mr := newTestStore(t)
	store.now = func() time.Time { return time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC) }

	err := store.RecordOrder(context.Background(), domain.OrderEvent{
		Type:         domain.EventOrderConfirmed,
		RestaurantID: 9,
		Items:        []domain.EventItem{{MenuItemID: 1, Quantity: 4}},
	})
	require.NoError(t, err)

	score, err := mr.ZScore("popular:daily:2026-01-02:9", "1")
	require.NoError(t, err)
	assert.Equal(t, float64(4), score)
}

func TestRecordOrder_RedisDown(t *testing.T) {
	store, mr := newTestStore(t)
	mr.Close()

	err := store.RecordOrder(context.Background(), domain.OrderEvent{
		OrderID:      5,
		RestaurantID: 1,
		Items:        []domain.EventItem{{MenuItemID: 1, Quantity: 1}},
	})
	assert.ErrorContains(t, err, "record order 5")
}
