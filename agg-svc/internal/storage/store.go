package storage

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"overcooked-chatbot/agg-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// Store keeps popularity counters in Redis sorted sets, one member per menu
// item scored by confirmed quantity.
type Store struct {
	rdb      *redis.Client
	dailyTTL time.Duration
	now      func() time.Time
}

func NewStore(rdb *redis.Client, dailyTTL time.Duration) *Store {
	return &Store{
		rdb:      rdb,
		dailyTTL: dailyTTL,
		now:      time.Now,
	}
}

// PopularKey must match the key chat-svc reads popular items from.
func PopularKey(restaurantID int) string {
	return "popular:" + strconv.Itoa(restaurantID)
}

func DailyKey(day time.Time, restaurantID int) string {
	return fmt.Sprintf("popular:daily:%s:%d", day.Format("2006-01-02"), restaurantID)
}

// RecordOrder applies every line of the event in one MULTI/EXEC. Lines with a
// non-positive quantity are ignored.
func (s *Store) RecordOrder(ctx context.Context, event domain.OrderEvent) error {
	day := event.Timestamp
	if day.IsZero() {
		day = s.now()
	}
	allTimeKey := PopularKey(event.RestaurantID)
	dailyKey := DailyKey(day.UTC(), event.RestaurantID)

	_, err := s.rdb.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, item := range event.Items {
			if item.Quantity <= 0 {
				continue
			}
			member := strconv.Itoa(item.MenuItemID)
			pipe.ZIncrBy(ctx, allTimeKey, float64(item.Quantity), member)
			pipe.ZIncrBy(ctx, dailyKey, float64(item.Quantity), member)
		}
		pipe.Expire(ctx, dailyKey, s.dailyTTL)
		return nil
	})
	if err != nil {
		return fmt.Errorf("record order %d: %w", event.OrderID, err)
	}
	return nil
}
