package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"overcooked-chatbot/chat-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisCache holds the per-restaurant menu listing and reads the popularity
// counters that agg-svc writes.
type RedisCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisCache(client *redis.Client, ttl time.Duration) *RedisCache {
	return &RedisCache{Client: client, TTL: ttl}
}

func MenuKey(restaurantID int) string {
	return "menu:available:" + strconv.Itoa(restaurantID)
}

// PopularKey is the sorted set agg-svc increments by quantity per menu item.
func PopularKey(restaurantID int) string {
	return "popular:" + strconv.Itoa(restaurantID)
}

func (c *RedisCache) GetMenu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	data, err := c.Client.Get(ctx, MenuKey(restaurantID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, domain.ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var items []domain.MenuItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("unmarshal menu failed: %w", err)
	}
	return items, nil
}

func (c *RedisCache) SetMenu(ctx context.Context, restaurantID int, items []domain.MenuItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal menu failed: %w", err)
	}

	jitter := time.Duration(rand.Intn(30)) * time.Second
	if err := c.Client.Set(ctx, MenuKey(restaurantID), data, c.TTL+jitter).Err(); err != nil {
		return fmt.Errorf("redis set failed: %w", err)
	}
	return nil
}

func (c *RedisCache) TopItems(ctx context.Context, restaurantID, limit int) ([]domain.ItemSales, error) {
	members, err := c.Client.ZRevRangeWithScores(ctx, PopularKey(restaurantID), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis zrevrange failed: %w", err)
	}

	sales := make([]domain.ItemSales, 0, len(members))
	for _, m := range members {
		member, ok := m.Member.(string)
		if !ok {
			continue
		}
		id, err := strconv.Atoi(member)
		if err != nil {
			continue
		}
		sales = append(sales, domain.ItemSales{MenuItemID: id, Sold: int(m.Score)})
	}
	return sales, nil
}
