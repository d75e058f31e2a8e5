package service

import (
	"context"
	"errors"
	"log"
	"strconv"

	"overcooked-chatbot/chat-svc/internal/domain"

	"golang.org/x/sync/singleflight"
)

const (
	// MenuListLimit caps how many items the menu reply shows.
	MenuListLimit       = 50
	DefaultPopularLimit = 5
	MaxPopularLimit     = 20
)

// MenuService serves the read side of the catalog to the chat widget. The
// available-items listing goes through the cache; popularity comes from the
// counters agg-svc maintains, with a SQL fallback.
type MenuService struct {
	catalog    CatalogRepository
	sales      CartRepository
	cache      MenuCache
	popularity PopularityReader
	sfg        singleflight.Group
}

func NewMenuService(catalog CatalogRepository, sales CartRepository, cache MenuCache, popularity PopularityReader) *MenuService {
	return &MenuService{
		catalog:    catalog,
		sales:      sales,
		cache:      cache,
		popularity: popularity,
	}
}

func (s *MenuService) Available(ctx context.Context, restaurantID int) ([]domain.MenuItem, error) {
	if s.cache == nil {
		return s.catalog.ListAvailableMenuItems(ctx, restaurantID, MenuListLimit)
	}

	v, err, _ := s.sfg.Do(strconv.Itoa(restaurantID), func() (interface{}, error) {
		items, err := s.cache.GetMenu(ctx, restaurantID)
		if err == nil {
			return items, nil
		}
		if !errors.Is(err, domain.ErrCacheMiss) {
			log.Printf("menu cache get error: %v", err)
		}

		items, err = s.catalog.ListAvailableMenuItems(ctx, restaurantID, MenuListLimit)
		if err != nil {
			return nil, err
		}
		if errSet := s.cache.SetMenu(ctx, restaurantID, items); errSet != nil {
			log.Printf("menu cache set error: %v", errSet)
		}
		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.MenuItem), nil
}

func (s *MenuService) Categories(ctx context.Context, restaurantID int) ([]string, error) {
	return s.catalog.ListCategories(ctx, restaurantID)
}

// Popular returns the best sellers that are still available, best first.
func (s *MenuService) Popular(ctx context.Context, restaurantID, limit int) ([]domain.PopularItem, error) {
	if limit <= 0 {
		limit = DefaultPopularLimit
	}
	if limit > MaxPopularLimit {
		limit = MaxPopularLimit
	}

	var sales []domain.ItemSales
	if s.popularity != nil {
		top, err := s.popularity.TopItems(ctx, restaurantID, limit)
		if err != nil {
			log.Printf("popularity read error: %v", err)
		}
		sales = top
	}
	if len(sales) == 0 {
		top, err := s.sales.TopSellingItems(ctx, restaurantID, limit)
		if err != nil {
			return nil, err
		}
		sales = top
	}
	if len(sales) == 0 {
		return []domain.PopularItem{}, nil
	}

	ids := make([]int, 0, len(sales))
	for _, sale := range sales {
		ids = append(ids, sale.MenuItemID)
	}
	items, err := s.catalog.GetMenuItems(ctx, restaurantID, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[int]domain.MenuItem, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}

	popular := make([]domain.PopularItem, 0, len(sales))
	for _, sale := range sales {
		item, ok := byID[sale.MenuItemID]
		if !ok || !item.Available {
			continue
		}
		popular = append(popular, domain.PopularItem{MenuItem: item, Sold: sale.Sold})
	}
	return popular, nil
}
