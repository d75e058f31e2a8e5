package service_test

import (
	"context"
	"testing"

	"overcooked-chatbot/chat-svc/internal/domain"
	"overcooked-chatbot/chat-svc/internal/mocks"
	"overcooked-chatbot/chat-svc/internal/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItems() []domain.MenuItem {
	return []domain.MenuItem{
		{ID: 4, RestaurantID: 1, Name: "Butter Naan", Price: decimal.RequireFromString("45"), Category: "Breads", Available: true},
		{ID: 6, RestaurantID: 1, Name: "Dal Makhani", Price: decimal.RequireFromString("180"), Category: "Curries", Available: true},
		{ID: 9, RestaurantID: 1, Name: "Mango Lassi", Price: decimal.RequireFromString("80"), Category: "Drinks", Available: false},
	}
}

func TestMenuService_Available(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		prepareMocks func(catalog *mocks.CatalogRepository, cache *mocks.MenuCache)
		wantErr      bool
	}{
		{
			name: "cache hit",
			prepareMocks: func(catalog *mocks.CatalogRepository, cache *mocks.MenuCache) {
				cache.On("GetMenu", ctx, 1).Return(menuItems()[:2], nil).Once()
			},
		},
		{
			name: "cache miss fills cache",
			prepareMocks: func(catalog *mocks.CatalogRepository, cache *mocks.MenuCache) {
				cache.On("GetMenu", ctx, 1).Return(nil, domain.ErrCacheMiss).Once()
				catalog.On("ListAvailableMenuItems", ctx, 1, service.MenuListLimit).Return(menuItems()[:2], nil).Once()
				cache.On("SetMenu", ctx, 1, menuItems()[:2]).Return(nil).Once()
			},
		},
		{
			name: "cache down falls through",
			prepareMocks: func(catalog *mocks.CatalogRepository, cache *mocks.MenuCache) {
				cache.On("GetMenu", ctx, 1).Return(nil, assert.AnError).Once()
				catalog.On("ListAvailableMenuItems", ctx, 1, service.MenuListLimit).Return(menuItems()[:2], nil).Once()
				cache.On("SetMenu", ctx, 1, menuItems()[:2]).Return(assert.AnError).Once()
			},
		},
		{
			name: "catalog error",
			prepareMocks: func(catalog *mocks.CatalogRepository, cache *mocks.MenuCache) {
				cache.On("GetMenu", ctx, 1).Return(nil, domain.ErrCacheMiss).Once()
				catalog.On("ListAvailableMenuItems", ctx, 1, service.MenuListLimit).Return(nil, assert.AnError).Once()
			},
			wantErr: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			catalog := mocks.NewCatalogRepository(t)
			cache := mocks.NewMenuCache(t)
			testCase.prepareMocks(catalog, cache)

			svc := service.NewMenuService(catalog, mocks.NewCartRepository(t), cache, nil)
			items, err := svc.Available(ctx, 1)
			if testCase.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Len(t, items, 2)
		})
	}
}

func TestMenuService_Popular(t *testing.T) {
	ctx := context.Background()
	items := menuItems()

	t.Run("from counters", func(t *testing.T) {
		catalog := mocks.NewCatalogRepository(t)
		popularity := mocks.NewPopularityReader(t)

		popularity.On("TopItems", ctx, 1, 3).Return([]domain.ItemSales{{MenuItemID: 9, Sold: 12}, {MenuItemID: 6, Sold: 7}, {MenuItemID: 4, Sold: 2}}, nil).Once()
		catalog.On("GetMenuItems", ctx, 1, []int{9, 6, 4}).Return(items, nil).Once()

		svc := service.NewMenuService(catalog, mocks.NewCartRepository(t), nil, popularity)
		popular, err := svc.Popular(ctx, 1, 3)
		require.NoError(t, err)
		require.Len(t, popular, 2, "unavailable items are skipped")
		assert.Equal(t, "Dal Makhani", popular[0].Name)
		assert.Equal(t, 7, popular[0].Sold)
		assert.Equal(t, "Butter Naan", popular[1].Name)
	})

	t.Run("falls back to confirmed orders", func(t *testing.T) {
		catalog := mocks.NewCatalogRepository(t)
		carts := mocks.NewCartRepository(t)
		popularity := mocks.NewPopularityReader(t)

		popularity.On("TopItems", ctx, 1, service.DefaultPopularLimit).Return(nil, assert.AnError).Once()
		carts.On("TopSellingItems", ctx, 1, service.DefaultPopularLimit).Return([]domain.ItemSales{{MenuItemID: 4, Sold: 3}}, nil).Once()
		catalog.On("GetMenuItems", ctx, 1, []int{4}).Return(items[:1], nil).Once()

		svc := service.NewMenuService(catalog, carts, nil, popularity)
		popular, err := svc.Popular(ctx, 1, 0)
		require.NoError(t, err)
		require.Len(t, popular, 1)
		assert.Equal(t, 3, popular[0].Sold)
	})

	t.Run("limit is capped", func(t *testing.T) {
		carts := mocks.NewCartRepository(t)
		carts.On("TopSellingItems", ctx, 1, service.MaxPopularLimit).Return(nil, nil).Once()

		svc := service.NewMenuService(mocks.NewCatalogRepository(t), carts, nil, nil)
		popular, err := svc.Popular(ctx, 1, 500)
		require.NoError(t, err)
		assert.Empty(t, popular)
	})
}

func TestMenuService_Categories(t *testing.T) {
	ctx := context.Background()
	catalog := mocks.NewCatalogRepository(t)
	catalog.On("ListCategories", ctx, 1).Return([]string{"Breads", "Curries"}, nil).Once()

	svc := service.NewMenuService(catalog, mocks.NewCartRepository(t), nil, nil)
	categories, err := svc.Categories(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Breads", "Curries"}, categories)
}
