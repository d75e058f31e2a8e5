package storage_test

import (
	"context"
	"sync"
	"testing"

	"overcooked-chatbot/chat-svc/internal/domain"
	"overcooked-chatbot/chat-svc/internal/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMemory(t *testing.T) (*storage.MemoryStore, domain.Restaurant, domain.MenuItem) {
	t.Helper()
	store := storage.NewMemoryStore()
	rest := store.AddRestaurant("Spice Route")
	naan := store.PutMenuItem(domain.MenuItem{
		RestaurantID: rest.ID, Name: "Butter Naan", Price: decimal.RequireFromString("45"), Category: "Breads", Available: true,
	})
	store.PutMenuItem(domain.MenuItem{
		RestaurantID: rest.ID, Name: "Garlic Naan", Price: decimal.RequireFromString("55"), Category: "Breads", Available: true,
	})
	store.PutMenuItem(domain.MenuItem{
		RestaurantID: rest.ID, Name: "Dal Makhani", Price: decimal.RequireFromString("180"), Category: "Curries", Available: false,
	})
	return store, rest, naan
}

func TestMemoryStore_Catalog(t *testing.T) {
	store, rest, naan := seedMemory(t)
	ctx := context.Background()

	found, err := store.FindMenuItemByName(ctx, rest.ID, "BUTTER naan")
	require.NoError(t, err)
	assert.Equal(t, naan.ID, found.ID)

	_, err = store.FindMenuItemByName(ctx, rest.ID, "naan")
	assert.ErrorIs(t, err, domain.ErrItemNotFound)

	matches, err := store.SearchMenuItems(ctx, rest.ID, "naan", 1)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, naan.ID, matches[0].ID, "lowest id wins")

	available, err := store.ListAvailableMenuItems(ctx, rest.ID, 50)
	require.NoError(t, err)
	assert.Len(t, available, 2)

	categories, err := store.ListCategories(ctx, rest.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"Breads"}, categories)

	_, err = store.GetRestaurant(ctx, 404)
	assert.ErrorIs(t, err, domain.ErrRestaurantNotFound)
}

func TestMemoryStore_ConcurrentFirstContactCreatesOneCart(t *testing.T) {
	store, rest, _ := seedMemory(t)

	var wg sync.WaitGroup
	ids := make([]int, 20)
	for i := range ids {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			cart, err := store.GetOrCreatePending(context.Background(), rest.ID, "sess-1")
			if assert.NoError(t, err) {
				ids[i] = cart.ID
			}
		}(i)
	}
	wg.Wait()

	for _, id := range ids {
		assert.Equal(t, ids[0], id)
	}
}

func TestMemoryStore_ConcurrentAddsMerge(t *testing.T) {
	store, rest, naan := seedMemory(t)
	ctx := context.Background()
	cart, err := store.GetOrCreatePending(ctx, rest.ID, "sess-1")
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.AddLine(ctx, cart.ID, naan, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := store.GetCart(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("90")))
}

func TestMemoryStore_LineKeepsFirstPrice(t *testing.T) {
	store, rest, naan := seedMemory(t)
	ctx := context.Background()
	cart, _ := store.GetOrCreatePending(ctx, rest.ID, "sess-1")

	_, err := store.AddLine(ctx, cart.ID, naan, 1)
	require.NoError(t, err)

	naan.Price = decimal.RequireFromString("60")
	store.PutMenuItem(naan)
	line, err := store.AddLine(ctx, cart.ID, naan, 1)
	require.NoError(t, err)

	assert.True(t, line.UnitPrice.Equal(decimal.RequireFromString("45")))
	assert.True(t, line.TotalPrice.Equal(decimal.RequireFromString("90")))
}

func TestMemoryStore_MergePastMaxQuantity(t *testing.T) {
	store, rest, naan := seedMemory(t)
	ctx := context.Background()
	cart, _ := store.GetOrCreatePending(ctx, rest.ID, "sess-1")

	_, err := store.AddLine(ctx, cart.ID, naan, domain.MaxQuantity)
	require.NoError(t, err)

	_, err = store.AddLine(ctx, cart.ID, naan, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
	var qe *domain.QuantityError
	require.ErrorAs(t, err, &qe)
	assert.Equal(t, domain.QuantityTooLarge, qe.Reason)

	got, err := store.GetCart(ctx, cart.ID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	assert.Equal(t, domain.MaxQuantity, got.Items[0].Quantity)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("45").Mul(decimal.NewFromInt(domain.MaxQuantity))))
}

func TestMemoryStore_RemoveAndConfirm(t *testing.T) {
	store, rest, naan := seedMemory(t)
	ctx := context.Background()
	cart, _ := store.GetOrCreatePending(ctx, rest.ID, "sess-1")

	assert.ErrorIs(t, store.ConfirmCart(ctx, cart.ID), domain.ErrEmptyCart)

	_, err := store.AddLine(ctx, cart.ID, naan, 3)
	require.NoError(t, err)

	outcome, err := store.RemoveLine(ctx, cart.ID, naan.ID, func(int) (int, error) { return 1, nil })
	require.NoError(t, err)
	assert.Equal(t, 2, outcome.Remaining)
	assert.False(t, outcome.Deleted)

	require.NoError(t, store.ConfirmCart(ctx, cart.ID))
	assert.ErrorIs(t, store.ConfirmCart(ctx, cart.ID), domain.ErrCartNotPending)

	_, err = store.AddLine(ctx, cart.ID, naan, 1)
	assert.ErrorIs(t, err, domain.ErrCartNotPending)

	next, err := store.GetOrCreatePending(ctx, rest.ID, "sess-1")
	require.NoError(t, err)
	assert.NotEqual(t, cart.ID, next.ID)

	sales, err := store.TopSellingItems(ctx, rest.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, []domain.ItemSales{{MenuItemID: naan.ID, Sold: 2}}, sales)
}

func TestMemoryStore_RemoveMissingLine(t *testing.T) {
	store, rest, naan := seedMemory(t)
	ctx := context.Background()
	cart, _ := store.GetOrCreatePending(ctx, rest.ID, "sess-1")

	_, err := store.RemoveLine(ctx, cart.ID, naan.ID, func(int) (int, error) { return 1, nil })
	assert.ErrorIs(t, err, domain.ErrItemNotInCart)
}
