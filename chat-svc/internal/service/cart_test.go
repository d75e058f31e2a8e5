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

func TestCartService_AddValidation(t *testing.T) {
	ctx := context.Background()
	cart := &domain.Cart{ID: 5, RestaurantID: 1}

	tests := []struct {
		name     string
		item     domain.MenuItem
		quantity int
		wantErr  error
	}{
		{name: "zero quantity", item: domain.MenuItem{ID: 4, RestaurantID: 1}, quantity: 0, wantErr: domain.ErrInvalidQuantity},
		{name: "other restaurant's item", item: domain.MenuItem{ID: 4, RestaurantID: 2}, quantity: 1, wantErr: domain.ErrItemNotFound},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			svc := service.NewCartService(mocks.NewCartRepository(t))
			_, err := svc.Add(ctx, cart, testCase.item, testCase.quantity)
			assert.ErrorIs(t, err, testCase.wantErr)
		})
	}
}

func TestCartService_RecalcTotal(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewCartRepository(t)
	repo.On("RecalcTotal", ctx, 5).Return(decimal.RequireFromString("135"), nil).Once()

	cart := &domain.Cart{ID: 5}
	total, err := service.NewCartService(repo).RecalcTotal(ctx, cart)
	require.NoError(t, err)
	assert.True(t, total.Equal(cart.Total))
	assert.Equal(t, "135", cart.Total.String())
}

func TestSessionService_Resolve(t *testing.T) {
	ctx := context.Background()
	repo := mocks.NewCartRepository(t)
	repo.On("GetOrCreatePending", ctx, 1, "sess-1").Return(&domain.Cart{ID: 5}, nil).Once()

	svc := service.NewSessionService(repo)

	cart, err := svc.Resolve(ctx, 1, "  sess-1 ")
	require.NoError(t, err)
	assert.Equal(t, 5, cart.ID)

	_, err = svc.Resolve(ctx, 0, "sess-1")
	assert.ErrorIs(t, err, domain.ErrNotLinkedToRestaurant)

	_, err = svc.Resolve(ctx, 1, " ")
	assert.ErrorIs(t, err, service.ErrMissingSession)
}
