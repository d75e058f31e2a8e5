package service

import (
	"context"

	"overcooked-chatbot/chat-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// CatalogRepository is the read-only view of restaurants and their menus.
// Name lookups are case-insensitive and return matches by ascending id.
type CatalogRepository interface {
	GetRestaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	FindMenuItemByName(ctx context.Context, restaurantID int, name string) (*domain.MenuItem, error)
	SearchMenuItems(ctx context.Context, restaurantID int, fragment string, limit int) ([]domain.MenuItem, error)
	ListAvailableMenuItems(ctx context.Context, restaurantID, limit int) ([]domain.MenuItem, error)
	ListCategories(ctx context.Context, restaurantID int) ([]string, error)
	GetMenuItems(ctx context.Context, restaurantID int, ids []int) ([]domain.MenuItem, error)
}

// CartRepository owns carts and their lines. Every mutating method is one
// atomic unit that also recomputes the cart total before it commits.
type CartRepository interface {
	GetOrCreatePending(ctx context.Context, restaurantID int, sessionID string) (*domain.Cart, error)
	GetCart(ctx context.Context, cartID int) (*domain.Cart, error)
	AddLine(ctx context.Context, cartID int, item domain.MenuItem, quantity int) (*domain.LineItem, error)
	RemoveLine(ctx context.Context, cartID, menuItemID int, quantity domain.QuantityFunc) (*domain.RemoveOutcome, error)
	ClearLines(ctx context.Context, cartID int) error
	RecalcTotal(ctx context.Context, cartID int) (decimal.Decimal, error)
	ConfirmCart(ctx context.Context, cartID int) error
	TopSellingItems(ctx context.Context, restaurantID, limit int) ([]domain.ItemSales, error)
}

type MenuCache interface {
	GetMenu(ctx context.Context, restaurantID int) ([]domain.MenuItem, error)
	SetMenu(ctx context.Context, restaurantID int, items []domain.MenuItem) error
}

type PopularityReader interface {
	TopItems(ctx context.Context, restaurantID, limit int) ([]domain.ItemSales, error)
}

type OrderPublisher interface {
	PublishOrderConfirmed(ctx context.Context, event domain.OrderEvent) error
}

type MenuLister interface {
	Available(ctx context.Context, restaurantID int) ([]domain.MenuItem, error)
}

type ChatbotInterface interface {
	Restaurant(ctx context.Context, id int) (*domain.Restaurant, error)
	ApplyIntent(ctx context.Context, restaurant *domain.Restaurant, sessionID string, intent domain.IntentRecord) (*domain.ChatResponse, error)
}

type MenuServiceInterface interface {
	MenuLister
	Categories(ctx context.Context, restaurantID int) ([]string, error)
	Popular(ctx context.Context, restaurantID, limit int) ([]domain.PopularItem, error)
}

type OrderServiceInterface interface {
	Get(ctx context.Context, orderID int) (*domain.Cart, error)
	QRCode(ctx context.Context, orderID int) ([]byte, error)
	QRLink(orderID int) string
}

var (
	_ ChatbotInterface      = (*Chatbot)(nil)
	_ MenuServiceInterface  = (*MenuService)(nil)
	_ OrderServiceInterface = (*OrderService)(nil)
)
