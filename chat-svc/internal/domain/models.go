package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type CartStatus string

const (
	CartStatusPending   CartStatus = "PENDING"
	CartStatusConfirmed CartStatus = "CONFIRMED"
)

const (
	OrderTypeTakeaway = "TAKEAWAY"
	OrderSourceChat   = "chatbot"
)

type Restaurant struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type MenuItem struct {
	ID           int             `json:"id"`
	RestaurantID int             `json:"restaurant_id"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Category     string          `json:"category"`
	Available    bool            `json:"available"`
}

// Cart is the session-scoped order the chatbot mutates. Total is kept in
// sync with Items by the store on every mutation.
type Cart struct {
	ID           int             `json:"id"`
	RestaurantID int             `json:"restaurant_id"`
	SessionID    string          `json:"session_id"`
	Status       CartStatus      `json:"status"`
	Total        decimal.Decimal `json:"total"`
	OrderType    string          `json:"order_type"`
	Source       string          `json:"source"`
	Items        []LineItem      `json:"items"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (c *Cart) IsEmpty() bool {
	return c == nil || len(c.Items) == 0
}

// Line returns the line for menuItemID, if any.
func (c *Cart) Line(menuItemID int) (*LineItem, bool) {
	if c == nil {
		return nil, false
	}
	for i := range c.Items {
		if c.Items[i].MenuItemID == menuItemID {
			return &c.Items[i], true
		}
	}
	return nil, false
}

// LineItem snapshots the menu item's name and price at the time it was
// first added.
type LineItem struct {
	ID         int             `json:"id"`
	CartID     int             `json:"cart_id"`
	MenuItemID int             `json:"menu_item_id"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	UnitPrice  decimal.Decimal `json:"unit_price"`
	TotalPrice decimal.Decimal `json:"total_price"`
	CreatedAt  time.Time       `json:"created_at"`
}

// RemoveOutcome describes what a remove did to a line.
type RemoveOutcome struct {
	Name      string
	Removed   int
	Remaining int
	Deleted   bool
}

// QuantityFunc turns a requested removal into a concrete count, given the
// line's current quantity read under lock.
type QuantityFunc func(current int) (int, error)

// ItemSales is how many units of a menu item went out in confirmed orders.
type ItemSales struct {
	MenuItemID int `json:"menu_item_id"`
	Sold       int `json:"sold"`
}

type PopularItem struct {
	MenuItem
	Sold int `json:"sold"`
}

type OrderEvent struct {
	Type         string      `json:"type"`
	OrderID      int         `json:"order_id"`
	RestaurantID int         `json:"restaurant_id"`
	SessionID    string      `json:"session_id"`
	Total        string      `json:"total"`
	Items        []EventItem `json:"items"`
	Timestamp    time.Time   `json:"timestamp"`
}

type EventItem struct {
	MenuItemID int    `json:"menu_item_id"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
}

const EventOrderConfirmed = "order_confirmed"
