package domain

import "time"

const EventOrderConfirmed = "order_confirmed"

// OrderEvent mirrors what chat-svc publishes when a cart is confirmed.
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
