package domain

type IntentKind string

const (
	IntentShowCart     IntentKind = "SHOW_CART"
	IntentShowMenu     IntentKind = "SHOW_MENU"
	IntentHelp         IntentKind = "HELP"
	IntentClearCart    IntentKind = "CLEAR_CART"
	IntentConfirmOrder IntentKind = "CONFIRM_ORDER"
	IntentSearchItem   IntentKind = "SEARCH_ITEM"
	IntentAddItem      IntentKind = "ADD_ITEM"
	IntentRemoveItem   IntentKind = "REMOVE_ITEM"
	IntentUnknown      IntentKind = "UNKNOWN"
)

// IntentRecord is the classification engine's output. Quantity is left
// loosely typed on purpose: the engine may send 2, 0.5, "3" or nothing.
// Suggestions are the engine's own item summaries and are forwarded as sent.
type IntentRecord struct {
	Kind        IntentKind       `json:"intent"`
	ItemName    string           `json:"item_name,omitempty"`
	Quantity    any              `json:"quantity,omitempty"`
	Confidence  float64          `json:"confidence"`
	Reply       string           `json:"reply,omitempty"`
	Suggestions []map[string]any `json:"suggestions,omitempty"`
}

// MenuSuggestion is the flat item summary the chat widget renders as a card.
type MenuSuggestion struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Category string `json:"category"`
}

const PayloadMenuItems = "menu_items"

// ChatResponse is what every intent produces: reply text, the session's cart
// after the intent was applied, and an optional UI payload.
type ChatResponse struct {
	Reply   string         `json:"reply"`
	Cart    *Cart          `json:"order"`
	Payload map[string]any `json:"payload"`
}
