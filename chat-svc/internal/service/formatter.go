package service

import (
	"errors"
	"fmt"
	"strings"

	"overcooked-chatbot/chat-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// ConfidenceThreshold separates a confident acknowledgement from a tentative
// one in add replies.
const ConfidenceThreshold = 0.7

const (
	markConfident = "✅"
	markTentative = "👍"
	uncategorized = "Other"
)

const (
	replyCartEmpty      = "Your cart is empty."
	replyNoMenu         = "This restaurant has no menu items yet."
	replyCleared        = "✅ Your cart has been cleared."
	replyConfirmEmpty   = "Your cart is empty. Add some items before confirming."
	replyAddWhat        = "I couldn't figure out what to add. Try 'add butter naan' or 'menu'."
	replyAddNotWhole    = "I can only add whole items. For example: 'add 2 butter naan'."
	replyAddBelowOne    = "Quantity must be at least 1 full item. Try 'add 1 butter naan'."
	replyAddTooLarge    = "That's more than one order can hold. Try a smaller quantity."
	replyAlreadyEmpty   = "Your cart is already empty."
	replyRemoveWhich    = "Which item would you like to remove?"
	replyCartClosed     = "This order was already confirmed. Send your next request to start a new cart."
	replyNotLinked      = "This chat is not linked to any restaurant."
	replyNoSession      = "I couldn't tell which chat this is. Please reload and try again."
	replyFallback       = "I'm not sure what to do. Try 'menu', 'cart', 'add [item]', or 'confirm'."
	replyMenuHeader     = "Here's our menu:\n"
	replyMenuFooter     = "\n\nJust tap an item or tell me what you'd like to add!"
	replyCartHeader     = "Here is your cart:\n"
	replyNowEmptySuffix = " Your cart is now empty."
)

// Money renders an amount the same way everywhere: rupee sign, two places.
func Money(amount decimal.Decimal) string {
	return "₹" + amount.StringFixed(2)
}

func CartReply(cart *domain.Cart) string {
	if cart.IsEmpty() {
		return replyCartEmpty
	}
	lines := make([]string, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, fmt.Sprintf("%d × %s — %s", item.Quantity, item.Name, Money(item.TotalPrice)))
	}
	return replyCartHeader + strings.Join(lines, "\n") + "\nTotal: " + Money(cart.Total)
}

// MenuReply groups items under category headings, keeping the order it is
// given, and returns the matching card payload.
func MenuReply(items []domain.MenuItem) (string, []domain.MenuSuggestion) {
	if len(items) == 0 {
		return replyNoMenu, nil
	}

	var lines []string
	suggestions := make([]domain.MenuSuggestion, 0, len(items))
	current := ""
	for i, item := range items {
		category := item.Category
		if category == "" {
			category = uncategorized
		}
		if i == 0 || category != current {
			current = category
			lines = append(lines, "\n**"+current+"**")
		}
		lines = append(lines, fmt.Sprintf("• %s — %s", item.Name, Money(item.Price)))
		suggestions = append(suggestions, Suggestion(item))
	}
	return replyMenuHeader + strings.Join(lines, "\n") + replyMenuFooter, suggestions
}

func Suggestion(item domain.MenuItem) domain.MenuSuggestion {
	return domain.MenuSuggestion{
		ID:       item.ID,
		Name:     item.Name,
		Price:    item.Price.StringFixed(2),
		Category: item.Category,
	}
}

func AddedReply(quantity int, name string, confidence float64, cart *domain.Cart) string {
	mark := markTentative
	if confidence > ConfidenceThreshold {
		mark = markConfident
	}
	return fmt.Sprintf("%s Added %d × %s to your cart.\nCurrent total: %s", mark, quantity, name, Money(cart.Total))
}

func NotOnMenuReply(requested string, similar []domain.MenuItem) string {
	if len(similar) == 0 {
		return fmt.Sprintf("Sorry, '%s' is not on our menu. Type 'menu' to see options.", requested)
	}
	names := make([]string, 0, len(similar))
	for _, item := range similar {
		names = append(names, item.Name)
	}
	return fmt.Sprintf("I couldn't find '%s'. Did you mean: %s?", requested, strings.Join(names, ", "))
}

func AddQuantityReply(err error) string {
	switch quantityReason(err) {
	case domain.QuantityBelowOne:
		return replyAddBelowOne
	case domain.QuantityTooLarge:
		return replyAddTooLarge
	}
	return replyAddNotWhole
}

func RemoveQuantityReply(err error, name string) string {
	if quantityReason(err) == domain.QuantityBelowOne {
		return fmt.Sprintf("Quantity must be at least 1 full item. For example: 'remove 1 %s'.", name)
	}
	return fmt.Sprintf("I can only remove whole items. Try 'remove 1 %s'.", name)
}

func NotInCartReply(requested string) string {
	return fmt.Sprintf("'%s' is not in your cart.", requested)
}

func RemovedReply(outcome domain.RemoveOutcome, cart *domain.Cart) string {
	var msg string
	if outcome.Deleted {
		msg = fmt.Sprintf("Removed %s from your cart.", outcome.Name)
	} else {
		msg = fmt.Sprintf("Removed %d × %s from your cart.", outcome.Removed, outcome.Name)
	}
	msg += " Current total: " + Money(cart.Total)
	if cart.IsEmpty() {
		msg += replyNowEmptySuffix
	}
	return msg
}

func ConfirmedReply(cart *domain.Cart) string {
	return fmt.Sprintf("✅ Order #%d confirmed! Total: %s\n\nThank you for your order!", cart.ID, Money(cart.Total))
}

func quantityReason(err error) domain.QuantityReason {
	var qe *domain.QuantityError
	if errors.As(err, &qe) {
		return qe.Reason
	}
	return domain.QuantityNotWhole
}
