package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"overcooked-chatbot/chat-svc/internal/domain"
)

// Chatbot turns a classified intent into cart changes and a reply. Domain
// failures (unknown item, bad quantity, empty cart ...) always come back as
// reply text; only storage failures are returned as errors.
type Chatbot struct {
	catalog   CatalogRepository
	sessions  *SessionService
	resolver  *ItemResolver
	carts     *CartService
	menu      MenuLister
	publisher OrderPublisher
}

func NewChatbot(catalog CatalogRepository, carts CartRepository, menu MenuLister, publisher OrderPublisher) *Chatbot {
	return &Chatbot{
		catalog:   catalog,
		sessions:  NewSessionService(carts),
		resolver:  NewItemResolver(catalog),
		carts:     NewCartService(carts),
		menu:      menu,
		publisher: publisher,
	}
}

// Restaurant looks up the restaurant a chat belongs to.
func (c *Chatbot) Restaurant(ctx context.Context, id int) (*domain.Restaurant, error) {
	if id <= 0 {
		return nil, domain.ErrNotLinkedToRestaurant
	}
	restaurant, err := c.catalog.GetRestaurant(ctx, id)
	if errors.Is(err, domain.ErrRestaurantNotFound) {
		return nil, domain.ErrNotLinkedToRestaurant
	}
	if err != nil {
		return nil, fmt.Errorf("get restaurant: %w", err)
	}
	return restaurant, nil
}

func (c *Chatbot) ApplyIntent(ctx context.Context, restaurant *domain.Restaurant, sessionID string, intent domain.IntentRecord) (*domain.ChatResponse, error) {
	if restaurant == nil {
		return respond(replyNotLinked, nil), nil
	}

	cart, err := c.sessions.Resolve(ctx, restaurant.ID, sessionID)
	switch {
	case errors.Is(err, domain.ErrNotLinkedToRestaurant):
		return respond(replyNotLinked, nil), nil
	case errors.Is(err, ErrMissingSession):
		return respond(replyNoSession, nil), nil
	case err != nil:
		return nil, err
	}

	switch intent.Kind {
	case domain.IntentShowCart:
		return respond(CartReply(cart), cart), nil
	case domain.IntentShowMenu:
		return c.showMenu(ctx, cart)
	case domain.IntentHelp:
		return c.help(cart, intent), nil
	case domain.IntentClearCart:
		return c.clearCart(ctx, cart)
	case domain.IntentConfirmOrder:
		return c.confirmOrder(ctx, cart)
	case domain.IntentSearchItem:
		return c.searchItem(cart, intent), nil
	case domain.IntentAddItem:
		return c.addItem(ctx, cart, intent)
	case domain.IntentRemoveItem:
		return c.removeItem(ctx, cart, intent)
	default:
		return respond(replyFallback, cart), nil
	}
}

func (c *Chatbot) showMenu(ctx context.Context, cart *domain.Cart) (*domain.ChatResponse, error) {
	items, err := c.menu.Available(ctx, cart.RestaurantID)
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	if len(items) == 0 {
		return respond(replyNoMenu, cart), nil
	}

	reply, suggestions := MenuReply(items)
	resp := respond(reply, cart)
	resp.Payload[domain.PayloadMenuItems] = suggestions
	return resp, nil
}

func (c *Chatbot) help(cart *domain.Cart, intent domain.IntentRecord) *domain.ChatResponse {
	if strings.TrimSpace(intent.Reply) == "" {
		return respond(replyFallback, cart)
	}
	return respond(intent.Reply, cart)
}

func (c *Chatbot) searchItem(cart *domain.Cart, intent domain.IntentRecord) *domain.ChatResponse {
	resp := respond(intent.Reply, cart)
	if len(intent.Suggestions) > 0 {
		resp.Payload[domain.PayloadMenuItems] = intent.Suggestions
	}
	return resp
}

func (c *Chatbot) clearCart(ctx context.Context, cart *domain.Cart) (*domain.ChatResponse, error) {
	err := c.carts.Clear(ctx, cart)
	if errors.Is(err, domain.ErrCartNotPending) {
		return respond(replyCartClosed, cart), nil
	}
	if err != nil {
		return nil, err
	}
	return c.reload(ctx, cart, func(updated *domain.Cart) string { return replyCleared })
}

func (c *Chatbot) confirmOrder(ctx context.Context, cart *domain.Cart) (*domain.ChatResponse, error) {
	if cart.IsEmpty() {
		return respond(replyConfirmEmpty, cart), nil
	}

	err := c.carts.Confirm(ctx, cart)
	switch {
	case errors.Is(err, domain.ErrEmptyCart):
		return c.reload(ctx, cart, func(*domain.Cart) string { return replyConfirmEmpty })
	case errors.Is(err, domain.ErrCartNotPending):
		// a concurrent request confirmed it first
		return c.reload(ctx, cart, ConfirmedReply)
	case err != nil:
		return nil, err
	}

	resp, err := c.reload(ctx, cart, ConfirmedReply)
	if err != nil {
		return nil, err
	}
	c.publishConfirmed(ctx, resp.Cart)
	return resp, nil
}

func (c *Chatbot) addItem(ctx context.Context, cart *domain.Cart, intent domain.IntentRecord) (*domain.ChatResponse, error) {
	name := strings.TrimSpace(intent.ItemName)
	if name == "" {
		return respond(replyAddWhat, cart), nil
	}

	item, err := c.resolver.Resolve(ctx, cart.RestaurantID, name)
	if errors.Is(err, domain.ErrItemNotFound) {
		similar, err := c.resolver.Suggest(ctx, cart.RestaurantID, name)
		if err != nil {
			return nil, fmt.Errorf("suggest items: %w", err)
		}
		return respond(NotOnMenuReply(name, similar), cart), nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve item: %w", err)
	}

	quantity, err := NormalizeForAdd(intent.Quantity)
	if err != nil {
		return respond(AddQuantityReply(err), cart), nil
	}

	_, err = c.carts.Add(ctx, cart, *item, quantity)
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return respond(AddQuantityReply(err), cart), nil
	case errors.Is(err, domain.ErrCartNotPending):
		return respond(replyCartClosed, cart), nil
	case err != nil:
		return nil, err
	}

	return c.reload(ctx, cart, func(updated *domain.Cart) string {
		return AddedReply(quantity, item.Name, intent.Confidence, updated)
	})
}

func (c *Chatbot) removeItem(ctx context.Context, cart *domain.Cart, intent domain.IntentRecord) (*domain.ChatResponse, error) {
	if cart.IsEmpty() {
		return respond(replyAlreadyEmpty, cart), nil
	}
	name := strings.TrimSpace(intent.ItemName)
	if name == "" {
		return respond(replyRemoveWhich, cart), nil
	}

	item, err := c.resolver.Resolve(ctx, cart.RestaurantID, name)
	if errors.Is(err, domain.ErrItemNotFound) {
		return respond(NotInCartReply(name), cart), nil
	}
	if err != nil {
		return nil, fmt.Errorf("resolve item: %w", err)
	}
	line, ok := cart.Line(item.ID)
	if !ok {
		return respond(NotInCartReply(name), cart), nil
	}

	outcome, err := c.carts.Remove(ctx, cart, *item, func(current int) (int, error) {
		return NormalizeForRemove(intent.Quantity, current)
	})
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		return respond(RemoveQuantityReply(err, line.Name), cart), nil
	case errors.Is(err, domain.ErrItemNotInCart):
		return respond(NotInCartReply(name), cart), nil
	case errors.Is(err, domain.ErrCartNotPending):
		return respond(replyCartClosed, cart), nil
	case err != nil:
		return nil, err
	}

	return c.reload(ctx, cart, func(updated *domain.Cart) string {
		return RemovedReply(*outcome, updated)
	})
}

// reload reads the cart back after a mutation so the reply and the returned
// cart both reflect the committed state.
func (c *Chatbot) reload(ctx context.Context, cart *domain.Cart, render func(*domain.Cart) string) (*domain.ChatResponse, error) {
	updated, err := c.carts.Get(ctx, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("reload cart: %w", err)
	}
	return respond(render(updated), updated), nil
}

func (c *Chatbot) publishConfirmed(ctx context.Context, cart *domain.Cart) {
	if c.publisher == nil {
		return
	}
	event := domain.OrderEvent{
		Type:         domain.EventOrderConfirmed,
		OrderID:      cart.ID,
		RestaurantID: cart.RestaurantID,
		SessionID:    cart.SessionID,
		Total:        cart.Total.StringFixed(2),
		Items:        make([]domain.EventItem, 0, len(cart.Items)),
		Timestamp:    time.Now(),
	}
	for _, line := range cart.Items {
		event.Items = append(event.Items, domain.EventItem{
			MenuItemID: line.MenuItemID,
			Name:       line.Name,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice.StringFixed(2),
		})
	}
	if err := c.publisher.PublishOrderConfirmed(ctx, event); err != nil {
		log.Printf("Warning: failed to publish order %d: %v", cart.ID, err)
	}
}

func respond(reply string, cart *domain.Cart) *domain.ChatResponse {
	return &domain.ChatResponse{
		Reply:   reply,
		Cart:    cart,
		Payload: map[string]any{},
	}
}
