package storage

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"overcooked-chatbot/chat-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// MemoryStore keeps the catalog and carts in process. A single mutex makes
// every method one serializable unit, which is the same guarantee the
// Postgres store gets from row locks.
type MemoryStore struct {
	mu          sync.Mutex
	restaurants map[int]domain.Restaurant
	menu        map[int]domain.MenuItem
	carts       map[int]*domain.Cart

	nextRestaurantID int
	nextMenuItemID   int
	nextCartID       int
	nextLineID       int
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		restaurants: make(map[int]domain.Restaurant),
		menu:        make(map[int]domain.MenuItem),
		carts:       make(map[int]*domain.Cart),
	}
}

func (s *MemoryStore) AddRestaurant(name string) domain.Restaurant {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextRestaurantID++
	rest := domain.Restaurant{ID: s.nextRestaurantID, Name: name, CreatedAt: time.Now()}
	s.restaurants[rest.ID] = rest
	return rest
}

// PutMenuItem inserts the item, or replaces it when item.ID is already known.
func (s *MemoryStore) PutMenuItem(item domain.MenuItem) domain.MenuItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.menu[item.ID]; !ok || item.ID == 0 {
		s.nextMenuItemID++
		item.ID = s.nextMenuItemID
	}
	s.menu[item.ID] = item
	return item
}

func (s *MemoryStore) GetRestaurant(_ context.Context, id int) (*domain.Restaurant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rest, ok := s.restaurants[id]
	if !ok {
		return nil, domain.ErrRestaurantNotFound
	}
	return &rest, nil
}

func (s *MemoryStore) FindMenuItemByName(_ context.Context, restaurantID int, name string) (*domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.menuOf(restaurantID) {
		if strings.EqualFold(item.Name, name) {
			return &item, nil
		}
	}
	return nil, domain.ErrItemNotFound
}

func (s *MemoryStore) SearchMenuItems(_ context.Context, restaurantID int, fragment string, limit int) ([]domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	needle := strings.ToLower(fragment)
	var matches []domain.MenuItem
	for _, item := range s.menuOf(restaurantID) {
		if limit > 0 && len(matches) == limit {
			break
		}
		if strings.Contains(strings.ToLower(item.Name), needle) {
			matches = append(matches, item)
		}
	}
	return matches, nil
}

func (s *MemoryStore) ListAvailableMenuItems(_ context.Context, restaurantID, limit int) ([]domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []domain.MenuItem
	for _, item := range s.menuOf(restaurantID) {
		if item.Available {
			items = append(items, item)
		}
	}
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Category != items[j].Category {
			return items[i].Category < items[j].Category
		}
		return items[i].Name < items[j].Name
	})
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

func (s *MemoryStore) ListCategories(_ context.Context, restaurantID int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	categories := []string{}
	for _, item := range s.menuOf(restaurantID) {
		if !item.Available || item.Category == "" || seen[item.Category] {
			continue
		}
		seen[item.Category] = true
		categories = append(categories, item.Category)
	}
	sort.Strings(categories)
	return categories, nil
}

func (s *MemoryStore) GetMenuItems(_ context.Context, restaurantID int, ids []int) ([]domain.MenuItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var items []domain.MenuItem
	for _, id := range ids {
		if item, ok := s.menu[id]; ok && item.RestaurantID == restaurantID {
			items = append(items, item)
		}
	}
	return items, nil
}

// menuOf returns the restaurant's items by ascending id. Caller holds mu.
func (s *MemoryStore) menuOf(restaurantID int) []domain.MenuItem {
	var items []domain.MenuItem
	for _, item := range s.menu {
		if item.RestaurantID == restaurantID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items
}

func (s *MemoryStore) GetOrCreatePending(_ context.Context, restaurantID int, sessionID string) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, cart := range s.carts {
		if cart.RestaurantID == restaurantID && cart.SessionID == sessionID && cart.Status == domain.CartStatusPending {
			return copyCart(cart), nil
		}
	}

	now := time.Now()
	s.nextCartID++
	cart := &domain.Cart{
		ID:           s.nextCartID,
		RestaurantID: restaurantID,
		SessionID:    sessionID,
		Status:       domain.CartStatusPending,
		Total:        decimal.Zero,
		OrderType:    domain.OrderTypeTakeaway,
		Source:       domain.OrderSourceChat,
		Items:        []domain.LineItem{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.carts[cart.ID] = cart
	return copyCart(cart), nil
}

func (s *MemoryStore) GetCart(_ context.Context, cartID int) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	return copyCart(cart), nil
}

func (s *MemoryStore) AddLine(_ context.Context, cartID int, item domain.MenuItem, quantity int) (*domain.LineItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.pendingCart(cartID)
	if err != nil {
		return nil, err
	}

	var line *domain.LineItem
	for i := range cart.Items {
		if cart.Items[i].MenuItemID == item.ID {
			line = &cart.Items[i]
			break
		}
	}
	if line != nil {
		if quantity > domain.MaxQuantity-line.Quantity {
			return nil, &domain.QuantityError{Raw: line.Quantity + quantity, Reason: domain.QuantityTooLarge}
		}
		line.Quantity += quantity
		line.TotalPrice = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
	} else {
		s.nextLineID++
		cart.Items = append(cart.Items, domain.LineItem{
			ID:         s.nextLineID,
			CartID:     cart.ID,
			MenuItemID: item.ID,
			Name:       item.Name,
			Quantity:   quantity,
			UnitPrice:  item.Price,
			TotalPrice: item.Price.Mul(decimal.NewFromInt(int64(quantity))),
			CreatedAt:  time.Now(),
		})
		line = &cart.Items[len(cart.Items)-1]
	}
	added := *line
	recalc(cart)
	return &added, nil
}

func (s *MemoryStore) RemoveLine(_ context.Context, cartID, menuItemID int, quantity domain.QuantityFunc) (*domain.RemoveOutcome, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.pendingCart(cartID)
	if err != nil {
		return nil, err
	}

	idx := -1
	for i := range cart.Items {
		if cart.Items[i].MenuItemID == menuItemID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, domain.ErrItemNotInCart
	}

	line := &cart.Items[idx]
	n, err := quantity(line.Quantity)
	if err != nil {
		return nil, err
	}

	outcome := &domain.RemoveOutcome{Name: line.Name, Removed: n}
	if n >= line.Quantity {
		outcome.Removed = line.Quantity
		outcome.Deleted = true
		cart.Items = append(cart.Items[:idx], cart.Items[idx+1:]...)
	} else {
		line.Quantity -= n
		line.TotalPrice = line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		outcome.Remaining = line.Quantity
	}
	recalc(cart)
	return outcome, nil
}

func (s *MemoryStore) ClearLines(_ context.Context, cartID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.pendingCart(cartID)
	if err != nil {
		return err
	}
	cart.Items = []domain.LineItem{}
	recalc(cart)
	return nil
}

func (s *MemoryStore) RecalcTotal(_ context.Context, cartID int) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartID]
	if !ok {
		return decimal.Zero, domain.ErrCartNotFound
	}
	recalc(cart)
	return cart.Total, nil
}

func (s *MemoryStore) ConfirmCart(_ context.Context, cartID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, err := s.pendingCart(cartID)
	if err != nil {
		return err
	}
	if len(cart.Items) == 0 {
		return domain.ErrEmptyCart
	}
	cart.Status = domain.CartStatusConfirmed
	cart.UpdatedAt = time.Now()
	return nil
}

func (s *MemoryStore) TopSellingItems(_ context.Context, restaurantID, limit int) ([]domain.ItemSales, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sold := make(map[int]int)
	for _, cart := range s.carts {
		if cart.RestaurantID != restaurantID || cart.Status != domain.CartStatusConfirmed {
			continue
		}
		for _, line := range cart.Items {
			sold[line.MenuItemID] += line.Quantity
		}
	}

	sales := make([]domain.ItemSales, 0, len(sold))
	for id, n := range sold {
		sales = append(sales, domain.ItemSales{MenuItemID: id, Sold: n})
	}
	sort.Slice(sales, func(i, j int) bool {
		if sales[i].Sold != sales[j].Sold {
			return sales[i].Sold > sales[j].Sold
		}
		return sales[i].MenuItemID < sales[j].MenuItemID
	})
	if limit > 0 && len(sales) > limit {
		sales = sales[:limit]
	}
	return sales, nil
}

func (s *MemoryStore) pendingCart(cartID int) (*domain.Cart, error) {
	cart, ok := s.carts[cartID]
	if !ok {
		return nil, domain.ErrCartNotFound
	}
	if cart.Status != domain.CartStatusPending {
		return nil, domain.ErrCartNotPending
	}
	return cart, nil
}

func recalc(cart *domain.Cart) {
	total := decimal.Zero
	for _, line := range cart.Items {
		total = total.Add(line.TotalPrice)
	}
	cart.Total = total
	cart.UpdatedAt = time.Now()
}

func copyCart(cart *domain.Cart) *domain.Cart {
	c := *cart
	c.Items = append([]domain.LineItem{}, cart.Items...)
	return &c
}
