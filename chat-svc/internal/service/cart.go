package service

import (
	"context"
	"errors"
	"log"

	"overcooked-chatbot/chat-svc/internal/domain"

	"github.com/shopspring/decimal"
)

// CartService applies line changes to a cart. The repository runs each call
// as one transaction and recomputes the total before committing, so the cart
// read back afterwards is always consistent.
type CartService struct {
	repo CartRepository
}

func NewCartService(repo CartRepository) *CartService {
	return &CartService{repo: repo}
}

func (s *CartService) Get(ctx context.Context, cartID int) (*domain.Cart, error) {
	return s.repo.GetCart(ctx, cartID)
}

// Add merges quantity into the cart's line for item, creating it if needed.
// The unit price of an existing line is kept.
func (s *CartService) Add(ctx context.Context, cart *domain.Cart, item domain.MenuItem, quantity int) (*domain.LineItem, error) {
	if quantity < 1 {
		return nil, &domain.QuantityError{Raw: quantity, Reason: domain.QuantityBelowOne}
	}
	if quantity > domain.MaxQuantity {
		return nil, &domain.QuantityError{Raw: quantity, Reason: domain.QuantityTooLarge}
	}
	if item.RestaurantID != cart.RestaurantID {
		return nil, domain.ErrItemNotFound
	}

	line, err := s.repo.AddLine(ctx, cart.ID, item, quantity)
	if err != nil {
		logRepoError("add line", cart.ID, err)
		return nil, err
	}
	return line, nil
}

// Remove takes units off the item's line; quantity decides how many once the
// current quantity is known. Removing everything deletes the line.
func (s *CartService) Remove(ctx context.Context, cart *domain.Cart, item domain.MenuItem, quantity domain.QuantityFunc) (*domain.RemoveOutcome, error) {
	outcome, err := s.repo.RemoveLine(ctx, cart.ID, item.ID, quantity)
	if err != nil {
		logRepoError("remove line", cart.ID, err)
		return nil, err
	}
	return outcome, nil
}

func (s *CartService) Clear(ctx context.Context, cart *domain.Cart) error {
	if err := s.repo.ClearLines(ctx, cart.ID); err != nil {
		logRepoError("clear lines", cart.ID, err)
		return err
	}
	return nil
}

// RecalcTotal recomputes the total from the stored lines. The stores already
// do this inside every AddLine, RemoveLine and ClearLines call, so it is only
// needed to repair a cart written by something else.
func (s *CartService) RecalcTotal(ctx context.Context, cart *domain.Cart) (decimal.Decimal, error) {
	total, err := s.repo.RecalcTotal(ctx, cart.ID)
	if err != nil {
		return decimal.Zero, err
	}
	cart.Total = total
	return total, nil
}

func (s *CartService) Confirm(ctx context.Context, cart *domain.Cart) error {
	if err := s.repo.ConfirmCart(ctx, cart.ID); err != nil {
		logRepoError("confirm cart", cart.ID, err)
		return err
	}
	return nil
}

// logRepoError skips outcomes the router turns into replies.
func logRepoError(op string, cartID int, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity),
		errors.Is(err, domain.ErrItemNotInCart),
		errors.Is(err, domain.ErrEmptyCart),
		errors.Is(err, domain.ErrCartNotPending):
		return
	}
	log.Printf("repo %s error: cart=%d: %v", op, cartID, err)
}
