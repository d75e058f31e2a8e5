package domain

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrItemNotFound          = errors.New("menu item not found")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrEmptyCart             = errors.New("cart is empty")
	ErrItemNotInCart         = errors.New("item not in cart")
	ErrNotLinkedToRestaurant = errors.New("not linked to any restaurant")

	ErrCartNotFound   = errors.New("cart not found")
	ErrCartNotPending = errors.New("cart is no longer pending")
	ErrCartContention = errors.New("could not resolve pending cart under contention")

	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrOrderNotConfirmed  = errors.New("order is not confirmed")
	ErrCacheMiss          = errors.New("cache miss")
)

type QuantityReason string

const (
	QuantityNotWhole QuantityReason = "not a whole number"
	QuantityBelowOne QuantityReason = "less than one"
	QuantityTooLarge QuantityReason = "too large"
)

// MaxQuantity bounds a line's quantity, the range of the INTEGER column.
const MaxQuantity = math.MaxInt32

// QuantityError reports why a raw quantity was rejected. It matches
// ErrInvalidQuantity with errors.Is.
type QuantityError struct {
	Raw    any
	Reason QuantityReason
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("invalid quantity %v: %s", e.Raw, e.Reason)
}

func (e *QuantityError) Unwrap() error {
	return ErrInvalidQuantity
}
