package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"overcooked-chatbot/chat-svc/internal/domain"
)

var ErrMissingSession = errors.New("session id is required")

// SessionService hands out the single open cart of a chat session.
type SessionService struct {
	carts CartRepository
}

func NewSessionService(carts CartRepository) *SessionService {
	return &SessionService{carts: carts}
}

func (s *SessionService) Resolve(ctx context.Context, restaurantID int, sessionID string) (*domain.Cart, error) {
	if restaurantID <= 0 {
		return nil, domain.ErrNotLinkedToRestaurant
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrMissingSession
	}

	cart, err := s.carts.GetOrCreatePending(ctx, restaurantID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("resolve pending cart: %w", err)
	}
	return cart, nil
}
