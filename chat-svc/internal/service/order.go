package service

import (
	"context"
	"fmt"

	"overcooked-chatbot/chat-svc/internal/domain"
)

// OrderService exposes carts by id once the chat is over.
type OrderService struct {
	carts     CartRepository
	qrEncoder QRGenerator
}

func NewOrderService(carts CartRepository, qr QRGenerator) *OrderService {
	return &OrderService{carts: carts, qrEncoder: qr}
}

func (s *OrderService) Get(ctx context.Context, orderID int) (*domain.Cart, error) {
	return s.carts.GetCart(ctx, orderID)
}

// QRCode is only issued for confirmed orders.
func (s *OrderService) QRCode(ctx context.Context, orderID int) ([]byte, error) {
	cart, err := s.carts.GetCart(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if cart.Status != domain.CartStatusConfirmed {
		return nil, domain.ErrOrderNotConfirmed
	}
	if s.qrEncoder == nil {
		return nil, fmt.Errorf("qr encoder not configured")
	}
	return s.qrEncoder.Generate(orderID)
}

func (s *OrderService) QRLink(orderID int) string {
	return fmt.Sprintf("/api/orders/%d/qrcode", orderID)
}
