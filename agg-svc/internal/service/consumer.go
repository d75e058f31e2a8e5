package service

import (
	"context"
	"encoding/json"
	"log"

	"overcooked-chatbot/agg-svc/internal/domain"
)

type Consumer struct {
	Reader MessageReader
	Store  StoreInterface
}

func NewConsumer(reader MessageReader, store StoreInterface) *Consumer {
	return &Consumer{
		Reader: reader,
		Store:  store,
	}
}

// Start reads until ctx is cancelled. Undecodable messages are logged and skipped.
func (c *Consumer) Start(ctx context.Context) {
	log.Println("Starting Aggregation Service consumer...")
	for {
		message, err := c.Reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Println("Aggregation Service consumer stopped")
				return
			}
			log.Printf("Error reading message: %v", err)
			continue
		}

		var event domain.OrderEvent
		if err := json.Unmarshal(message.Value, &event); err != nil {
			log.Printf("Error unmarshaling message: %v", err)
			continue
		}

		c.Process(ctx, event)
	}
}

func (c *Consumer) Process(ctx context.Context, event domain.OrderEvent) {
	if event.Type != domain.EventOrderConfirmed {
		return
	}
	if len(event.Items) == 0 {
		log.Printf("Skipping order %d with no items", event.OrderID)
		return
	}
	log.Printf("Processing order: OrderID=%d, RestaurantID=%d, Lines=%d",
		event.OrderID, event.RestaurantID, len(event.Items))

	if err := c.Store.RecordOrder(ctx, event); err != nil {
		log.Printf("Error recording order %d: %v", event.OrderID, err)
		return
	}

	log.Printf("Successfully processed order %d", event.OrderID)
}
