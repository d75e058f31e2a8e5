package service

import (
	"context"

	"overcooked-chatbot/agg-svc/internal/domain"
	"overcooked-chatbot/agg-svc/internal/storage"

	"github.com/segmentio/kafka-go"
)

type StoreInterface interface {
	RecordOrder(ctx context.Context, event domain.OrderEvent) error
}

type MessageReader interface {
	ReadMessage(ctx context.Context) (kafka.Message, error)
}

type ConsumerInterface interface {
	Start(ctx context.Context)
	Process(ctx context.Context, event domain.OrderEvent)
}

var _ StoreInterface = (*storage.Store)(nil)
