package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"overcooked-chatbot/agg-svc/internal/service"
	"overcooked-chatbot/agg-svc/internal/storage"
	"overcooked-chatbot/config"
)

func main() {
	config.Load()
	cfg := config.LoadAggConfig()

	rdb := config.MustInitRedis()
	defer rdb.Close()

	reader := config.NewKafkaReader(cfg.OrdersTopic, cfg.GroupID)
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	consumer := service.NewConsumer(reader, storage.NewStore(rdb, cfg.DailyTTL))
	consumer.Start(ctx)
	log.Println("Aggregation Service exited")
}
