package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"overcooked-chatbot/chat-svc/internal/api/http"
	"overcooked-chatbot/chat-svc/internal/domain"
	"overcooked-chatbot/chat-svc/internal/service"
	"overcooked-chatbot/chat-svc/internal/storage"
	"overcooked-chatbot/config"

	"github.com/shopspring/decimal"
)

func main() {
	config.Load()
	cfg := config.LoadChatConfig()

	var (
		catalog    service.CatalogRepository
		carts      service.CartRepository
		cache      service.MenuCache
		popularity service.PopularityReader
		publisher  service.OrderPublisher
	)

	switch cfg.StoreDriver {
	case config.StoreDriverMemory:
		store := storage.NewMemoryStore()
		seedDemoMenu(store)
		catalog, carts = store, store
		log.Println("Using in-memory store; carts are lost on restart")

	default:
		db := config.MustInitPostgres()
		defer db.Close()

		repo := storage.NewPostgresRepository(db)
		if cfg.Migrations {
			if err := repo.RunMigrations(); err != nil {
				log.Fatal("Failed to run migrations:", err)
			}
		}
		catalog, carts = repo, repo

		rdb := config.MustInitRedis()
		defer rdb.Close()
		redisCache := storage.NewRedisCache(rdb, cfg.MenuCacheTTL)
		cache, popularity = redisCache, redisCache

		writer := config.NewKafkaWriter(cfg.OrdersTopic)
		defer writer.Close()
		publisher = storage.NewKafkaPublisher(writer)
	}

	menuSvc := service.NewMenuService(catalog, carts, cache, popularity)
	chatbot := service.NewChatbot(catalog, carts, menuSvc, publisher)
	orderSvc := service.NewOrderService(carts, service.DefaultQRGenerator{BaseURL: cfg.QRBaseURL})

	handler := httpapi.NewHandler(chatbot, menuSvc, orderSvc)
	srv := httpapi.NewServer(":"+cfg.Port, httpapi.NewRouter(handler))
	go httpapi.StartServer(srv)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down Chat Service...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}

func seedDemoMenu(store *storage.MemoryStore) {
	rest := store.AddRestaurant("Overcooked Demo Kitchen")
	for _, item := range []struct {
		name, price, category string
	}{
		{"Butter Naan", "45.00", "Breads"},
		{"Garlic Naan", "55.00", "Breads"},
		{"Dal Makhani", "180.00", "Curries"},
		{"Paneer Butter Masala", "220.00", "Curries"},
		{"Masala Chai", "30.00", "Drinks"},
	} {
		store.PutMenuItem(domain.MenuItem{
			RestaurantID: rest.ID,
			Name:         item.name,
			Price:        decimal.RequireFromString(item.price),
			Category:     item.category,
			Available:    true,
		})
	}
}
