package main

import (
	"log"
	"net/http"
	"time"

	"overcooked-chatbot/api-gateway/internal/gateway"
	"overcooked-chatbot/config"

	"github.com/rs/cors"
)

func main() {
	config.Load()

	gw := gateway.NewGateway(gateway.Config{
		ChatSvcURL: config.Getenv("CHAT_SVC_URL", "http://localhost:8083"),
	}, &http.Client{Timeout: 30 * time.Second})

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8080", "http://127.0.0.1:8080", "*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	handler := c.Handler(gw.SetupRoutes())

	port := config.Getenv("GATEWAY_PORT", "8080")
	log.Println("API Gateway starting on port " + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}
