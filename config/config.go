package config

import (
	"context"
	"database/sql"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// ChatConfig holds the settings of chat-svc that are not connection strings.
type ChatConfig struct {
	Port         string
	StoreDriver  string
	MenuCacheTTL time.Duration
	QRBaseURL    string
	OrdersTopic  string
	Migrations   bool
}

// AggConfig holds the settings of agg-svc.
type AggConfig struct {
	OrdersTopic string
	GroupID     string
	DailyTTL    time.Duration
}

// Load reads an optional .env file into the process environment. Variables
// that are already set win over the file.
func Load(files ...string) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			log.Printf("Warning: failed to load %s: %v", f, err)
		}
	}
}

func LoadChatConfig() ChatConfig {
	return ChatConfig{
		Port:         Getenv("CHAT_PORT", "8083"),
		StoreDriver:  strings.ToLower(Getenv("STORE_DRIVER", StoreDriverPostgres)),
		MenuCacheTTL: GetDuration("MENU_CACHE_TTL", 10*time.Minute),
		QRBaseURL:    Getenv("QR_BASE_URL", "http://localhost:8083"),
		OrdersTopic:  Getenv("ORDERS_TOPIC", "orders"),
		Migrations:   GetBool("RUN_MIGRATIONS", true),
	}
}

func LoadAggConfig() AggConfig {
	return AggConfig{
		OrdersTopic: Getenv("ORDERS_TOPIC", "orders"),
		GroupID:     Getenv("POPULAR_GROUP_ID", "agg-svc-popular"),
		DailyTTL:    GetDuration("DAILY_COUNTER_TTL", 7*24*time.Hour),
	}
}

func Getenv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %s", key, raw, defaultValue)
		return defaultValue
	}
	return d
}

func GetBool(key string, defaultValue bool) bool {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using %t", key, raw, defaultValue)
		return defaultValue
	}
	return b
}

func PostgresDSN() string {
	return "host=" + Getenv("DB_HOST", "localhost") +
		" port=" + Getenv("DB_PORT", "5432") +
		" user=" + Getenv("DB_USER", "postgres") +
		" password=" + os.Getenv("DB_PASSWORD") +
		" dbname=" + Getenv("DB_NAME", "overcooked") +
		" sslmode=disable"
}

func MustInitPostgres() *sql.DB {
	db, err := sql.Open("postgres", PostgresDSN())
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err = db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	return db
}

func MustInitRedis() *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr: Getenv("REDIS_HOST", "localhost") + ":" + Getenv("REDIS_PORT", "6379"),
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	return client
}

func NewKafkaReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{Getenv("KAFKA_BROKER", "localhost:9092")},
		Topic:   topic,
		GroupID: groupID,
	})
}

func NewKafkaWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(Getenv("KAFKA_BROKER", "localhost:9092")),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}
