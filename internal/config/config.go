package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the service reads at startup. Values come from the
// environment, with a .env file honoured for local development.
type Config struct {
	AppEnv     string
	ListenAddr string

	AWSRegion     string
	OrdersTable   string
	ProductsTable string
	InvoiceBucket string
	OrderTopicARN string

	AuthUsername string
	AuthPassword string
	JWTSecret    string
	TokenTTL     time.Duration

	InvoiceURLTTL     time.Duration
	AnalyticsTimezone string
}

// Load reads .env (if present) and builds the config from environment
// variables with defaults.
func Load() (*Config, error) {
	// .env is optional; real deployments inject env vars directly.
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:            getEnv("APP_ENV", "development"),
		ListenAddr:        getEnv("LISTEN_ADDR", ":8080"),
		AWSRegion:         getEnv("AWS_REGION", "ap-south-1"),
		OrdersTable:       getEnv("ORDERS_TABLE", "orders"),
		ProductsTable:     getEnv("PRODUCTS_TABLE", "products"),
		InvoiceBucket:     os.Getenv("INVOICE_BUCKET"),
		OrderTopicARN:     os.Getenv("ORDER_TOPIC_ARN"),
		AuthUsername:      os.Getenv("AUTH_USERNAME"),
		AuthPassword:      os.Getenv("AUTH_PASSWORD"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		TokenTTL:          getDuration("TOKEN_TTL", 24*time.Hour),
		InvoiceURLTTL:     getDuration("INVOICE_URL_TTL", 15*time.Minute),
		AnalyticsTimezone: getEnv("ANALYTICS_TIMEZONE", "Asia/Kolkata"),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	required := map[string]string{
		"INVOICE_BUCKET":  c.InvoiceBucket,
		"ORDER_TOPIC_ARN": c.OrderTopicARN,
		"AUTH_USERNAME":   c.AuthUsername,
		"AUTH_PASSWORD":   c.AuthPassword,
		"JWT_SECRET":      c.JWTSecret,
	}
	for name, v := range required {
		if v == "" {
			return fmt.Errorf("config: %s is required", name)
		}
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
