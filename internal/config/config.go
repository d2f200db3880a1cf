package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL  string
	Port         string
	RedisURL     string
	PlanCacheTTL time.Duration
	RabbitMQURL  string
}

// LoadDotEnv loads a .env file if one exists. Variables already set in the
// environment take precedence.
func LoadDotEnv() bool {
	return godotenv.Load() == nil
}

// Load reads the service configuration from the environment.
func Load() (*Config, error) {
	ttl, err := time.ParseDuration(Get("PLAN_CACHE_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("load config: PLAN_CACHE_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("load config: PLAN_CACHE_TTL must be positive, got %s", ttl)
	}

	cfg := &Config{
		DatabaseURL:  strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Port:         Get("PORT", "8080"),
		RedisURL:     strings.TrimSpace(os.Getenv("REDIS_URL")),
		PlanCacheTTL: ttl,
		RabbitMQURL:  strings.TrimSpace(os.Getenv("RABBITMQ_URL")),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("load config: DATABASE_URL is required")
	}

	return cfg, nil
}

func Get(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
