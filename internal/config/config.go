package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

// Config holds the application configuration.
type Config struct {
	ServerPort int
	AppEnv     string

	MongoURI string
	MongoDB  string

	// SessionStore selects the session backend: "memory" or "redis".
	SessionStore  string
	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionTTL time.Duration
	SweepSpec  string // cron expression for the expired-session sweep
}

// Load loads configuration from environment variables or sets defaults.
// A local .env file is applied first when present.
func Load() (*Config, error) {
	// Missing .env is fine; real env vars win either way.
	_ = godotenv.Load()

	port, err := strconv.Atoi(getEnv("PORT", "3000"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_DB: %w", err)
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	cfg := &Config{
		ServerPort:    port,
		AppEnv:        getEnv("APP_ENV", "development"),
		MongoURI:      getEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:       getEnv("MONGO_DB", "blogApp"),
		SessionStore:  getEnv("SESSION_STORE", "memory"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       redisDB,
		SessionTTL:    ttl,
		SweepSpec:     getEnv("SESSION_SWEEP", "*/10 * * * *"),
	}

	if cfg.SessionStore != "memory" && cfg.SessionStore != "redis" {
		return nil, fmt.Errorf("invalid SESSION_STORE %q: must be memory or redis", cfg.SessionStore)
	}
	if _, err := cron.ParseStandard(cfg.SweepSpec); err != nil {
		return nil, fmt.Errorf("invalid SESSION_SWEEP: %w", err)
	}

	return cfg, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
