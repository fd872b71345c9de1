package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string
	Port     uint16
	Catalog  CatalogConfig
	Webhook  WebhookConfig
	Snapshot SnapshotConfig
	CORS     CORSConfig
}

// CatalogConfig holds the upstream products endpoint configuration.
type CatalogConfig struct {
	// URL is the full products endpoint on the upstream catalog API.
	URL string

	// CacheTTL bounds how long a fetched catalog is served without
	// refetching. Zero disables expiry.
	CacheTTL time.Duration
}

// WebhookConfig holds the order notification endpoint configuration.
type WebhookConfig struct {
	// URL is the chat-bot relay webhook. When empty, order notifications are
	// sent to a mock notifier that accepts everything (development mode).
	URL string
}

// SnapshotConfig holds cart snapshot persistence configuration.
type SnapshotConfig struct {
	Provider  string // "local" or "redis"
	LocalPath string // snapshot file path for the local provider
	RedisURL  string
	Key       string // Redis key for the redis provider
}

// CORSConfig holds allowed origins for the browser UI.
type CORSConfig struct {
	AllowedOrigins []string
}

func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	err := godotenv.Load()
	if err != nil {
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("Warning: .env file not found, using environment variables and defaults")
		}
	}

	cfg := &Config{
		Env:      getEnv("ENV", "dev"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
		Port:     getEnvInt("PORT", 3000),
		Catalog: CatalogConfig{
			URL:      getEnv("CATALOG_URL", "http://localhost:8000/Produto/produtos"),
			CacheTTL: getEnvSeconds("CATALOG_CACHE_TTL_SECONDS", 300),
		},
		Webhook: WebhookConfig{
			URL: getEnv("WEBHOOK_URL", ""),
		},
		Snapshot: SnapshotConfig{
			Provider:  getEnv("SNAPSHOT_PROVIDER", "local"),
			LocalPath: getEnv("SNAPSHOT_PATH", "./data/cart.json"),
			RedisURL:  getEnv("REDIS_URL", "redis://localhost:6379/0"),
			Key:       getEnv("SNAPSHOT_KEY", "vitrine:cart"),
		},
		CORS: CORSConfig{
			AllowedOrigins: splitOrigins(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
	}

	// Validate env
	validEnv := cfg.Env == "dev" || cfg.Env == "prod"
	if !validEnv {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	// Validate log level
	validLevel := cfg.LogLevel == "info" || cfg.LogLevel == "debug" || cfg.LogLevel == "warn" || cfg.LogLevel == "error"
	if !validLevel {
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	// A real webhook is required in production; the mock notifier would
	// silently swallow orders.
	if cfg.Env == "prod" && cfg.Webhook.URL == "" {
		return nil, fmt.Errorf("WEBHOOK_URL must be set in production environment")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue uint16) uint16 {
	if value := os.Getenv(key); value != "" {
		var intValue uint16
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvSeconds(key string, defaultValue int) time.Duration {
	seconds := defaultValue
	if value := os.Getenv(key); value != "" {
		var intValue int
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			seconds = intValue
		}
	}
	return time.Duration(seconds) * time.Second
}

func splitOrigins(value string) []string {
	parts := strings.Split(value, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
