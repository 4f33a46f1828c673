package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	APIBaseURL    string
	SessionDBPath string

	// Zero means no client-side timeout; a hung request hangs until the
	// user interrupts, matching the browser client this replaces.
	HTTPTimeout time.Duration

	LogLevel  string
	LogFormat string
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	cfg := &Config{
		APIBaseURL:    EnvDefault("STOREFRONT_API_URL", "http://localhost:8080"),
		SessionDBPath: EnvDefault("STOREFRONT_SESSION_DB", defaultSessionPath()),
		HTTPTimeout:   time.Duration(EnvIntDefault("HTTP_TIMEOUT_SECONDS", 0)) * time.Second,
		LogLevel:      EnvDefault("LOG_LEVEL", "info"),
		LogFormat:     EnvDefault("LOG_FORMAT", "text"),
	}

	return cfg, nil
}

func defaultSessionPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "session.db"
	}
	return filepath.Join(home, ".storefront", "session.db")
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
