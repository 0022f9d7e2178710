package config

import (
	"os"
	"strconv"
	"time"
)

// Config carries everything the client needs to talk to the canteen API
// and to keep its local session snapshot.
type Config struct {
	APIBaseURL       string
	HTTPTimeout      time.Duration
	SnapshotPath     string
	DefaultPartySize int
}

// Load reads configuration from environment variables with sensible
// defaults. Callers load .env beforehand (godotenv in main).
func Load() *Config {
	cfg := &Config{
		APIBaseURL:       getEnv("CANTEEN_API_URL", "http://localhost:8000/api/v1"),
		HTTPTimeout:      time.Duration(getEnvInt("CANTEEN_HTTP_TIMEOUT_SECONDS", 30)) * time.Second,
		SnapshotPath:     getEnv("CANTEEN_SNAPSHOT_PATH", "canteen-session.db"),
		DefaultPartySize: getEnvInt("CANTEEN_DEFAULT_PARTY_SIZE", 2),
	}
	if cfg.DefaultPartySize < 1 {
		cfg.DefaultPartySize = 1
	}
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
