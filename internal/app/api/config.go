package api

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port         string
	PostgresDSN  string
	HistoryLimit int
}

const defaultHistoryLimit = 20

// LoadConfig reads environment variables, applies defaults, and validates
// basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:         envDefault("PORT", "5000"),
		PostgresDSN:  strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		HistoryLimit: defaultHistoryLimit,
	}
	if raw := strings.TrimSpace(os.Getenv("HISTORY_LIMIT")); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			return Config{}, fmt.Errorf("HISTORY_LIMIT must be a positive integer")
		}
		cfg.HistoryLimit = limit
	}
	return cfg, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}
