package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds the console configuration. The API base URL is the only
// required external surface; everything else has a sensible default.
type Config struct {
	APIBaseURL  string
	Timeout     time.Duration
	LogLevel    string
	Environment string
}

// Load reads configuration from the environment
func Load() *Config {
	return &Config{
		APIBaseURL:  envOr("INVENTORY_API_URL", "http://localhost:5000"),
		Timeout:     envOrDuration("INVENTORY_TIMEOUT", 10*time.Second),
		LogLevel:    envOr("INVENTORY_LOG_LEVEL", "info"),
		Environment: envOr("ENVIRONMENT", "development"),
	}
}

// IsDevelopment reports whether pretty console logging should be used
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func envOrDuration(key string, fallback time.Duration) time.Duration {
	if v, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
		if secs, err := strconv.Atoi(v); err == nil {
			return time.Duration(secs) * time.Second
		}
	}
	return fallback
}
