package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents the application configuration
type Config struct {
	// API contains API server configuration
	API APIConfig
	// Upstream contains the market data API configuration
	Upstream UpstreamConfig
	// Market contains market/timezone settings
	Market MarketConfig

	// Rate Limiting Configuration
	RateLimit RateLimitConfig
	// Cache controls the upstream range cache
	Cache CacheConfig
	// Prefetch controls the scheduled cache warm-up
	Prefetch PrefetchConfig

	// LogLevel is the minimum zerolog level
	LogLevel string
}

// APIConfig contains API server settings
type APIConfig struct {
	// Port is the server port to listen on
	Port string
	// CORSOrigins are the browser origins allowed to call the API
	CORSOrigins []string
}

// UpstreamConfig contains settings for the upstream market data API
type UpstreamConfig struct {
	// URL is the market data endpoint
	URL string
	// Timeout bounds a single upstream call
	Timeout time.Duration
}

// MarketConfig contains market settings
type MarketConfig struct {
	// Timezone is the IANA name of the fixed regional market timezone
	Timezone string
}

// RateLimitConfig contains rate limiting settings
type RateLimitConfig struct {
	Requests int // Number of requests allowed per window
	Window   int // Time window in seconds
	Burst    int // Maximum burst size
}

// CacheConfig contains range cache settings
type CacheConfig struct {
	// TTL bounds how long a cached upstream response stays fresh
	TTL time.Duration
}

// PrefetchConfig contains cache warm-up settings
type PrefetchConfig struct {
	// Enabled determines if the prefetch scheduler runs
	Enabled bool
	// Schedule in cron format
	Schedule string
}

// LoadFromEnv retrieves configuration from environment variables
func (c *Config) LoadFromEnv() error {
	c.API = APIConfig{
		Port:        getEnvOrDefault("API_PORT", "8080"),
		CORSOrigins: getEnvAsSlice("CORS_ORIGINS", []string{"http://localhost:3000", "http://localhost:5173"}),
	}
	c.Upstream = UpstreamConfig{
		URL:     getEnvOrDefault("AWATTAR_URL", "https://api.awattar.at/v1/marketdata"),
		Timeout: time.Duration(getEnvAsInt("AWATTAR_TIMEOUT_SECONDS", 30)) * time.Second,
	}
	c.Market = MarketConfig{
		Timezone: getEnvOrDefault("MARKET_TIMEZONE", "Europe/Vienna"),
	}

	c.RateLimit.Requests = getEnvAsInt("RATE_LIMIT_REQUESTS", 1000)
	c.RateLimit.Window = getEnvAsInt("RATE_LIMIT_WINDOW", 60)
	c.RateLimit.Burst = getEnvAsInt("RATE_LIMIT_BURST", 50)

	c.Cache.TTL = time.Duration(getEnvAsInt("CACHE_TTL_MINUTES", 15)) * time.Minute
	// aWATTar publishes next-day prices around 14:00 local time.
	c.Prefetch.Enabled = getEnvAsBool("ENABLE_PREFETCH", false)
	c.Prefetch.Schedule = getEnvOrDefault("PREFETCH_SCHEDULE", "15 14 * * *")

	c.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")

	// Validate required fields
	if _, err := time.LoadLocation(c.Market.Timezone); err != nil {
		return fmt.Errorf("invalid MARKET_TIMEZONE %q: %w", c.Market.Timezone, err)
	}
	if c.RateLimit.Requests <= 0 || c.RateLimit.Window <= 0 {
		return fmt.Errorf("RATE_LIMIT_REQUESTS and RATE_LIMIT_WINDOW must be positive")
	}

	return nil
}

// getEnvAsInt retrieves an environment variable and converts it to an integer
func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

// getEnvAsBool retrieves an environment variable and converts it to a boolean
func getEnvAsBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultVal
}

// getEnvAsSlice retrieves a comma-separated environment variable
func getEnvAsSlice(key string, defaultVal []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return defaultVal
	}
	return out
}

func getEnvOrDefault(key string, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}
