// Package config loads and validates environment variables at startup.
// Fail-fast: if a required variable is malformed or missing, the process
// exits with an error.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration for the nutricalculator service.
type Config struct {
	Port     string
	LogLevel string

	RedisURL string
	CacheTTL time.Duration

	ProductAPIBaseURL string // empty means the public OpenFoodFacts instance
	PageDelay         time.Duration

	TranslateURL    string // empty disables translation
	TranslateAPIKey string

	NewsAPIURL string // empty disables the news route
	NewsAPIKey string

	WarmIntervalHours int // 0 disables the cache warmer
}

// Load reads environment variables (honouring a .env file when present) and
// returns a validated Config.
func Load() (*Config, error) {
	// Optional local overrides; absence is not an error.
	_ = godotenv.Load()

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL is required")
	}

	ttl := time.Hour
	if s := os.Getenv("CACHE_TTL_SECONDS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 1 {
			return nil, fmt.Errorf("CACHE_TTL_SECONDS must be a positive integer, got %q", s)
		}
		ttl = time.Duration(v) * time.Second
	}

	pageDelay := time.Second
	if s := os.Getenv("PAGE_DELAY_MS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("PAGE_DELAY_MS must be a non-negative integer, got %q", s)
		}
		pageDelay = time.Duration(v) * time.Millisecond
	}

	warm := 0
	if s := os.Getenv("WARM_INTERVAL_HOURS"); s != "" {
		v, err := strconv.Atoi(s)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("WARM_INTERVAL_HOURS must be a non-negative integer, got %q", s)
		}
		warm = v
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return &Config{
		Port:              port,
		LogLevel:          logLevel,
		RedisURL:          redisURL,
		CacheTTL:          ttl,
		ProductAPIBaseURL: os.Getenv("PRODUCT_API_BASE_URL"),
		PageDelay:         pageDelay,
		TranslateURL:      os.Getenv("TRANSLATE_URL"),
		TranslateAPIKey:   os.Getenv("TRANSLATE_API_KEY"),
		NewsAPIURL:        os.Getenv("NEWS_API_URL"),
		NewsAPIKey:        os.Getenv("NEWS_API_KEY"),
		WarmIntervalHours: warm,
	}, nil
}
