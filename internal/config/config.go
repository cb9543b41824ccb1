// Package config loads server configuration from the environment.
package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all server configuration.
type Config struct {
	APIKey         string // FATEBOOK_API_KEY, required
	BaseURL        string // FATEBOOK_BASE_URL
	LogLevel       string // LOG_LEVEL
	RequestTimeout int    // REQUEST_TIMEOUT, seconds
}

// Load reads configuration from environment variables, consulting a .env
// file if one is present. A missing API key is a startup error, not a
// per-call one.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	cfg := &Config{
		APIKey:         os.Getenv("FATEBOOK_API_KEY"),
		BaseURL:        getEnvWithDefault("FATEBOOK_BASE_URL", "https://fatebook.io/api"),
		LogLevel:       getEnvWithDefault("LOG_LEVEL", "info"),
		RequestTimeout: getEnvIntWithDefault("REQUEST_TIMEOUT", 30),
	}
	if cfg.APIKey == "" {
		return nil, errors.New("FATEBOOK_API_KEY environment variable is required")
	}
	return cfg, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
