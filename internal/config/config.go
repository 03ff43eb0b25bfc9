package config

import (
	"fmt"
	"os"
	"strconv"

	"sillah/internal/message"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service.
type Config struct {
	Port          string
	LogLevel      string
	LogBufferSize int
	Lang          message.Lang
	DefaultClinic string
}

// Load reads a .env file if one exists, then the environment.
func Load() (*Config, error) {
	// a missing .env is normal outside development
	_ = godotenv.Load()

	return FromEnv()
}

// FromEnv reads configuration from environment variables only.
func FromEnv() (*Config, error) {
	cfg := &Config{
		Port:          getEnvOrDefault("PORT", "8080"),
		LogLevel:      getEnvOrDefault("LOG_LEVEL", "info"),
		DefaultClinic: getEnvOrDefault("DEFAULT_CLINIC", "Riyadh Heart Center"),
	}

	size, err := strconv.Atoi(getEnvOrDefault("LOG_BUFFER_SIZE", "1000"))
	if err != nil || size <= 0 {
		return nil, fmt.Errorf("LOG_BUFFER_SIZE must be a positive integer")
	}
	cfg.LogBufferSize = size

	lang, err := message.ParseLang(getEnvOrDefault("LANG_CODE", "en"))
	if err != nil {
		return nil, fmt.Errorf("LANG_CODE: %w", err)
	}
	cfg.Lang = lang

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
