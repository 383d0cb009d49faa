package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all configuration for the pagopa proxy
type Config struct {
	// Server
	Port     string `env:"PORT" default:"8080"`
	Host     string `env:"HOST" default:"0.0.0.0"`
	LogLevel string `env:"LOG_LEVEL" default:"info"`
	Version  string `env:"VERSION" default:"dev"`

	// Redis session store
	RedisURL            string `env:"REDIS_URL" default:"redis://localhost:6379"`
	RedisClusterEnabled bool   `env:"REDIS_CLUSTER_ENABLED" default:"false"`
	RedisHost           string `env:"REDIS_HOST"`
	RedisPort           string `env:"REDIS_PORT" default:"6379"`
	RedisPassword       string `env:"REDIS_PASSWORD"`

	// Profile database
	DatabaseURL string `env:"DATABASE_URL" required:"true"`

	// Notice email cache
	EnableNoticeEmailCache bool `env:"ENABLE_NOTICE_EMAIL_CACHE" default:"true"`

	// Fixture session lifetime, used by the seed command only
	SessionTTL time.Duration `env:"SESSION_TTL" default:"24h"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	config := &Config{}

	// Server configuration
	config.Port = getEnvOrDefault("PORT", "8080")
	config.Host = getEnvOrDefault("HOST", "0.0.0.0")
	config.LogLevel = getEnvOrDefault("LOG_LEVEL", "info")
	config.Version = getEnvOrDefault("VERSION", "dev")

	// Redis configuration
	config.RedisURL = getEnvOrDefault("REDIS_URL", "redis://localhost:6379")
	config.RedisClusterEnabled = getBoolEnv("REDIS_CLUSTER_ENABLED", false)
	config.RedisHost = os.Getenv("REDIS_HOST")
	config.RedisPort = getEnvOrDefault("REDIS_PORT", "6379")
	config.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if config.RedisClusterEnabled && config.RedisHost == "" {
		return nil, fmt.Errorf("REDIS_HOST is required when REDIS_CLUSTER_ENABLED is set")
	}

	// Database configuration
	config.DatabaseURL = os.Getenv("DATABASE_URL")
	if config.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	// Feature flags
	config.EnableNoticeEmailCache = getBoolEnv("ENABLE_NOTICE_EMAIL_CACHE", true)

	sessionTTLStr := getEnvOrDefault("SESSION_TTL", "24h")
	var err error
	config.SessionTTL, err = time.ParseDuration(sessionTTLStr)
	if err != nil {
		return nil, fmt.Errorf("invalid SESSION_TTL: %w", err)
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	// Validate port
	port, err := strconv.ParseInt(c.Port, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid port: %s", c.Port)
	}
	// Check port range (1-65535)
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535: %s", c.Port)
	}

	// Validate log level
	validLogLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLogLevels, strings.ToLower(c.LogLevel)) {
		return fmt.Errorf("invalid log level: %s (must be one of: %s)", c.LogLevel, strings.Join(validLogLevels, ", "))
	}

	// Validate session TTL (minimum 1 minute)
	if c.SessionTTL < time.Minute {
		return fmt.Errorf("session ttl must be at least 1 minute, got: %v", c.SessionTTL)
	}

	return nil
}

// Helper functions

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
