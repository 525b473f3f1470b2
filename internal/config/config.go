package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"statline/internal/errors"
)

// MaxCount bounds STATLINE_COUNT.
const MaxCount = 100000

// Config represents the complete application configuration
type Config struct {
	Generation GenerationConfig
	Server     ServerConfig
	Paths      PathConfig
	LogLevel   string
}

// GenerationConfig controls the population served at startup
type GenerationConfig struct {
	Seed        int64
	Count       int
	CatalogFile string
	BatchLimit  int
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// PathConfig holds file system paths
type PathConfig struct {
	ExportDir string
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Generation: *loadGenerationConfig(),
		Server:     *loadServerConfig(),
		Paths:      *loadPathConfig(),
		LogLevel:   getEnvOrDefault("LOG_LEVEL", "INFO"),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}
	return config, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

func loadGenerationConfig() *GenerationConfig {
	return &GenerationConfig{
		Seed:        getEnvInt64OrDefault("STATLINE_SEED", 42),
		Count:       getEnvIntOrDefault("STATLINE_COUNT", 250),
		CatalogFile: getEnvOrDefault("CATALOG_FILE", ""),
		BatchLimit:  getEnvIntOrDefault("BATCH_LIMIT", 4),
	}
}

func loadServerConfig() *ServerConfig {
	return &ServerConfig{
		Port:           getEnvOrDefault("PORT", "8080"),
		AllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", "*")),
		RequestTimeout: getEnvDurationOrDefault("REQUEST_TIMEOUT", 30*time.Second),
	}
}

func loadPathConfig() *PathConfig {
	return &PathConfig{
		ExportDir: getEnvOrDefault("EXPORT_DIR", "./exports"),
	}
}

func validateConfig(config *Config) error {
	if config.Generation.Count < 0 || config.Generation.Count > MaxCount {
		return errors.ConfigInvalid(fmt.Sprintf("STATLINE_COUNT must be between 0 and %d, got %d", MaxCount, config.Generation.Count))
	}
	if config.Generation.BatchLimit <= 0 {
		return errors.ConfigInvalid("BATCH_LIMIT must be positive")
	}
	port, err := strconv.Atoi(config.Server.Port)
	if err != nil || port <= 0 || port > 65535 {
		return errors.ConfigInvalid(fmt.Sprintf("invalid PORT %q", config.Server.Port))
	}
	if config.Server.RequestTimeout <= 0 {
		return errors.ConfigInvalid("REQUEST_TIMEOUT must be positive")
	}
	if len(config.Server.AllowedOrigins) == 0 {
		return errors.ConfigInvalid("CORS_ALLOWED_ORIGINS is empty")
	}
	return nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
