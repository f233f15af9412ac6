package core

import (
	"fmt"
	"os"
	"strconv"

	"scenarist/pkg/schema"
)

// Default configuration values.
const (
	DefaultNumScenarios = 5
	DefaultDetailLevel  = schema.DetailMedium
)

// Config holds the application configuration. It is read once at
// construction and treated as immutable afterwards.
type Config struct {
	LogLevel            string             // debug, info, warn, error
	DefaultNumScenarios int                // scenarios per call when unspecified
	DefaultDetailLevel  schema.DetailLevel // detail level when unspecified
	OpenRouterAPIKey    string             // required for real generation
	DefaultModel        string             // model identifier to request
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() (*Config, error) {
	logLevel := getEnvOrDefault("LOG_LEVEL", "info")

	// DEBUG flag overrides log level
	if os.Getenv("DEBUG") == "1" {
		logLevel = "debug"
	}

	numScenarios := DefaultNumScenarios
	if raw := os.Getenv("DEFAULT_NUM_SCENARIOS"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return nil, fmt.Errorf("DEFAULT_NUM_SCENARIOS must be a positive integer, got %q", raw)
		}
		numScenarios = n
	}

	detailLevel := schema.DetailLevel(getEnvOrDefault("DEFAULT_DETAIL_LEVEL", string(DefaultDetailLevel)))
	if !detailLevel.Valid() {
		return nil, fmt.Errorf("DEFAULT_DETAIL_LEVEL must be low, medium, or high, got %q", detailLevel)
	}

	return &Config{
		LogLevel:            logLevel,
		DefaultNumScenarios: numScenarios,
		DefaultDetailLevel:  detailLevel,
		OpenRouterAPIKey:    os.Getenv("OPENROUTER_API_KEY"),
		DefaultModel:        getEnvOrDefault("DEFAULT_MODEL", "anthropic/claude-3.5-sonnet"),
	}, nil
}

// getEnvOrDefault returns the value of an environment variable or a default value.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
