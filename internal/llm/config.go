package llm

import (
	"fmt"
	"time"
)

// Config contains configuration for the generation client.
type Config struct {
	// APIKey is the OpenRouter API key
	APIKey string

	// BaseURL is the OpenRouter API base URL
	// Default: https://openrouter.ai/api/v1
	BaseURL string

	// Model is the model identifier to request
	// Example: anthropic/claude-3.5-sonnet
	Model string

	// Timeout is the HTTP request timeout
	// Default: 60 seconds
	Timeout time.Duration

	// Logger receives client diagnostics; defaults to a no-op logger
	Logger Logger
}

// Validate checks that required config fields are set.
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("APIKey is required")
	}

	if c.Model == "" {
		return fmt.Errorf("Model is required")
	}

	return nil
}

// SetDefaults fills in default values for optional fields.
func (c *Config) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "https://openrouter.ai/api/v1"
	}

	if c.Timeout == 0 {
		c.Timeout = 60 * time.Second
	}

	if c.Logger == nil {
		c.Logger = nopLogger{}
	}
}

// Logger is the logging capability the client accepts from its caller.
// It is satisfied by core.Logger; no package-level logger state is kept.
type Logger interface {
	Info(msg string, fields ...any)
	Warn(msg string, fields ...any)
	Error(msg string, fields ...any)
	Debug(msg string, fields ...any)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
func (nopLogger) Debug(string, ...any) {}
