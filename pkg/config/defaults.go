package config

import (
	"os"
	"time"
)

// Default values for configuration.
const (
	DefaultMinLines       = 5
	DefaultMaxLines       = 50000
	DefaultOutputFormat   = "text"
	DefaultWebhookTimeout = 10 * time.Second
)

// Environment variable names.
const (
	EnvWebhookURL   = "LOGLENS_WEBHOOK_URL"
	EnvWebhookToken = "LOGLENS_WEBHOOK_TOKEN"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Validation: ValidationConfig{
			MinLines: DefaultMinLines,
			MaxLines: DefaultMaxLines,
		},
		Output: OutputConfig{
			Format: DefaultOutputFormat,
		},
	}
}

// applyEnvironmentOverrides applies environment variable overrides.
func (c *Config) applyEnvironmentOverrides() {
	url := os.Getenv(EnvWebhookURL)
	if url == "" {
		return
	}

	// Env vars define one extra webhook endpoint.
	c.Webhooks = append(c.Webhooks, WebhookConfig{
		Name:    "env",
		URL:     url,
		Token:   os.Getenv(EnvWebhookToken),
		Trigger: WebhookTriggerOnErrors,
		Timeout: DefaultWebhookTimeout,
	})
}
