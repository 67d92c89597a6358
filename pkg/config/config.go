package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if err := validateValidation(&cfg.Validation); err != nil {
		return fmt.Errorf("validation: %w", err)
	}

	switch cfg.Output.Format {
	case "text", "json", "markdown":
	default:
		return fmt.Errorf("output: unknown format %q (use text, json or markdown)", cfg.Output.Format)
	}

	// Webhooks are optional, but validate if present
	for i := range cfg.Webhooks {
		if err := validateWebhook(&cfg.Webhooks[i]); err != nil {
			name := cfg.Webhooks[i].Name
			if name == "" {
				name = cfg.Webhooks[i].URL
			}
			return fmt.Errorf("webhooks[%d] (%s): %w", i, name, err)
		}
	}

	return nil
}

func validateValidation(v *ValidationConfig) error {
	if v.MinLines < 1 {
		return errors.New("min_lines must be at least 1")
	}
	if v.MaxLines < v.MinLines {
		return fmt.Errorf("max_lines (%d) must be >= min_lines (%d)", v.MaxLines, v.MinLines)
	}
	return nil
}

func validateWebhook(wh *WebhookConfig) error {
	if wh.URL == "" {
		return errors.New("url is required")
	}

	u, err := url.Parse(wh.URL)
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("url scheme must be http or https, got %q", u.Scheme)
	}

	switch wh.Trigger {
	case "", WebhookTriggerOnErrors, WebhookTriggerAlways, WebhookTriggerNever:
	default:
		return fmt.Errorf("unknown trigger %q (use on_errors, always or never)", wh.Trigger)
	}
	if wh.Trigger == "" {
		wh.Trigger = WebhookTriggerOnErrors
	}

	if wh.Timeout < 0 {
		return errors.New("timeout must not be negative")
	}
	if wh.Timeout == 0 {
		wh.Timeout = DefaultWebhookTimeout
	}

	if strings.TrimSpace(wh.Name) == "" {
		wh.Name = u.Host
	}

	return nil
}
