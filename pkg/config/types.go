// Package config provides configuration loading and validation for LogLens.
package config

import "time"

// Config is the root configuration structure loaded from YAML. Every field
// has a sensible default; a config file is optional.
type Config struct {
	Validation ValidationConfig `yaml:"validation"`
	Output     OutputConfig     `yaml:"output"`
	Webhooks   []WebhookConfig  `yaml:"webhooks,omitempty"`
}

// ValidationConfig tunes the engine's pre-flight input checks.
type ValidationConfig struct {
	// MinLines is the minimum number of non-blank lines an input must have.
	MinLines int `yaml:"min_lines"`

	// MaxLines is the maximum number of non-blank lines an input may have.
	MaxLines int `yaml:"max_lines"`
}

// OutputConfig sets output defaults that flags can override.
type OutputConfig struct {
	// Format is the default output format (text, json, markdown).
	Format string `yaml:"format"`
}

// WebhookTrigger controls when a webhook fires.
type WebhookTrigger string

const (
	WebhookTriggerOnErrors WebhookTrigger = "on_errors"
	WebhookTriggerAlways   WebhookTrigger = "always"
	WebhookTriggerNever    WebhookTrigger = "never"
)

// WebhookConfig defines a single report delivery endpoint.
type WebhookConfig struct {
	Name    string         `yaml:"name,omitempty"`
	URL     string         `yaml:"url"`
	Token   string         `yaml:"token,omitempty"`
	Trigger WebhookTrigger `yaml:"trigger,omitempty"`
	Timeout time.Duration  `yaml:"timeout,omitempty"`
}
