package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Validation.MinLines != DefaultMinLines {
		t.Errorf("MinLines = %d, want %d", cfg.Validation.MinLines, DefaultMinLines)
	}
	if cfg.Validation.MaxLines != DefaultMaxLines {
		t.Errorf("MaxLines = %d, want %d", cfg.Validation.MaxLines, DefaultMaxLines)
	}
	if cfg.Output.Format != "text" {
		t.Errorf("Format = %q, want text", cfg.Output.Format)
	}
	if err := Validate(cfg); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoad_FullConfig(t *testing.T) {
	path := writeConfig(t, `
validation:
  min_lines: 10
  max_lines: 1000
output:
  format: json
webhooks:
  - name: ci
    url: https://hooks.example.com/loglens
    token: secret
    trigger: always
    timeout: 5s
`)

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Validation.MinLines != 10 || cfg.Validation.MaxLines != 1000 {
		t.Errorf("Validation = %+v", cfg.Validation)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Output.Format)
	}
	if len(cfg.Webhooks) != 1 {
		t.Fatalf("Webhooks = %d, want 1", len(cfg.Webhooks))
	}
	wh := cfg.Webhooks[0]
	if wh.Name != "ci" || wh.Trigger != WebhookTriggerAlways || wh.Timeout != 5*time.Second {
		t.Errorf("Webhook = %+v", wh)
	}
}

func TestLoad_PartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, "output:\n  format: markdown\n")

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output.Format != "markdown" {
		t.Errorf("Format = %q", cfg.Output.Format)
	}
	if cfg.Validation.MinLines != DefaultMinLines || cfg.Validation.MaxLines != DefaultMaxLines {
		t.Errorf("Validation = %+v, want defaults", cfg.Validation)
	}
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "output: [unclosed", "parsing config"},
		{"bad format", "output:\n  format: xml\n", "unknown format"},
		{"min too small", "validation:\n  min_lines: 0\n", "min_lines"},
		{"max below min", "validation:\n  min_lines: 10\n  max_lines: 5\n", "max_lines"},
		{"webhook missing url", "webhooks:\n  - name: x\n", "url is required"},
		{"webhook bad scheme", "webhooks:\n  - url: ftp://example.com\n", "scheme"},
		{"webhook bad trigger", "webhooks:\n  - url: https://example.com\n    trigger: sometimes\n", "trigger"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(context.Background(), path)
			if err == nil {
				t.Fatal("Load() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() expected error for missing file")
	}
}

func TestWebhookDefaults(t *testing.T) {
	path := writeConfig(t, "webhooks:\n  - url: https://hooks.example.com/x\n")

	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	wh := cfg.Webhooks[0]
	if wh.Trigger != WebhookTriggerOnErrors {
		t.Errorf("Trigger = %q, want on_errors default", wh.Trigger)
	}
	if wh.Timeout != DefaultWebhookTimeout {
		t.Errorf("Timeout = %v, want default", wh.Timeout)
	}
	if wh.Name != "hooks.example.com" {
		t.Errorf("Name = %q, want host fallback", wh.Name)
	}
}

func TestEnvironmentWebhook(t *testing.T) {
	t.Setenv(EnvWebhookURL, "https://env.example.com/hook")
	t.Setenv(EnvWebhookToken, "env-token")

	path := writeConfig(t, "output:\n  format: text\n")
	cfg, err := Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if len(cfg.Webhooks) != 1 {
		t.Fatalf("Webhooks = %d, want 1 from environment", len(cfg.Webhooks))
	}
	if cfg.Webhooks[0].Token != "env-token" {
		t.Errorf("Token = %q", cfg.Webhooks[0].Token)
	}
}
