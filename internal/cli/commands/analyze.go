package commands

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/loglens/loglens/pkg/analyzer"
	"github.com/loglens/loglens/pkg/config"
	"github.com/loglens/loglens/pkg/output"
	"github.com/loglens/loglens/pkg/webhook"
)

// ExitCode is set by commands to indicate the result
var ExitCode = 0

// AnalyzeOptions holds command-line options for the analyze command.
type AnalyzeOptions struct {
	Config  string
	Output  string
	Verbose bool
	Quiet   bool

	// Webhook options
	WebhookURL     string
	WebhookToken   string
	WebhookTrigger string
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	opts := &AnalyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze <file|glob|-> [...]",
		Short: "Analyze log text into a structured error report",
		Long: `Analyze raw log text and report deduplicated error groups, stack traces,
severity counts, the observed time range and the detected log dialect.

Reads the named files (glob patterns are expanded) or stdin when the single
argument is "-".

Exit codes:
  0 - Analysis ran, no error groups found
  1 - Analysis ran, error groups found
  2 - Invalid input, configuration or runtime error`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Path to config file (optional)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", "", "Output format (text|json|markdown)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show full stack traces, samples and progress logging")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")
	cmd.Flags().StringVar(&opts.WebhookTrigger, "webhook-trigger", "on_errors", "When to fire webhook (on_errors|always|never)")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *AnalyzeOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	logger := newLogger(opts.Verbose)
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		return err
	}

	text, sources, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}
	logger.Debug("input loaded", zap.Strings("sources", sources), zap.Int("bytes", len(text)))

	a := analyzer.New(analyzer.WithLineLimits(cfg.Validation.MinLines, cfg.Validation.MaxLines))

	if err := a.Validate(text); err != nil {
		return fmt.Errorf("input rejected: %w", err)
	}

	started := time.Now()
	analysis := a.Analyze(text)
	report := output.NewReport(analysis, sources, started, time.Now())

	logger.Debug("analysis complete",
		zap.Int("lines", analysis.TotalLines),
		zap.Int("errorGroups", len(analysis.Errors)),
		zap.String("format", analysis.DetectedFormat))

	formatter, err := createFormatter(cfg, opts)
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// Send webhooks (failures logged but don't fail analysis)
	sendWebhooks(ctx, cfg, opts, report, logger)

	if report.HasErrors() {
		ExitCode = 1
	}

	return nil
}

// newLogger returns a development logger in verbose mode; otherwise all
// logging is discarded so stdout stays clean for the report.
func newLogger(verbose bool) *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

// loadConfig loads the named config file, or defaults when path is empty.
func loadConfig(ctx context.Context, path string) (*config.Config, error) {
	if path == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func createFormatter(cfg *config.Config, opts *AnalyzeOptions) (output.Formatter, error) {
	format := opts.Output
	if format == "" {
		format = cfg.Output.Format
	}

	formatOpts := output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	}

	switch format {
	case "text":
		return output.NewTextFormatter(formatOpts), nil
	case "json":
		return output.NewJSONFormatter(formatOpts), nil
	case "markdown":
		return output.NewMarkdownFormatter(formatOpts), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (use text, json or markdown)", format)
	}
}

// sendWebhooks sends the report to all configured webhooks.
func sendWebhooks(ctx context.Context, cfg *config.Config, opts *AnalyzeOptions, report *output.Report, logger *zap.Logger) {
	webhooks := collectWebhooks(cfg, opts)
	if len(webhooks) == 0 {
		return
	}

	client := webhook.NewClient()

	for _, wh := range webhooks {
		if !shouldFireWebhook(wh.Trigger, report.HasErrors()) {
			continue
		}

		resp := client.Send(ctx, report, webhook.SendOptions{
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
		})

		name := wh.Name
		if name == "" {
			name = wh.URL
		}

		if resp.Success() {
			logger.Info("webhook sent",
				zap.String("webhook", name),
				zap.Int("status", resp.StatusCode),
				zap.Duration("duration", resp.Duration))
		} else {
			logger.Warn("webhook failed", zap.String("webhook", name), zap.Error(resp.Error))
			fmt.Fprintf(os.Stderr, "Webhook %s: failed (%v)\n", name, resp.Error)
		}
	}
}

// collectWebhooks merges config file webhooks with the CLI webhook.
func collectWebhooks(cfg *config.Config, opts *AnalyzeOptions) []config.WebhookConfig {
	webhooks := make([]config.WebhookConfig, 0, len(cfg.Webhooks)+1)
	webhooks = append(webhooks, cfg.Webhooks...)

	if opts.WebhookURL != "" {
		trigger := config.WebhookTrigger(opts.WebhookTrigger)
		if trigger == "" {
			trigger = config.WebhookTriggerOnErrors
		}

		webhooks = append(webhooks, config.WebhookConfig{
			Name:    "cli",
			URL:     opts.WebhookURL,
			Token:   opts.WebhookToken,
			Trigger: trigger,
			Timeout: config.DefaultWebhookTimeout,
		})
	}

	return webhooks
}

// shouldFireWebhook determines if a webhook should fire for this report.
func shouldFireWebhook(trigger config.WebhookTrigger, hasErrors bool) bool {
	switch trigger {
	case config.WebhookTriggerAlways:
		return true
	case config.WebhookTriggerNever:
		return false
	default:
		return hasErrors
	}
}
