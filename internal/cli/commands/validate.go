package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/loglens/loglens/pkg/analyzer"
)

// ValidateOptions holds options for the validate command.
type ValidateOptions struct {
	Config string
}

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	opts := &ValidateOptions{}

	cmd := &cobra.Command{
		Use:   "validate <file|->",
		Short: "Check whether log text is analyzable",
		Long: `Run the pre-flight checks on log text without performing a full analysis.

Checks, in order:
  - Input is non-empty
  - Non-blank line count is within the configured limits
  - At least one error indicator is present

Exit codes:
  0 - Input is analyzable
  1 - Input failed a check (the reason is printed)
  2 - Runtime error`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Path to config file (optional)")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string, opts *ValidateOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		return err
	}

	text, sources, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	a := analyzer.New(analyzer.WithLineLimits(cfg.Validation.MinLines, cfg.Validation.MaxLines))
	result := a.Check(text)

	out := cmd.OutOrStdout()
	if result.Valid {
		fmt.Fprintf(out, "%s: input is analyzable\n", sources[0])
		return nil
	}

	fmt.Fprintf(out, "%s: not analyzable (%s)\n", sources[0], result.Reason)
	ExitCode = 1
	return nil
}
