// Package cli provides the command-line interface for LogLens.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/loglens/loglens/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Usage, configuration or runtime error
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "loglens",
		Short: "Analyze raw log text into structured error reports",
		Long: `LogLens is a local log analysis tool. Paste or point it at raw log text
of unknown origin and it produces a structured report:

  - Detected log dialect (Spring Boot, Python, Winston JSON, CloudWatch, ...)
  - Deduplicated error groups ranked by frequency
  - Stack traces associated with the error that produced them
  - Severity counts and the observed time range

The report renders as text, JSON, or a markdown document suitable as
context for an AI assistant.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewDiagnoseCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
