package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/loglens/loglens/pkg/detector"
	"github.com/loglens/loglens/pkg/parser"
)

// DetectOptions holds options for the detect command.
type DetectOptions struct {
	SampleSize int
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect <file|->",
		Short: "Detect the log dialect of a file",
		Long: `Detect the dominant log dialect from the leading lines of a file and
summarize how well the classifier understands the rest.

The detected label is advisory: classification works the same way whatever
the dialect, because real-world logs mix conventions.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	cmd.Flags().IntVar(&opts.SampleSize, "sample-size", detector.DefaultSampleSize, "Number of leading lines to sample for detection")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *DetectOptions) error {
	text, sources, err := readInput(args, cmd.InOrStdin())
	if err != nil {
		return err
	}

	lines := nonBlankLines(text)
	if len(lines) == 0 {
		return fmt.Errorf("%s contains no non-blank lines", sources[0])
	}

	d := detector.New(detector.WithSampleSize(opts.SampleSize))
	label := d.Detect(lines)

	withTimestamp := 0
	withLevel := 0
	continuations := 0
	for i, line := range lines {
		classified := parser.Classify(line, i+1)
		if classified.Timestamp != "" {
			withTimestamp++
		}
		if classified.Level != "" {
			withLevel++
		}
		if classified.StackContinuation {
			continuations++
		}
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Detected format: %s\n", label)
	fmt.Fprintf(out, "Lines sampled:   %d of %d\n", min(opts.SampleSize, len(lines)), len(lines))
	fmt.Fprintln(out)
	fmt.Fprintf(out, "Classification coverage:\n")
	fmt.Fprintf(out, "  Timestamps:         %d/%d (%.0f%%)\n", withTimestamp, len(lines), percent(withTimestamp, len(lines)))
	fmt.Fprintf(out, "  Severity levels:    %d/%d (%.0f%%)\n", withLevel, len(lines), percent(withLevel, len(lines)))
	fmt.Fprintf(out, "  Stack trace frames: %d\n", continuations)

	if label == detector.UnknownFormat {
		fmt.Fprintln(out)
		fmt.Fprintln(out, "No dialect check matched; analysis still works, it just can't label the format.")
	}

	return nil
}

func nonBlankLines(text string) []string {
	var lines []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func percent(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
