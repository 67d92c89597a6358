package output

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/loglens/loglens/pkg/parser"
)

// MarkdownFormatter renders the report as a markdown document, shaped for
// handing to an AI assistant as analysis context.
type MarkdownFormatter struct {
	opts FormatOptions
}

// NewMarkdownFormatter creates a new markdown formatter with the given options.
func NewMarkdownFormatter(opts FormatOptions) *MarkdownFormatter {
	return &MarkdownFormatter{opts: opts}
}

// Name returns the format name.
func (f *MarkdownFormatter) Name() string {
	return "markdown"
}

// Format renders the report as markdown.
func (f *MarkdownFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	analysis := report.Analysis

	fmt.Fprintln(w, "# Log Analysis")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "- **Detected format:** %s\n", analysis.DetectedFormat)
	fmt.Fprintf(w, "- **Lines analyzed:** %d\n", analysis.TotalLines)
	fmt.Fprintf(w, "- **Errors:** %d occurrences in %d groups\n",
		analysis.ErrorCount(), len(analysis.Errors))
	fmt.Fprintf(w, "- **Warnings:** %d, **Info:** %d, **Debug:** %d\n",
		analysis.Warnings, analysis.Info, analysis.Debug)
	if analysis.TimeRange != nil {
		fmt.Fprintf(w, "- **Time range:** `%s` to `%s` (line order)\n",
			analysis.TimeRange.Start, analysis.TimeRange.End)
	}
	fmt.Fprintln(w)

	if !analysis.HasErrors() {
		fmt.Fprintln(w, "No error groups detected; the log looks healthy.")
		return nil
	}

	fmt.Fprintln(w, "## Error Groups")
	for i, group := range analysis.Errors {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "### %d. %s\n", i+1, group.Message)
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Occurrences: %d", group.Count)
		if group.Timestamp != "" {
			fmt.Fprintf(w, " (last seen %s)", group.Timestamp)
		}
		fmt.Fprintln(w)

		if loc, ok := parser.FirstFrameLocation(group.StackTrace); ok {
			fmt.Fprintf(w, "Location: `%s:%d`", loc.File, loc.Line)
			if loc.Column > 0 {
				fmt.Fprintf(w, " col %d", loc.Column)
			}
			fmt.Fprintln(w)
		}

		fmt.Fprintln(w)
		fmt.Fprintln(w, "```")
		for _, sample := range group.Samples {
			fmt.Fprintln(w, sample)
		}
		if len(group.StackTrace) > 0 {
			fmt.Fprintln(w, strings.Join(group.StackTrace, "\n"))
		}
		fmt.Fprintln(w, "```")
	}

	return nil
}
