package output

import (
	"context"
	"fmt"
	"io"

	"github.com/loglens/loglens/pkg/analyzer"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	fmt.Fprintf(w, "LogLens: %d lines, %d error groups, %d errors, %d warnings (%s)\n",
		report.Summary.LinesAnalyzed,
		report.Summary.ErrorGroups,
		report.Summary.ErrorCount,
		report.Summary.Warnings,
		report.Summary.DetectedFormat)
	return nil
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	analysis := report.Analysis

	fmt.Fprintln(w, "=== LogLens Analysis Report ===")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Format:         %s\n", analysis.DetectedFormat)
	fmt.Fprintf(w, "Lines analyzed: %d\n", analysis.TotalLines)
	if analysis.TimeRange != nil {
		fmt.Fprintf(w, "Time range:     %s .. %s\n", analysis.TimeRange.Start, analysis.TimeRange.End)
	}
	fmt.Fprintln(w)

	if !analysis.HasErrors() {
		fmt.Fprintln(w, "No error groups detected")
	} else {
		fmt.Fprintf(w, "Errors: %d distinct, %d total\n", len(analysis.Errors), analysis.ErrorCount())
		for i, group := range analysis.Errors {
			f.formatGroup(i+1, group, w)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Levels: %d warnings, %d info, %d debug\n",
		analysis.Warnings, analysis.Info, analysis.Debug)

	if f.opts.Verbose {
		fmt.Fprintf(w, "Analyzed at: %s\n", report.Metadata.AnalyzedAt.Format("2006-01-02 15:04:05"))
		fmt.Fprintf(w, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	return nil
}

func (f *TextFormatter) formatGroup(rank int, group *analyzer.ErrorGroup, w io.Writer) {
	fmt.Fprintf(w, "  %d. [%dx] %s\n", rank, group.Count, group.Message)
	if group.Timestamp != "" {
		fmt.Fprintf(w, "     last seen: %s\n", group.Timestamp)
	}

	if len(group.StackTrace) > 0 {
		trace := group.StackTrace
		if !f.opts.Verbose && len(trace) > 3 {
			trace = trace[:3]
		}
		for _, frame := range trace {
			fmt.Fprintf(w, "       %s\n", frame)
		}
		if !f.opts.Verbose && len(group.StackTrace) > 3 {
			fmt.Fprintf(w, "       ... %d more frames\n", len(group.StackTrace)-3)
		}
	}

	if f.opts.Verbose {
		for _, sample := range group.Samples {
			fmt.Fprintf(w, "     | %s\n", sample)
		}
	}
}
