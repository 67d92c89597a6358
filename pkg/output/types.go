// Package output provides formatting and output generation for analysis
// reports.
package output

import (
	"time"

	"github.com/loglens/loglens/pkg/analyzer"
)

// Report wraps an engine report with aggregate statistics and run context.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary `json:"summary"`

	// Analysis is the engine's structured report.
	Analysis *analyzer.Report `json:"analysis"`

	// Metadata provides context about the analysis run.
	Metadata Metadata `json:"metadata"`
}

// Summary provides aggregate statistics.
type Summary struct {
	// LinesAnalyzed is the number of non-blank lines examined.
	LinesAnalyzed int `json:"linesAnalyzed"`

	// ErrorGroups is the number of distinct error groups.
	ErrorGroups int `json:"errorGroups"`

	// ErrorCount is the total number of error-level occurrences.
	ErrorCount int `json:"errorCount"`

	// Warnings is the number of warning-level lines.
	Warnings int `json:"warnings"`

	// DetectedFormat is the advisory log dialect label.
	DetectedFormat string `json:"detectedFormat"`
}

// Metadata provides context about the analysis run.
type Metadata struct {
	// Sources lists the files the input was read from, if any.
	Sources []string `json:"sources,omitempty"`

	// AnalyzedAt is when the analysis was performed.
	AnalyzedAt time.Time `json:"analyzedAt"`

	// Duration is how long the analysis took.
	Duration time.Duration `json:"duration"`
}

// NewReport wraps an engine report for output.
func NewReport(analysis *analyzer.Report, sources []string, started, finished time.Time) *Report {
	return &Report{
		Analysis: analysis,
		Summary: Summary{
			LinesAnalyzed:  analysis.TotalLines,
			ErrorGroups:    len(analysis.Errors),
			ErrorCount:     analysis.ErrorCount(),
			Warnings:       analysis.Warnings,
			DetectedFormat: analysis.DetectedFormat,
		},
		Metadata: Metadata{
			Sources:    sources,
			AnalyzedAt: finished,
			Duration:   finished.Sub(started),
		},
	}
}

// HasErrors reports whether any error groups were found.
func (r *Report) HasErrors() bool {
	return r.Summary.ErrorGroups > 0
}
