// Package analyzer implements the log analysis engine: input validation,
// error grouping and report assembly. One Analyze call converts a complete
// log blob into a Report; the engine keeps no state between calls.
package analyzer

// ErrorGroup is one deduplicated error: every occurrence whose normalized
// short message matched the same key, with occurrence statistics.
type ErrorGroup struct {
	// Message is the normalized short message that keys the group.
	Message string `json:"message"`

	// Count is the number of error-level occurrences merged into the group.
	// Never zero.
	Count int `json:"count"`

	// Samples holds up to three verbatim triggering lines, first-come.
	Samples []string `json:"samples"`

	// RawLines is every line belonging to the group's occurrences, in
	// order: triggering lines plus their trimmed continuation lines.
	// Unlike Samples it is never capped.
	RawLines []string `json:"rawLines"`

	// Timestamp is the most recently observed timestamp among the group's
	// occurrences, or "" if none carried one.
	Timestamp string `json:"timestamp,omitempty"`

	// StackTrace is the ordered continuation lines of the most recent
	// occurrence that produced any; occurrences without a trace never
	// clear an earlier one.
	StackTrace []string `json:"stackTrace,omitempty"`
}

// TimeRange is the first and last timestamp observed among classified
// lines, in line order. Logs may interleave sources with skewed clocks, so
// the range deliberately reflects line order rather than chronological
// order; re-sorting could mislead a root-cause consumer.
type TimeRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Report is the complete analysis output for one input blob.
type Report struct {
	// TotalLines counts the non-blank lines of the input. Blank lines are
	// discarded before classification and appear nowhere in the report.
	TotalLines int `json:"totalLines"`

	// Errors is sorted by descending count; groups with equal counts keep
	// the order their keys were first seen.
	Errors []*ErrorGroup `json:"errors"`

	// Warnings counts WARN and WARNING lines.
	Warnings int `json:"warnings"`

	// Info counts INFO lines.
	Info int `json:"info"`

	// Debug counts DEBUG and TRACE lines.
	Debug int `json:"debug"`

	// TimeRange is nil when no line carried a timestamp.
	TimeRange *TimeRange `json:"timeRange,omitempty"`

	// DetectedFormat is the advisory dialect label, possibly "Unknown".
	DetectedFormat string `json:"detectedFormat"`
}

// HasErrors reports whether any error groups were found. A report with no
// groups is a healthy result, not a failure.
func (r *Report) HasErrors() bool {
	return len(r.Errors) > 0
}

// ErrorCount returns the total number of error-level occurrences across
// all groups.
func (r *Report) ErrorCount() int {
	total := 0
	for _, g := range r.Errors {
		total += g.Count
	}
	return total
}
