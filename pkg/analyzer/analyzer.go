package analyzer

import (
	"sort"
	"strings"

	"github.com/loglens/loglens/pkg/detector"
	"github.com/loglens/loglens/pkg/parser"
)

// Analyzer converts raw log text into a structured Report. It is stateless
// across calls and safe to reuse; each Analyze invocation allocates its own
// working buffers.
type Analyzer struct {
	minLines int
	maxLines int
	detector *detector.Detector
}

// Option configures the Analyzer.
type Option func(*Analyzer)

// WithLineLimits overrides the validator's minimum and maximum non-blank
// line thresholds. Non-positive values keep the defaults.
func WithLineLimits(minLines, maxLines int) Option {
	return func(a *Analyzer) {
		if minLines > 0 {
			a.minLines = minLines
		}
		if maxLines > 0 {
			a.maxLines = maxLines
		}
	}
}

// WithDetector replaces the format detector.
func WithDetector(d *detector.Detector) Option {
	return func(a *Analyzer) {
		if d != nil {
			a.detector = d
		}
	}
}

// New creates an Analyzer with default thresholds.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		minLines: DefaultMinLines,
		maxLines: DefaultMaxLines,
		detector: detector.New(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// rawLine is a non-blank input line with its 1-based position in the
// original blob. Never retained beyond classification.
type rawLine struct {
	num  int
	text string
}

// splitLines splits a blob on newlines, strips trailing carriage returns,
// and discards lines that are blank after trimming.
func splitLines(text string) []rawLine {
	var lines []rawLine
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, rawLine{num: i + 1, text: line})
	}
	return lines
}

// Analyze runs the full pipeline on a log blob: split, detect, classify,
// group, assemble. It is total over any input. Callers wanting pre-flight
// feedback use Validate or Check first, but Analyze itself never fails.
func (a *Analyzer) Analyze(text string) *Report {
	raw := splitLines(text)

	sample := make([]string, len(raw))
	classified := make([]parser.ClassifiedLine, len(raw))
	for i, line := range raw {
		sample[i] = line.text
		classified[i] = parser.Classify(line.text, line.num)
	}

	g := newGrouper()
	for _, line := range classified {
		g.feed(line)
	}

	return assemble(classified, g.finish(), a.detector.Detect(sample))
}

// assemble aggregates per-severity counts, sorts the groups, and computes
// the time range from the first and last timestamps in line order.
func assemble(lines []parser.ClassifiedLine, groups []*ErrorGroup, format string) *Report {
	report := &Report{
		TotalLines:     len(lines),
		Errors:         groups,
		DetectedFormat: format,
	}

	// groups arrive in key creation order; a stable sort preserves that
	// order among equal counts.
	sort.SliceStable(report.Errors, func(i, j int) bool {
		return report.Errors[i].Count > report.Errors[j].Count
	})

	var first, last string
	for _, line := range lines {
		switch line.Level {
		case parser.LevelWarn, parser.LevelWarning:
			report.Warnings++
		case parser.LevelInfo:
			report.Info++
		case parser.LevelDebug, parser.LevelTrace:
			report.Debug++
		}

		if line.Timestamp != "" {
			if first == "" {
				first = line.Timestamp
			}
			last = line.Timestamp
		}
	}

	if first != "" {
		report.TimeRange = &TimeRange{Start: first, End: last}
	}

	return report
}
