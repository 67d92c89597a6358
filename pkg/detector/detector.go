// Package detector provides heuristic log dialect detection.
//
// Detection is advisory: the label is surfaced to the user and to report
// consumers but never changes how lines are classified, because real-world
// logs routinely mix conventions.
package detector

import "strings"

// UnknownFormat is returned when no dialect check matches the sample.
const UnknownFormat = "Unknown"

// DefaultSampleSize is the number of leading non-blank lines examined.
const DefaultSampleSize = 10

// Detector classifies the dominant log dialect from a sample of lines.
type Detector struct {
	formats    []Format
	sampleSize int
}

// Option configures the Detector.
type Option func(*Detector)

// WithSampleSize sets the number of leading lines to sample (default 10).
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// New creates a Detector with the built-in dialect checks.
func New(opts ...Option) *Detector {
	d := &Detector{
		formats:    DefaultFormats(),
		sampleSize: DefaultSampleSize,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Detect joins the first min(sampleSize, len(lines)) lines and returns the
// label of the first dialect check that matches, else UnknownFormat.
// Callers are expected to pass non-blank lines only.
func (d *Detector) Detect(lines []string) string {
	if len(lines) == 0 {
		return UnknownFormat
	}

	n := len(lines)
	if n > d.sampleSize {
		n = d.sampleSize
	}
	sample := strings.Join(lines[:n], "\n")

	for _, format := range d.formats {
		if format.Pattern.MatchString(sample) {
			return format.Label
		}
	}
	return UnknownFormat
}

// Detect classifies lines using a Detector with default settings.
func Detect(lines []string) string {
	return New().Detect(lines)
}
