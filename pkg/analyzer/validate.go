package analyzer

import (
	"fmt"
	"strings"
)

// Default validation thresholds.
const (
	DefaultMinLines = 5
	DefaultMaxLines = 50000
)

// ValidationKind identifies which pre-flight check an input failed.
type ValidationKind string

const (
	KindEmptyInput        ValidationKind = "empty-input"
	KindInsufficientLines ValidationKind = "insufficient-lines"
	KindExcessiveLines    ValidationKind = "excessive-lines"
	KindNoErrorSignal     ValidationKind = "no-error-signal"
)

// ValidationError is a failed pre-flight check. The checks are independent
// and run in a fixed order; the first failure is reported.
type ValidationError struct {
	Kind   ValidationKind
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

// CheckResult is the boolean-plus-reason form of validation, for callers
// that want to show inline feedback without treating invalid input as a
// failure.
type CheckResult struct {
	Valid  bool           `json:"valid"`
	Kind   ValidationKind `json:"kind,omitempty"`
	Reason string         `json:"reason,omitempty"`
}

// errorSignals is the vocabulary of indicators at least one line must
// contain, case-insensitively, for the input to look like an error log
// worth analyzing. Kept lowercase; the scan lowercases each line once.
var errorSignals = []string{"error", "fatal", "critical", "severe", "exception"}

// Validate runs the pre-flight checks on a raw log blob: non-empty after
// trimming, non-blank line count within [minLines, maxLines], and presence
// of at least one error signal. Returns a *ValidationError describing the
// first failed check, or nil.
func (a *Analyzer) Validate(text string) error {
	if strings.TrimSpace(text) == "" {
		return &ValidationError{
			Kind:   KindEmptyInput,
			Reason: "input is empty",
		}
	}

	lines := splitLines(text)

	if len(lines) < a.minLines {
		return &ValidationError{
			Kind: KindInsufficientLines,
			Reason: fmt.Sprintf("input has %d non-blank lines, need at least %d for meaningful analysis",
				len(lines), a.minLines),
		}
	}

	if len(lines) > a.maxLines {
		return &ValidationError{
			Kind: KindExcessiveLines,
			Reason: fmt.Sprintf("input has %d non-blank lines, exceeding the %d line limit",
				len(lines), a.maxLines),
		}
	}

	if !hasErrorSignal(lines) {
		return &ValidationError{
			Kind:   KindNoErrorSignal,
			Reason: "no error indicators found (looked for ERROR, FATAL, CRITICAL, SEVERE, Exception)",
		}
	}

	return nil
}

// Check is the non-failing form of Validate.
func (a *Analyzer) Check(text string) CheckResult {
	err := a.Validate(text)
	if err == nil {
		return CheckResult{Valid: true}
	}
	verr := err.(*ValidationError)
	return CheckResult{Kind: verr.Kind, Reason: verr.Reason}
}

func hasErrorSignal(lines []rawLine) bool {
	for _, line := range lines {
		lower := strings.ToLower(line.text)
		for _, signal := range errorSignals {
			if strings.Contains(lower, signal) {
				return true
			}
		}
	}
	return false
}
