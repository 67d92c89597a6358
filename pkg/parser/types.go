// Package parser provides per-line classification of raw log text: timestamp
// and severity extraction, stack-trace continuation detection, and stack
// frame source-location extraction.
package parser

// ClassifiedLine is the structured view of a single raw log line.
// Produced once per line; callers must not mutate it.
type ClassifiedLine struct {
	// Raw is the original line content (trailing carriage return stripped).
	Raw string

	// LineNum is the 1-based position of the line in the original input,
	// counting blank lines even though they are never classified.
	LineNum int

	// Timestamp is the matched timestamp prefix, verbatim, or "" if the
	// line does not start with a recognizable timestamp. It is kept as a
	// string on purpose: the engine reports ranges in line order and never
	// needs calendar arithmetic.
	Timestamp string

	// Level is the uppercased severity token, or "" if none was found.
	Level string

	// Message is the remaining text after the timestamp and level tokens
	// have been stripped.
	Message string

	// StackContinuation reports whether the line extends a preceding
	// error's detail (stack frame or cause chain) rather than starting a
	// new log event.
	StackContinuation bool
}

// Severity tokens recognized by the classifier.
const (
	LevelError    = "ERROR"
	LevelFatal    = "FATAL"
	LevelCritical = "CRITICAL"
	LevelSevere   = "SEVERE"
	LevelWarn     = "WARN"
	LevelWarning  = "WARNING"
	LevelInfo     = "INFO"
	LevelDebug    = "DEBUG"
	LevelTrace    = "TRACE"
)

// IsErrorLevel reports whether level is one of the error-class severities.
func IsErrorLevel(level string) bool {
	switch level {
	case LevelError, LevelFatal, LevelCritical, LevelSevere:
		return true
	}
	return false
}
