package parser

import (
	"regexp"
	"strings"
)

var (
	// ISO-8601-like prefix: date, T or space separator, time, optional
	// milliseconds, optional Z or numeric offset.
	timestampPattern = regexp.MustCompile(
		`^(\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}(?:\.\d{3})?(?:Z|[+-]\d{2}:\d{2})?)`)

	// Whole-word severity token anywhere in the line, case-insensitive.
	// WARN precedes WARNING in the alternation; the trailing \b keeps it
	// from matching inside WARNING.
	levelPattern = regexp.MustCompile(
		`(?i)\b(ERROR|FATAL|CRITICAL|SEVERE|WARN|WARNING|INFO|DEBUG|TRACE)\b`)

	javaFramePattern   = regexp.MustCompile(`^at\s+[\w$.<>/-]+\(.*\)`)
	pythonFramePattern = regexp.MustCompile(`^File ".*", line \d+`)
	causedByPattern    = regexp.MustCompile(`^Caused by:`)
	indentedAtPattern  = regexp.MustCompile(`^\s+at\s`)
)

// Classify converts one raw line into a ClassifiedLine. It always succeeds:
// lines with no timestamp or level simply leave those fields empty.
func Classify(raw string, lineNum int) ClassifiedLine {
	line := ClassifiedLine{Raw: raw, LineNum: lineNum}
	working := raw

	if ts := timestampPattern.FindString(working); ts != "" {
		line.Timestamp = ts
		working = strings.TrimSpace(working[len(ts):])
	}

	if loc := levelPattern.FindStringIndex(working); loc != nil {
		line.Level = strings.ToUpper(working[loc[0]:loc[1]])
		working = strings.TrimSpace(working[loc[1]:])
	}

	line.Message = working
	line.StackContinuation = isContinuation(raw)
	return line
}

// isContinuation reports whether the line extends a previous error rather
// than starting a new log event. Checked independently of level extraction;
// continuation lines typically carry no level token at all.
func isContinuation(raw string) bool {
	trimmed := strings.TrimSpace(raw)
	switch {
	case javaFramePattern.MatchString(trimmed):
		return true
	case pythonFramePattern.MatchString(trimmed):
		return true
	case causedByPattern.MatchString(trimmed):
		return true
	case indentedAtPattern.MatchString(raw):
		return true
	}
	return false
}
