package analyzer

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/loglens/loglens/pkg/parser"
)

// maxSamples caps the verbatim sample lines kept per group.
const maxSamples = 3

// grouperState is the accumulation state of the error grouper.
type grouperState int

const (
	// stateIdle means no error record is open.
	stateIdle grouperState = iota

	// stateOpen means continuation lines are being collected for the most
	// recent error-level line.
	stateOpen
)

// errorRecord accumulates one contiguous error occurrence: the triggering
// line plus any stack-trace continuation lines that follow it.
type errorRecord struct {
	timestamp string
	key       string
	samples   []string
	rawLines  []string
	trace     []string
}

// grouper walks classified lines in order, assembling multi-line error
// records and merging them into frequency-ranked groups keyed by
// normalized short message.
type grouper struct {
	state  grouperState
	open   *errorRecord
	groups map[string]*ErrorGroup

	// order tracks key creation order explicitly; it is the tie-break for
	// groups with equal counts, so it must not depend on map iteration.
	order []string
}

func newGrouper() *grouper {
	return &grouper{
		state:  stateIdle,
		groups: make(map[string]*ErrorGroup),
	}
}

// feed advances the state machine by one classified line.
func (g *grouper) feed(line parser.ClassifiedLine) {
	switch g.state {
	case stateIdle:
		if parser.IsErrorLevel(line.Level) {
			g.openRecord(line)
		}
		// Anything else is not part of an error occurrence.

	case stateOpen:
		switch {
		case line.StackContinuation:
			trimmed := strings.TrimSpace(line.Raw)
			g.open.trace = append(g.open.trace, trimmed)
			g.open.rawLines = append(g.open.rawLines, trimmed)

		case parser.IsErrorLevel(line.Level):
			// An error line directly after another error line closes the
			// current record and immediately opens the next one.
			g.closeRecord()
			g.openRecord(line)

		default:
			// A non-error, non-continuation line ends the occurrence and
			// is itself discarded.
			g.closeRecord()
			g.state = stateIdle
		}
	}
}

// finish closes a still-open record at end of input and returns the groups
// in key creation order.
func (g *grouper) finish() []*ErrorGroup {
	if g.state == stateOpen {
		g.closeRecord()
		g.state = stateIdle
	}

	groups := make([]*ErrorGroup, 0, len(g.order))
	for _, key := range g.order {
		groups = append(groups, g.groups[key])
	}
	return groups
}

func (g *grouper) openRecord(line parser.ClassifiedLine) {
	g.open = &errorRecord{
		timestamp: line.Timestamp,
		key:       shortMessage(line.Message),
		samples:   []string{line.Raw},
		rawLines:  []string{line.Raw},
	}
	g.state = stateOpen
}

// closeRecord merges the open record into the group map. Counts accumulate,
// samples append only while under the cap, rawLines append unconditionally,
// and stack trace and timestamp follow last-writer-wins. An occurrence
// without a trace never clears an earlier trace.
func (g *grouper) closeRecord() {
	rec := g.open
	g.open = nil

	group, exists := g.groups[rec.key]
	if !exists {
		group = &ErrorGroup{
			Message:   rec.key,
			Count:     1,
			Samples:   rec.samples,
			RawLines:  rec.rawLines,
			Timestamp: rec.timestamp,
		}
		if len(rec.trace) > 0 {
			group.StackTrace = rec.trace
		}
		g.groups[rec.key] = group
		g.order = append(g.order, rec.key)
		return
	}

	group.Count++
	for _, sample := range rec.samples {
		if len(group.Samples) >= maxSamples {
			break
		}
		group.Samples = append(group.Samples, sample)
	}
	group.RawLines = append(group.RawLines, rec.rawLines...)
	if len(rec.trace) > 0 {
		group.StackTrace = rec.trace
	}
	if rec.timestamp != "" {
		group.Timestamp = rec.timestamp
	}
}

// Short-message extraction patterns, tried in order. Error-type extraction
// has to work across dialects without knowing the detected format, hence
// the ordered fallback.
var (
	// Java-style: a SomethingException / SomethingError token, optionally
	// followed by its detail message.
	javaErrorPattern = regexp.MustCompile(`\b(\w+(?:Exception|Error))\b(?::\s*(.*))?`)

	// Python-style: a leading error type followed by a colon.
	pythonErrorPattern = regexp.MustCompile(`^(\w+(?:Error|Exception)):\s*(.*)`)

	// Node-style: a bare "Error:" prefix with the message after it.
	nodeErrorPattern = regexp.MustCompile(`Error:\s*(.+)`)
)

// shortMessage derives the grouping key from the triggering line's message.
func shortMessage(message string) string {
	if m := javaErrorPattern.FindStringSubmatch(message); m != nil {
		return truncate(joinKey(m[1], m[2]), 100)
	}
	if m := pythonErrorPattern.FindStringSubmatch(message); m != nil {
		return truncate(joinKey(m[1], m[2]), 100)
	}
	if m := nodeErrorPattern.FindStringSubmatch(message); m != nil {
		return truncate(strings.TrimSpace(m[1]), 100)
	}
	if idx := strings.Index(message, ":"); idx > 0 {
		return truncate(strings.TrimSpace(message[:idx]), 100)
	}
	return truncate(message, 200)
}

func joinKey(errType, detail string) string {
	detail = strings.TrimSpace(detail)
	if detail == "" {
		return errType
	}
	return errType + ": " + detail
}

// truncate caps s at max bytes without splitting a multibyte rune, so the
// key stays valid UTF-8 for the JSON report.
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	for max > 0 && !utf8.RuneStart(s[max]) {
		max--
	}
	return s[:max]
}
