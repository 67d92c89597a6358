package detector

import "regexp"

// Format is a known log dialect with a heuristic detection pattern.
type Format struct {
	// Label is the human-readable dialect name surfaced in reports.
	Label string

	// Pattern is tested against the joined sample of leading lines.
	Pattern *regexp.Regexp
}

// DefaultFormats returns the built-in dialect checks. Order is significant
// and first match wins: later patterns can be strict subsets of earlier
// ones (a Spring Boot line also contains a bracketed token the Generic
// check would accept), so keep the most specific dialects first.
func DefaultFormats() []Format {
	return []Format{
		// Spring Boot default console layout: date, time with millis, level.
		{
			Label:   "Java/Spring Boot",
			Pattern: regexp.MustCompile(`(?m)^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}\.\d{3}\s+(ERROR|WARN|INFO|DEBUG)`),
		},
		// Python logging default: LEVEL:module.path:message.
		{
			Label:   "Python",
			Pattern: regexp.MustCompile(`(?m)^(ERROR|WARNING|INFO|DEBUG|CRITICAL):[\w.]+:`),
		},
		// Winston and friends: JSON lines with a quoted level field.
		{
			Label:   "Node.js/Winston (JSON)",
			Pattern: regexp.MustCompile(`"level"\s*:\s*"\w+"`),
		},
		// CloudWatch ingestion timestamps: ISO-8601 UTC with millis.
		{
			Label:   "AWS CloudWatch",
			Pattern: regexp.MustCompile(`(?m)^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z`),
		},
		// Anything with a bracketed severity token.
		{
			Label:   "Generic",
			Pattern: regexp.MustCompile(`(?i)\[(ERROR|WARN|WARNING|INFO|DEBUG|TRACE|FATAL|CRITICAL|SEVERE)\]`),
		},
	}
}
