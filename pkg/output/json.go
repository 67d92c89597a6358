package output

import (
	"context"
	"encoding/json"
	"io"
)

// JSONFormatter renders the report as indented JSON, the same shape the
// webhook client posts, so scripted consumers see one schema.
type JSONFormatter struct {
	opts FormatOptions
}

// NewJSONFormatter creates a JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format encodes the full report, or only its summary block in quiet mode.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if f.opts.Quiet {
		return enc.Encode(report.Summary)
	}
	return enc.Encode(report)
}
