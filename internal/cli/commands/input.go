package commands

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/loglens/loglens/pkg/parser"
)

// readInput loads log text from the given arguments. A single "-" reads
// stdin; anything else is treated as file paths or glob patterns, expanded
// and concatenated in sorted order. Returns the blob and the source names.
func readInput(args []string, stdin io.Reader) (string, []string, error) {
	if len(args) == 1 && args[0] == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", nil, fmt.Errorf("reading stdin: %w", err)
		}
		return string(data), []string{"stdin"}, nil
	}

	files, err := parser.ExpandGlobs(args)
	if err != nil {
		return "", nil, err
	}
	if len(files) == 0 {
		return "", nil, fmt.Errorf("no log files matched: %v", args)
	}

	var blobs []string
	for _, file := range files {
		data, err := os.ReadFile(file) // #nosec G304 -- user-provided paths are expected
		if err != nil {
			return "", nil, fmt.Errorf("reading log file %s: %w", file, err)
		}
		blobs = append(blobs, string(data))
	}

	return strings.Join(blobs, "\n"), files, nil
}
