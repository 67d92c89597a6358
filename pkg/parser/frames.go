package parser

import (
	"regexp"
	"strconv"
)

// FrameLocation is a source position extracted from a stack frame,
// suitable for mapping to an editor marker.
type FrameLocation struct {
	File   string
	Line   int
	Column int // 0 when the frame carries no column
}

var (
	// Node/Java style: path/to/file.ext:line or path/to/file.ext:line:column.
	fileLinePattern = regexp.MustCompile(`([\w$./\\-]+\.\w+):(\d+)(?::(\d+))?`)

	// Python style: File "path/to/file.py", line 42.
	pythonLocPattern = regexp.MustCompile(`File "([^"]+)", line (\d+)`)
)

// FirstFrameLocation scans stack trace lines in order and returns the first
// source location it can extract. The boolean is false when no frame in the
// trace carries a recognizable location.
func FirstFrameLocation(trace []string) (FrameLocation, bool) {
	for _, frame := range trace {
		if loc, ok := frameLocation(frame); ok {
			return loc, true
		}
	}
	return FrameLocation{}, false
}

func frameLocation(frame string) (FrameLocation, bool) {
	if m := pythonLocPattern.FindStringSubmatch(frame); m != nil {
		line, _ := strconv.Atoi(m[2])
		return FrameLocation{File: m[1], Line: line}, true
	}
	if m := fileLinePattern.FindStringSubmatch(frame); m != nil {
		line, _ := strconv.Atoi(m[2])
		col := 0
		if m[3] != "" {
			col, _ = strconv.Atoi(m[3])
		}
		return FrameLocation{File: m[1], Line: line, Column: col}, true
	}
	return FrameLocation{}, false
}
