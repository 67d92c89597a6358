// LogLens - Local Log Analysis Tool
//
// LogLens converts raw, unstructured application log text into a structured
// report of log levels, detected errors, stack traces and deduplicated
// error groups.
package main

import (
	"os"

	"github.com/loglens/loglens/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
