package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/loglens/loglens/pkg/analyzer"
	"github.com/loglens/loglens/pkg/detector"
	"github.com/loglens/loglens/pkg/parser"
)

// DiagnoseOptions holds options for the diagnose command
type DiagnoseOptions struct {
	Config  string
	Verbose bool
}

// DiagnosticResult represents the result of a single diagnostic check
type DiagnosticResult struct {
	Check    string
	Status   string // "ok", "warning", "error"
	Message  string
	Details  []string
	Suggests []string
}

// NewDiagnoseCommand creates the diagnose command
func NewDiagnoseCommand() *cobra.Command {
	opts := &DiagnoseOptions{}

	cmd := &cobra.Command{
		Use:   "diagnose <file>",
		Short: "Diagnose why a log file analyzes poorly",
		Long: `Diagnose why a log file fails validation or produces a weak report.

This command checks the input check by check:
- File existence and readability
- Pre-flight validation rules (size limits, error indicators)
- Log dialect detection
- Timestamp and severity level coverage
- Stack trace frame presence

Example:
  loglens diagnose app.log
  loglens diagnose -v app.log  # verbose output`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDiagnose(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Config, "config", "c", "", "Path to config file (optional)")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show detailed diagnostic output")

	return cmd
}

func runDiagnose(cmd *cobra.Command, path string, opts *DiagnoseOptions) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	results := []DiagnosticResult{}

	// 1. Check the file itself
	text, result := checkReadable(path)
	results = append(results, result)
	if result.Status == "error" {
		printDiagnostics(out, results, opts)
		ExitCode = 1
		return nil
	}

	cfg, err := loadConfig(ctx, opts.Config)
	if err != nil {
		return err
	}

	lines := nonBlankLines(text)

	// 2. Pre-flight validation rules
	a := analyzer.New(analyzer.WithLineLimits(cfg.Validation.MinLines, cfg.Validation.MaxLines))
	results = append(results, checkValidation(a, text, len(lines), cfg.Validation.MinLines, cfg.Validation.MaxLines))

	// 3. Dialect detection
	results = append(results, checkDetection(lines))

	// 4. Classification coverage
	results = append(results, checkCoverage(lines)...)

	printDiagnostics(out, results, opts)

	for _, r := range results {
		if r.Status == "error" {
			ExitCode = 1
			break
		}
	}
	return nil
}

func checkReadable(path string) (string, DiagnosticResult) {
	result := DiagnosticResult{
		Check: "Log File",
	}

	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		result.Status = "error"
		result.Message = fmt.Sprintf("Log file not found: %s", path)
		result.Suggests = []string{"Check the file path is correct"}
		return "", result
	}
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot access log file: %v", err)
		result.Suggests = []string{"Check file permissions"}
		return "", result
	}
	if info.IsDir() {
		result.Status = "error"
		result.Message = "Path is a directory, not a file"
		return "", result
	}
	if info.Size() == 0 {
		result.Status = "error"
		result.Message = "Log file is empty"
		return "", result
	}

	f, err := os.Open(path) // #nosec G304 -- user-provided path is expected
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot open log file: %v", err)
		return "", result
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		result.Status = "error"
		result.Message = fmt.Sprintf("Cannot read log file: %v", err)
		return "", result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("Found: %s (%d bytes)", path, info.Size())
	return string(data), result
}

func checkValidation(a *analyzer.Analyzer, text string, lineCount, minLines, maxLines int) DiagnosticResult {
	result := DiagnosticResult{
		Check: "Pre-flight Validation",
		Details: []string{
			fmt.Sprintf("Non-blank lines: %d (limits: %d..%d)", lineCount, minLines, maxLines),
		},
	}

	check := a.Check(text)
	if check.Valid {
		result.Status = "ok"
		result.Message = "Input passes all pre-flight checks"
		return result
	}

	result.Status = "error"
	result.Message = check.Reason
	switch check.Kind {
	case analyzer.KindInsufficientLines:
		result.Suggests = []string{"Include more of the log; a handful of lines is not enough to group errors"}
	case analyzer.KindExcessiveLines:
		result.Suggests = []string{"Trim the input to the time window around the incident"}
	case analyzer.KindNoErrorSignal:
		result.Suggests = []string{
			"Analysis needs at least one ERROR, FATAL, CRITICAL, SEVERE or Exception line",
			"If the log is healthy there is nothing to group",
		}
	}
	return result
}

func checkDetection(lines []string) DiagnosticResult {
	result := DiagnosticResult{
		Check: "Dialect Detection",
	}

	label := detector.Detect(lines)
	if label == detector.UnknownFormat {
		result.Status = "warning"
		result.Message = "No dialect check matched the leading lines"
		result.Suggests = []string{
			"Detection is advisory; analysis still runs",
			"Mixed or uncommon layouts are expected to show as Unknown",
		}
		return result
	}

	result.Status = "ok"
	result.Message = fmt.Sprintf("Detected: %s", label)
	return result
}

func checkCoverage(lines []string) []DiagnosticResult {
	withTimestamp := 0
	withLevel := 0
	frames := 0
	for i, line := range lines {
		classified := parser.Classify(line, i+1)
		if classified.Timestamp != "" {
			withTimestamp++
		}
		if classified.Level != "" {
			withLevel++
		}
		if classified.StackContinuation {
			frames++
		}
	}

	results := []DiagnosticResult{}

	tsResult := DiagnosticResult{
		Check:   "Timestamp Coverage",
		Message: fmt.Sprintf("%d of %d lines start with a recognizable timestamp (%.0f%%)", withTimestamp, len(lines), percent(withTimestamp, len(lines))),
	}
	if withTimestamp == 0 {
		tsResult.Status = "warning"
		tsResult.Suggests = []string{"Without timestamps the report has no time range"}
	} else {
		tsResult.Status = "ok"
	}
	results = append(results, tsResult)

	lvlResult := DiagnosticResult{
		Check:   "Severity Coverage",
		Message: fmt.Sprintf("%d of %d lines carry a severity level (%.0f%%)", withLevel, len(lines), percent(withLevel, len(lines))),
	}
	switch {
	case withLevel == 0:
		lvlResult.Status = "warning"
		lvlResult.Suggests = []string{"No severity tokens found; error grouping will find nothing"}
	case percent(withLevel, len(lines)) < 25:
		lvlResult.Status = "warning"
		lvlResult.Suggests = []string{"Low severity coverage; many lines will be ignored by the grouper"}
	default:
		lvlResult.Status = "ok"
	}
	results = append(results, lvlResult)

	frameResult := DiagnosticResult{
		Check:   "Stack Traces",
		Status:  "ok",
		Message: fmt.Sprintf("%d stack trace frame lines found", frames),
	}
	results = append(results, frameResult)

	return results
}

func printDiagnostics(w io.Writer, results []DiagnosticResult, opts *DiagnoseOptions) {
	fmt.Fprintln(w, "=== LogLens Input Diagnostics ===")
	fmt.Fprintln(w)

	okCount := 0
	warnCount := 0
	errCount := 0

	for _, r := range results {
		// Status icon
		var icon string
		switch r.Status {
		case "ok":
			icon = "PASS"
			okCount++
		case "warning":
			icon = "WARN"
			warnCount++
		case "error":
			icon = "FAIL"
			errCount++
		}

		fmt.Fprintf(w, "[%s] %s\n", icon, r.Check)
		fmt.Fprintf(w, "    %s\n", r.Message)

		if opts.Verbose || r.Status != "ok" {
			for _, d := range r.Details {
				fmt.Fprintf(w, "      - %s\n", d)
			}
		}

		for _, s := range r.Suggests {
			fmt.Fprintf(w, "      Hint: %s\n", s)
		}

		fmt.Fprintln(w)
	}

	// Summary
	fmt.Fprintln(w, "---")
	fmt.Fprintf(w, "Summary: %d passed, %d warnings, %d errors\n", okCount, warnCount, errCount)

	switch {
	case errCount > 0:
		fmt.Fprintln(w, "Fix the errors above before running analysis.")
	case warnCount > 0:
		fmt.Fprintln(w, "Input is analyzable but the report may be thin.")
	default:
		fmt.Fprintln(w, "Input looks good!")
	}
}
