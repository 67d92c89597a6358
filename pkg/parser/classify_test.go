package parser

import "testing"

func TestClassify_TimestampVariants(t *testing.T) {
	tests := []struct {
		name string
		line string
		want string
	}{
		{"space separator", "2024-01-15 10:30:45 starting up", "2024-01-15 10:30:45"},
		{"T separator", "2024-01-15T10:30:45 starting up", "2024-01-15T10:30:45"},
		{"milliseconds", "2024-01-15 10:30:45.123 starting up", "2024-01-15 10:30:45.123"},
		{"utc zulu", "2024-01-15T10:30:45.123Z starting up", "2024-01-15T10:30:45.123Z"},
		{"positive offset", "2024-01-15T10:30:45+02:00 starting up", "2024-01-15T10:30:45+02:00"},
		{"negative offset", "2024-01-15T10:30:45.500-05:00 starting up", "2024-01-15T10:30:45.500-05:00"},
		{"no timestamp", "starting up", ""},
		{"timestamp mid-line ignored", "pid 10 2024-01-15 10:30:45 starting", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.line, 1)
			if got.Timestamp != tt.want {
				t.Errorf("Timestamp = %q, want %q", got.Timestamp, tt.want)
			}
		})
	}
}

func TestClassify_Levels(t *testing.T) {
	tests := []struct {
		name      string
		line      string
		wantLevel string
		wantMsg   string
	}{
		{"plain error", "ERROR something broke", "ERROR", "something broke"},
		{"lowercase", "error something broke", "ERROR", "something broke"},
		{"bracketed", "[WARN] disk nearly full", "WARN", "] disk nearly full"},
		{"warning not truncated to warn", "WARNING: disk nearly full", "WARNING", ": disk nearly full"},
		{"mid-line level", "myapp[231]: INFO request served", "INFO", "request served"},
		{"json quoted level", `{"level":"error","message":"Connection refused"}`, "ERROR", `","message":"Connection refused"}`},
		{"no level", "plain text line", "", "plain text line"},
		{"no partial word match", "terror in the logs", "", "terror in the logs"},
		{"severe", "SEVERE: null reference", "SEVERE", ": null reference"},
		{"trace", "TRACE entering handler", "TRACE", "entering handler"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.line, 1)
			if got.Level != tt.wantLevel {
				t.Errorf("Level = %q, want %q", got.Level, tt.wantLevel)
			}
			if got.Message != tt.wantMsg {
				t.Errorf("Message = %q, want %q", got.Message, tt.wantMsg)
			}
		})
	}
}

func TestClassify_TimestampAndLevelStripped(t *testing.T) {
	got := Classify("2024-01-15 10:30:45.123 ERROR payment failed: timeout", 7)

	if got.Timestamp != "2024-01-15 10:30:45.123" {
		t.Errorf("Timestamp = %q", got.Timestamp)
	}
	if got.Level != "ERROR" {
		t.Errorf("Level = %q", got.Level)
	}
	if got.Message != "payment failed: timeout" {
		t.Errorf("Message = %q", got.Message)
	}
	if got.LineNum != 7 {
		t.Errorf("LineNum = %d, want 7", got.LineNum)
	}
	if got.Raw != "2024-01-15 10:30:45.123 ERROR payment failed: timeout" {
		t.Errorf("Raw = %q", got.Raw)
	}
}

func TestClassify_StackContinuation(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"java frame", "at com.example.Service.process(Service.java:47)", true},
		{"indented java frame", "\tat com.example.Service.process(Service.java:47)", true},
		{"jdk module frame", "    at java.base/java.lang.Thread.run(Thread.java:833)", true},
		{"python frame", `File "app/views.py", line 42, in dispatch`, true},
		{"indented python frame", `  File "app/views.py", line 42, in dispatch`, true},
		{"caused by", "Caused by: java.io.IOException: broken pipe", true},
		{"indented node frame", "    at processTicksAndRejections (node:internal/process/task_queues:95:5)", true},
		{"normal log line", "2024-01-15 10:30:45 INFO all good", false},
		{"sentence starting with at", "at the moment everything is fine", false},
		{"blank-ish", "   ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.line, 1)
			if got.StackContinuation != tt.want {
				t.Errorf("StackContinuation = %v, want %v", got.StackContinuation, tt.want)
			}
		})
	}
}

func TestIsErrorLevel(t *testing.T) {
	for _, level := range []string{LevelError, LevelFatal, LevelCritical, LevelSevere} {
		if !IsErrorLevel(level) {
			t.Errorf("IsErrorLevel(%q) = false, want true", level)
		}
	}
	for _, level := range []string{LevelWarn, LevelWarning, LevelInfo, LevelDebug, LevelTrace, ""} {
		if IsErrorLevel(level) {
			t.Errorf("IsErrorLevel(%q) = true, want false", level)
		}
	}
}
