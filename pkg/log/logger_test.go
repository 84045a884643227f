package log

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/YuminosukeSato/laptopfeat/pkg/errors"
)

func TestTestLoggerLevels(t *testing.T) {
	testLogger, buffer := NewTestLogger(LevelDebug)

	testLogger.Debug("debug message", "key1", "value1", "number", 42)
	testLogger.Info("info message", OperationKey, OperationExtract)
	testLogger.Warn("warning message", MalformedKey, 3)
	testLogger.Error("error message", fmt.Errorf("test error"), ColumnKey, "Cpu")

	if buffer.String() == "" {
		t.Fatal("Expected log output, got empty string")
	}
	for _, msg := range []string{"debug message", "info message", "warning message", "error message"} {
		if !testLogger.ContainsMessage(msg) {
			t.Errorf("%q not found in output", msg)
		}
	}
	if !testLogger.ContainsField("number", 42.0) { // JSON numbers decode as float64
		t.Error("Expected field number=42 not found")
	}
	if !testLogger.ContainsField("error", "test error") {
		t.Error("Expected leading error to be recorded under 'error'")
	}
	if !testLogger.ContainsField(ColumnKey, "Cpu") {
		t.Error("Expected column field after the error")
	}
}

func TestTestLoggerWith(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelDebug)

	contextLogger := testLogger.With(ComponentKey, "extract.memory", ColumnKey, "Memory")
	contextLogger.Info("contextual message", OperationKey, OperationExtract)

	if !testLogger.ContainsField(ComponentKey, "extract.memory") {
		t.Error("Component context not found")
	}
	if !testLogger.ContainsField(ColumnKey, "Memory") {
		t.Error("Column context not found")
	}
	if !testLogger.ContainsField(OperationKey, OperationExtract) {
		t.Error("Operation field not found")
	}
}

func TestTestLoggerEnabled(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)
	ctx := context.Background()

	if !testLogger.Enabled(ctx, LevelInfo) || !testLogger.Enabled(ctx, LevelError) {
		t.Error("Logger should be enabled for Info and Error levels")
	}
	if testLogger.Enabled(ctx, LevelDebug) {
		t.Error("Logger should not be enabled for Debug level")
	}

	testLogger.Debug("this should not appear")
	testLogger.Info("this should appear")

	if testLogger.ContainsMessage("this should not appear") {
		t.Error("Debug message should not appear when level is Info")
	}
	if !testLogger.ContainsMessage("this should appear") {
		t.Error("Info message should appear when level is Info")
	}
}

func TestTestLoggerConcurrent(t *testing.T) {
	testLogger, _ := NewTestLogger(LevelInfo)

	const goroutines, perGoroutine = 4, 25
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				testLogger.Info("row processed", "worker", id, "row", j)
			}
		}(i)
	}
	wg.Wait()

	entries, err := testLogger.GetLogEntries()
	if err != nil {
		t.Fatalf("Failed to parse log entries: %v", err)
	}
	if len(entries) != goroutines*perGoroutine {
		t.Errorf("Expected %d log entries, got %d", goroutines*perGoroutine, len(entries))
	}
}

func TestZerologLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelInfo).With(ComponentKey, "selection")

	logger.Debug("hidden")
	logger.Info("selected", SamplesKey, 3, ThresholdKey, 0.5)
	logger.Error("failed", errors.NewValueError("Pearson", "need at least 2 samples"), LabelKey, "Price")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}

	var info map[string]interface{}
	if err := json.Unmarshal([]byte(lines[0]), &info); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if info["message"] != "selected" || info["level"] != "info" {
		t.Errorf("unexpected record %v", info)
	}
	if info[ComponentKey] != "selection" || info[SamplesKey] != 3.0 {
		t.Errorf("missing structured fields in %v", info)
	}

	var failed map[string]interface{}
	if err := json.Unmarshal([]byte(lines[1]), &failed); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if !strings.Contains(fmt.Sprint(failed["error"]), "need at least 2 samples") {
		t.Errorf("error not attached: %v", failed)
	}
	if failed[LabelKey] != "Price" {
		t.Errorf("label field missing: %v", failed)
	}
}

func TestZerologLoggerEnabled(t *testing.T) {
	logger := NewZerologLogger(&bytes.Buffer{}, LevelWarn)
	ctx := context.Background()

	if logger.Enabled(ctx, LevelInfo) {
		t.Error("Info should be disabled at Warn level")
	}
	if !logger.Enabled(ctx, LevelError) {
		t.Error("Error should be enabled at Warn level")
	}
}

func TestZerologLoggerMarshalsWarnings(t *testing.T) {
	var buf bytes.Buffer
	logger := NewZerologLogger(&buf, LevelDebug)

	logger.Warn("memory column", "warning", errors.NewMalformedValueWarning("memory", 1, 4, "??"))

	var rec map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	obj, ok := rec["warning"].(map[string]interface{})
	if !ok {
		t.Fatalf("warning should be an object, got %T", rec["warning"])
	}
	if obj["type"] != "MalformedValueWarning" || obj["count"] != 1.0 {
		t.Errorf("unexpected warning object %v", obj)
	}
}

func TestProviderAndWarningRouting(t *testing.T) {
	provider, captured := NewTestLoggerProvider(LevelDebug)
	SetProvider(provider)
	defer SetProvider(NewZerologProvider(&bytes.Buffer{}, LevelWarn))

	GetLoggerWithName("extract.cpu").Info("named logger message")
	if !captured.ContainsField(ComponentKey, "extract.cpu") {
		t.Error("component name not found in named logger output")
	}

	errors.Warn(errors.NewMalformedValueWarning("memory", 2, 5, "N/A"))
	if !captured.ContainsMessage("2 of 5 memory values") {
		t.Error("warning was not routed through the installed provider")
	}
	if !captured.ContainsField(ComponentKey, "warnings") {
		t.Error("warning should be logged by the warnings component")
	}

	provider.SetLevel(LevelError)
	GetLogger().Info("suppressed")
	if captured.ContainsMessage("suppressed") {
		t.Error("SetLevel should suppress info records")
	}
}

func TestToLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"verbose", LevelInfo, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ToLogLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ToLogLevel(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ToLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func BenchmarkZerologLogger(b *testing.B) {
	logger := NewZerologLogger(&bytes.Buffer{}, LevelInfo).With(ComponentKey, "bench")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("row batch", SamplesKey, 1000, "batch", i)
	}
}
