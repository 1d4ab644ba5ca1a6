package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

// TestNumberHandler_GroupsLargeIntegers tests that large integer attributes
// receive thousands separators while everything else passes through.
func TestNumberHandler_GroupsLargeIntegers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		key      string
		value    any
		want     string
		dontWant string
	}{
		{
			name:  "large uint64 is grouped",
			key:   "low",
			value: uint64(1234567),
			want:  "1,234,567",
		},
		{
			name:  "large int is grouped",
			key:   "count",
			value: 250000,
			want:  "250,000",
		},
		{
			name:  "negative large int is grouped",
			key:   "delta",
			value: -123456,
			want:  "-123,456",
		},
		{
			name:  "threshold value is grouped",
			key:   "n",
			value: 10000,
			want:  "10,000",
		},
		{
			name:  "small int is not grouped",
			key:   "workers",
			value: 8,
			want:  "workers=8",
		},
		{
			name:     "four digit value is not grouped",
			key:      "port",
			value:    9050,
			want:     "port=9050",
			dontWant: "9,050",
		},
		{
			name:  "string value passes through",
			key:   "range",
			value: "1000-9999",
			want:  "1000-9999",
		},
		{
			name:  "duration value passes through",
			key:   "elapsed",
			value: 1500 * time.Millisecond,
			want:  "1.5s",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewLogger(&buf, true)

			logger.Info("test message", tt.key, tt.value)

			output := buf.String()

			if !strings.Contains(output, tt.want) {
				t.Errorf("expected %q in output, but not found: %s", tt.want, output)
			}
			if tt.dontWant != "" && strings.Contains(output, tt.dontWant) {
				t.Errorf("expected %q to be absent from output: %s", tt.dontWant, output)
			}
		})
	}
}

// TestNumberHandler_GroupAttrs tests that grouping applies inside slog groups.
func TestNumberHandler_GroupAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, true)

	logger.Info("test message",
		slog.Group("chunk",
			slog.Uint64("low", 1000000),
			slog.Uint64("high", 1000099),
			slog.Int("index", 3),
		),
	)

	output := buf.String()

	if !strings.Contains(output, "1,000,000") {
		t.Errorf("expected grouped low bound in output, but not found: %s", output)
	}
	if !strings.Contains(output, "1,000,099") {
		t.Errorf("expected grouped high bound in output, but not found: %s", output)
	}
	if !strings.Contains(output, "index=3") {
		t.Errorf("expected small index to pass through, but not found: %s", output)
	}
}

// TestNumberHandler_LogLevels tests that log levels are respected.
func TestNumberHandler_LogLevels(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		verbose    bool
		logLevel   slog.Level
		shouldShow bool
	}{
		{
			name:       "debug message shown in verbose mode",
			verbose:    true,
			logLevel:   slog.LevelDebug,
			shouldShow: true,
		},
		{
			name:       "debug message hidden in non-verbose mode",
			verbose:    false,
			logLevel:   slog.LevelDebug,
			shouldShow: false,
		},
		{
			name:       "info message shown in verbose mode",
			verbose:    true,
			logLevel:   slog.LevelInfo,
			shouldShow: true,
		},
		{
			name:       "info message hidden in non-verbose mode",
			verbose:    false,
			logLevel:   slog.LevelInfo,
			shouldShow: false,
		},
		{
			name:       "warn message shown in verbose mode",
			verbose:    true,
			logLevel:   slog.LevelWarn,
			shouldShow: true,
		},
		{
			name:       "warn message shown in non-verbose mode",
			verbose:    false,
			logLevel:   slog.LevelWarn,
			shouldShow: true,
		},
		{
			name:       "error message shown in verbose mode",
			verbose:    true,
			logLevel:   slog.LevelError,
			shouldShow: true,
		},
		{
			name:       "error message shown in non-verbose mode",
			verbose:    false,
			logLevel:   slog.LevelError,
			shouldShow: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			logger := NewLogger(&buf, tt.verbose)

			testMsg := "test_unique_message_12345"

			switch tt.logLevel {
			case slog.LevelDebug:
				logger.Debug(testMsg)
			case slog.LevelInfo:
				logger.Info(testMsg)
			case slog.LevelWarn:
				logger.Warn(testMsg)
			case slog.LevelError:
				logger.Error(testMsg)
			}

			output := buf.String()
			hasMessage := strings.Contains(output, testMsg)

			if tt.shouldShow && !hasMessage {
				t.Errorf("expected message to be shown, but not found in output: %s", output)
			}
			if !tt.shouldShow && hasMessage {
				t.Errorf("expected message to be hidden, but found in output: %s", output)
			}
		})
	}
}

// TestNumberHandler_WithAttrs tests that WithAttrs formats attributes.
func TestNumberHandler_WithAttrs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, true)

	// Add a large attribute via WithAttrs
	childLogger := logger.With("total", uint64(5000000), "workers", 4)
	childLogger.Info("test message")

	output := buf.String()

	if !strings.Contains(output, "5,000,000") {
		t.Errorf("expected grouped total in WithAttrs output, but not found: %s", output)
	}
	if !strings.Contains(output, "workers=4") {
		t.Errorf("expected small worker count to pass through, but not found: %s", output)
	}
}

// TestNumberHandler_WithGroup tests that WithGroup works correctly.
func TestNumberHandler_WithGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewLogger(&buf, true)

	// Add group
	groupLogger := logger.WithGroup("scan")
	groupLogger.Info("test message", "high", uint64(125460), "label", "fangs")

	output := buf.String()

	// Large bound should be grouped inside the named group
	if !strings.Contains(output, "125,460") {
		t.Errorf("expected grouped high bound, but not found in output: %s", output)
	}

	// Plain string attribute should be untouched
	if !strings.Contains(output, "fangs") {
		t.Errorf("expected label to be visible, but not found in output: %s", output)
	}
}

// TestNewNumberHandler_NilHandler tests that nil handler is handled gracefully.
func TestNewNumberHandler_NilHandler(t *testing.T) {
	t.Parallel()

	// Should not panic with nil handler
	handler := NewNumberHandler(nil)
	if handler == nil {
		t.Error("expected non-nil handler")
	}

	// Should be able to use the handler
	logger := slog.New(handler)
	logger.Info("test message") // Should not panic
}
