package logger

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// TestNew tests the New function.
func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		level zapcore.LevelEnabler
	}{
		{
			name:  "with debug level",
			level: zapcore.DebugLevel,
		},
		{
			name:  "with info level",
			level: zapcore.InfoLevel,
		},
		{
			name:  "with error level",
			level: zapcore.ErrorLevel,
		},
		{
			name:  "with nil level",
			level: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			logger := New(tt.level)
			assert.NotNil(t, logger)
		})
	}
}

// TestParseLogLevel tests the ParseLogLevel function.
func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected zapcore.Level
		valid    bool
	}{
		{
			name:     "debug level",
			input:    "debug",
			expected: zapcore.DebugLevel,
			valid:    true,
		},
		{
			name:     "info level",
			input:    "info",
			expected: zapcore.InfoLevel,
			valid:    true,
		},
		{
			name:     "warn level",
			input:    "warn",
			expected: zapcore.WarnLevel,
			valid:    true,
		},
		{
			name:     "error level",
			input:    "error",
			expected: zapcore.ErrorLevel,
			valid:    true,
		},
		{
			name:     "dpanic level",
			input:    "dpanic",
			expected: zapcore.DPanicLevel,
			valid:    true,
		},
		{
			name:     "panic level",
			input:    "panic",
			expected: zapcore.PanicLevel,
			valid:    true,
		},
		{
			name:     "fatal level",
			input:    "fatal",
			expected: zapcore.FatalLevel,
			valid:    true,
		},
		{
			name:     "uppercase debug",
			input:    "DEBUG",
			expected: zapcore.DebugLevel,
			valid:    true,
		},
		{
			name:     "mixed case info",
			input:    "Info",
			expected: zapcore.InfoLevel,
			valid:    true,
		},
		{
			name:     "with spaces",
			input:    " debug ",
			expected: zapcore.DebugLevel,
			valid:    true,
		},
		{
			name:     "invalid level",
			input:    "invalid",
			expected: zapcore.InfoLevel,
			valid:    false,
		},
		{
			name:     "empty string",
			input:    "",
			expected: zapcore.InfoLevel,
			valid:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			level, valid := ParseLogLevel(tt.input)
			assert.Equal(t, tt.expected, level)
			assert.Equal(t, tt.valid, valid)
		})
	}
}

// TestLevel tests the Level function.
func TestLevel(t *testing.T) {
	t.Parallel()

	level := Level()
	assert.NotNil(t, level)
}

// TestLogger tests the Logger function.
func TestLogger(t *testing.T) {
	t.Parallel()

	logger := Logger()
	assert.NotNil(t, logger)
}

// TestSetLevel tests the SetLevel function.
func TestSetLevel(t *testing.T) {
	// Don't run in parallel to avoid race conditions with global logger state.
	originalLevel := Level()
	defer SetLevel(originalLevel) // Restore original level

	SetLevel(zapcore.DebugLevel)

	level := Level()
	assert.Equal(t, zapcore.DebugLevel, level)

	SetLevel(zapcore.ErrorLevel)

	level = Level()
	assert.Equal(t, zapcore.ErrorLevel, level)
}

// TestContextLoggingFunctions tests that each helper writes through the context logger.
func TestContextLoggingFunctions(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())

	Debugf(ctx, "Sent %s %s", "GET", "/api/user/verify")
	DebugKV(ctx, "Session verified", "wwuid", "abc")
	Info(ctx, "Requests:")
	Infof(ctx, "  %-7s %s: %d", "GET", "200", 3)
	InfoKV(ctx, "Logged in", "wwuid", "abc")
	WarnKV(ctx, "Failed to collect request metrics", "error", errors.New("boom"))
	ErrorKV(ctx, "Failed to upload image", "uri", "/api/images/upload")

	entries := logs.AllUntimed()
	require.Len(t, entries, 7)

	assert.Equal(t, "Sent GET /api/user/verify", entries[0].Message)
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.Equal(t, map[string]any{"wwuid": "abc"}, entries[1].ContextMap())
	assert.Equal(t, "  GET     200: 3", entries[3].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[4].Level)
	assert.Equal(t, zapcore.WarnLevel, entries[5].Level)
	assert.Equal(t, "boom", entries[5].ContextMap()["error"])
	assert.Equal(t, zapcore.ErrorLevel, entries[6].Level)
	assert.Equal(t, "/api/images/upload", entries[6].ContextMap()["uri"])
}

// TestContextLoggingWithoutAttachedLogger tests that helpers fall back to the global logger.
func TestContextLoggingWithoutAttachedLogger(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	// These should not panic without a logger in the context.
	DebugKV(ctx, "test message", "key", "value")
	Info(ctx, "test message")
	WarnKV(ctx, "test message", "key", "value")
	ErrorKV(ctx, "test message", "key", "value")
}

// TestLoggerInitialization tests that the logger is properly initialized.
func TestLoggerInitialization(t *testing.T) {
	t.Parallel()

	// The logger should be initialized in the init function.
	logger := Logger()
	assert.NotNil(t, logger)

	// The default level should be set.
	level := Level()
	assert.NotNil(t, level)
}

// TestLoggerThreadSafety tests basic thread safety of logger operations.
func TestLoggerThreadSafety(_ *testing.T) {
	// Don't run in parallel to avoid race conditions with global logger state.
	ctx := context.Background()

	// Test concurrent logging operations.
	done := make(chan bool, 10)

	for i := range 10 {
		go func(_ int) {
			Info(ctx, "concurrent message")

			done <- true
		}(i)
	}

	// Wait for all goroutines to complete.
	for range 10 {
		<-done
	}
}

// TestFromContext tests that a logger attached to the context is returned.
func TestFromContext(t *testing.T) {
	t.Parallel()

	attached := New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), attached)

	assert.Same(t, attached, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))
}

// TestWithNameAndKV tests that derived contexts carry a new logger.
func TestWithNameAndKV(t *testing.T) {
	t.Parallel()

	base := New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), base)

	named := WithName(ctx, "api")
	assert.NotSame(t, base, FromContext(named))

	withKV := WithKV(named, "request_id", "42")
	assert.NotSame(t, FromContext(named), FromContext(withKV))

	// Logging through derived contexts must not panic.
	Info(withKV, "derived logger message")
}

// TestWithNameAndKV_Fields tests that name segments and fields reach the written entry.
func TestWithNameAndKV_Fields(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	ctx := ToContext(context.Background(), zap.New(core).Sugar())

	ctx = WithName(ctx, "session")
	ctx = WithKV(ctx, "correlation_id", "42")

	DebugKV(ctx, "Session verified", "wwuid", "abc")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "session", entries[0].LoggerName)
	assert.Equal(t, map[string]any{"correlation_id": "42", "wwuid": "abc"}, entries[0].ContextMap())
}
