package logging

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	logger, err := New("warn", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if logger == nil {
		t.Fatalf("expected logger instance")
	}
	if logger.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("info should be disabled at warn level")
	}
	_ = logger.Sync()
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		level string
		debug bool
		want  zapcore.Level
	}{
		{level: "debug", want: zapcore.DebugLevel},
		{level: "info", want: zapcore.InfoLevel},
		{level: "warn", want: zapcore.WarnLevel},
		{level: "WARNING", want: zapcore.WarnLevel},
		{level: "error", want: zapcore.ErrorLevel},
		{level: "verbose", want: zapcore.InfoLevel},
		{level: "", want: zapcore.InfoLevel},
		{level: "error", debug: true, want: zapcore.DebugLevel},
	}

	for _, tc := range tests {
		if got := ParseLevel(tc.level, tc.debug); got != tc.want {
			t.Fatalf("ParseLevel(%q, %v) = %v, want %v", tc.level, tc.debug, got, tc.want)
		}
	}
}
