package main

import (
	"context"
	"log/slog"
	"testing"
)

func TestDetectWidthFromColumns(t *testing.T) {
	// Test binaries run without a TTY on stdout, so detection falls
	// through to the COLUMNS variable.
	tests := []struct {
		columns string
		want    int
	}{
		{"100", 100},
		{"80", 80},
		{"0", 0},
		{"-5", 0},
		{"wide", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run("COLUMNS="+tt.columns, func(t *testing.T) {
			t.Setenv("COLUMNS", tt.columns)
			if got := detectWidth(); got != tt.want {
				t.Errorf("detectWidth() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNewLoggerQuietByDefault(t *testing.T) {
	logger := newLogger(false)
	if logger == nil {
		t.Fatal("newLogger(false) returned nil")
	}
	// Must not panic writing to the discard handler.
	logger.Info("probe")
}

func TestNewLoggerVerbose(t *testing.T) {
	logger := newLogger(true)
	if !logger.Enabled(context.Background(), slog.LevelDebug) {
		t.Error("verbose logger should enable debug level")
	}
}
