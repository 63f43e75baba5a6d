package logging

import (
	"log/slog"
	"testing"

	"github.com/dastas/libris-core/internal/infrastructure/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"bogus", slog.LevelInfo},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.want {
			t.Errorf("parseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNew(t *testing.T) {
	logger := New(config.LoggingConfig{Level: "debug", Format: "text", Output: "stderr"}, "1.2.3")
	if logger == nil || logger.Logger == nil {
		t.Fatal("New() should return a usable logger")
	}
	if !logger.Enabled(nil, slog.LevelDebug) {
		t.Error("debug level should be enabled")
	}

	quiet := New(config.LoggingConfig{Level: "error", Format: "json"}, "1.2.3")
	if quiet.Enabled(nil, slog.LevelInfo) {
		t.Error("info should be disabled at error level")
	}
}

func TestWith(t *testing.T) {
	logger := Default()
	child := logger.With("component", "test")
	if child == nil || child.Logger == nil {
		t.Fatal("With() should return a usable logger")
	}
	if child == logger {
		t.Error("With() should return a new logger")
	}
}
