package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		enabled bool
	}{
		{
			name: "text file",
			config: Config{
				FilePath:   filepath.Join(t.TempDir(), "test.log"),
				Level:      slog.LevelInfo,
				Format:     FormatText,
				MaxSizeMB:  10,
				MaxBackups: 2,
			},
			enabled: true,
		},
		{
			name:    "empty filepath creates noop logger",
			config:  Config{Level: slog.LevelInfo, Format: FormatText},
			enabled: false,
		},
		{
			name: "json format with default rotation",
			config: Config{
				FilePath: filepath.Join(t.TempDir(), "nested", "dir", "test.log"),
				Level:    slog.LevelDebug,
				Format:   FormatJSON,
			},
			enabled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Init(tt.config); err != nil {
				t.Fatalf("Init() error = %v", err)
			}
			defer Shutdown()

			if IsEnabled() != tt.enabled {
				t.Errorf("IsEnabled() = %v, want %v", IsEnabled(), tt.enabled)
			}

			logger := Get()
			logger.Info("test message")
			logger.Debug("test debug")
			logger.Warn("test warning")
			logger.Error("test error")
		})
	}
}

func TestInit_WritesToFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "enhancer.log")
	if err := Init(Config{FilePath: logFile, Level: slog.LevelInfo, Format: FormatJSON}); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}

	Info("prompt enhanced", "provider", "gemini", "chars", 42)
	if err := Shutdown(); err != nil {
		t.Fatalf("Shutdown() failed: %v", err)
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, `"msg":"prompt enhanced"`) {
		t.Errorf("log file missing message, got: %s", content)
	}
	if !strings.Contains(content, `"provider":"gemini"`) {
		t.Errorf("log file missing attribute, got: %s", content)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"invalid", slog.LevelInfo}, // defaults to info
		{"", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseLevel(tt.input); got != tt.expected {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input    string
		expected LogFormat
	}{
		{"text", FormatText},
		{"json", FormatJSON},
		{"invalid", FormatText},
		{"", FormatText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ParseFormat(tt.input); got != tt.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestLoggerWith(t *testing.T) {
	if err := Init(Config{FilePath: ""}); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	if Get().With("component", "test").IsEnabled() {
		t.Error("With() on noop logger should stay disabled")
	}

	logFile := filepath.Join(t.TempDir(), "test.log")
	if err := Init(Config{FilePath: logFile, Level: slog.LevelInfo}); err != nil {
		t.Fatalf("Init() failed: %v", err)
	}
	defer Shutdown()

	logger := Get().With("component", "test", "version", 1)
	if !logger.IsEnabled() {
		t.Error("With() on file logger should be enabled")
	}
	logger.Info("test message with context")
}
