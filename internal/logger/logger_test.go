package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestZapLevel(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected zapcore.Level
	}{
		{DebugLevel, zapcore.DebugLevel},
		{InfoLevel, zapcore.InfoLevel},
		{WarnLevel, zapcore.WarnLevel},
		{ErrorLevel, zapcore.ErrorLevel},
		{"", zapcore.WarnLevel},
		{"loud", zapcore.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(string(tt.level), func(t *testing.T) {
			if got := zapLevel(tt.level); got != tt.expected {
				t.Errorf("zapLevel(%q) = %v, want %v", tt.level, got, tt.expected)
			}
		})
	}
}

func TestConsoleOutputRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(Config{Level: WarnLevel}, &buf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.Info("hidden")
	log.Warn("duplicate TrackID")
	_ = log.Sync()

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("Info message should be filtered at warn level: %s", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "duplicate TrackID") {
		t.Errorf("Expected warn line, got: %s", out)
	}
}

func TestFileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "rbnotes.log")
	log, err := New(Config{Level: DebugLevel, OutputPath: path, MaxSize: 1}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	log.Debug("loaded library")
	_ = log.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Log file not written: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"loaded library"`) {
		t.Errorf("Expected JSON line in log file, got: %s", data)
	}
}

func TestNoOutputsIsNop(t *testing.T) {
	log, err := New(Config{}, nil)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if log.Core().Enabled(zapcore.ErrorLevel) {
		t.Error("Logger without outputs should be a no-op")
	}
	if OrNop(nil) == nil {
		t.Error("OrNop(nil) returned nil")
	}
}
