package util

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNewLoggerLevels(t *testing.T) {
	tests := []struct {
		level       string
		debugOn     bool
		infoOn      bool
		description string
	}{
		{"debug", true, true, "debug enables everything"},
		{"info", false, true, "info filters debug"},
		{"error", false, false, "error filters info"},
		{"bogus", false, true, "unknown level falls back to info"},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			logger, err := NewLogger(tt.level, "")
			if err != nil {
				t.Fatalf("NewLogger: %v", err)
			}
			if got := logger.Core().Enabled(zapcore.DebugLevel); got != tt.debugOn {
				t.Errorf("%s: debug enabled = %v", tt.description, got)
			}
			if got := logger.Core().Enabled(zapcore.InfoLevel); got != tt.infoOn {
				t.Errorf("%s: info enabled = %v", tt.description, got)
			}
		})
	}
}

func TestNewLoggerWritesJSONFile(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "logs", "bot.log")

	logger, err := NewLogger("info", logFile)
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	logger.Info("startup complete")
	logger.Sync()

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("log file not created: %v", err)
	}
	line := string(data)
	if !strings.Contains(line, `"msg":"startup complete"`) {
		t.Errorf("file sink is not JSON encoded: %q", line)
	}
}
