package jejak

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// Light smoke tests ensuring exported logger APIs do not panic and remain
// callable; richer assertions live on the zap adapter where output is
// observable.
func TestSimpleLoggerLevels(t *testing.T) {
	logger := NewSimpleLogger()

	logger.Debug("debug message", "key", "value")
	logger.Info("info message")
	logger.Warn("warn message", "count", 2)
	logger.Error("error message")
}

func TestSimpleLoggerReusability(t *testing.T) {
	logger := NewSimpleLogger()
	for i := 0; i < 5; i++ {
		logger.Info("loop message", "i", i)
	}
}

func TestZapLoggerAdapter(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := NewZapLogger(zap.New(core))

	logger.Debug("Sending request", "method", "PUT")
	logger.Warn("Transport fault", "error", "boom")

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("Expected 2 log entries, got %d", len(entries))
	}
	if entries[0].Message != "Sending request" {
		t.Errorf("Expected message 'Sending request', got %q", entries[0].Message)
	}
	if entries[0].Level != zapcore.DebugLevel {
		t.Errorf("Expected debug level, got %v", entries[0].Level)
	}
	fields := entries[0].ContextMap()
	if fields["method"] != "PUT" {
		t.Errorf("Expected method=PUT field, got %v", fields)
	}
	if entries[1].Level != zapcore.WarnLevel {
		t.Errorf("Expected warn level, got %v", entries[1].Level)
	}
}
