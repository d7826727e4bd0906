package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run(level, func(t *testing.T) {
			log, err := New(level)
			if err != nil {
				t.Fatalf("New(%q) failed: %v", level, err)
			}
			if log == nil {
				t.Fatal("expected a logger")
			}
		})
	}
}

func TestNewUnknownLevelDefaultsToInfo(t *testing.T) {
	log, err := New("verbose")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if log == nil {
		t.Fatal("expected a logger despite the unknown level")
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected zapcore.Level
	}{
		{input: "debug", expected: zapcore.DebugLevel},
		{input: "info", expected: zapcore.InfoLevel},
		{input: "warn", expected: zapcore.WarnLevel},
		{input: "error", expected: zapcore.ErrorLevel},
		{input: "", expected: zapcore.InfoLevel},
		{input: "nonsense", expected: zapcore.InfoLevel},
	}

	for _, tt := range tests {
		if got := parseLevel(tt.input); got != tt.expected {
			t.Errorf("parseLevel(%q) = %v, expected %v", tt.input, got, tt.expected)
		}
	}
}

func TestWith(t *testing.T) {
	log, err := New("error")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	child := log.With("component", "test")
	if child == nil || child == log {
		t.Error("expected With to return a distinct child logger")
	}
}
