package logger

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	l, err := New("debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.Core().Enabled(zapcore.DebugLevel) {
		t.Fatalf("expected debug level to be enabled")
	}

	fallback := Must(New("verbose"))
	if fallback.Core().Enabled(zapcore.DebugLevel) || !fallback.Core().Enabled(zapcore.InfoLevel) {
		t.Fatalf("expected unknown level to fall back to info")
	}
}

func TestNamed(t *testing.T) {
	t.Run("nil base", func(t *testing.T) {
		if Named(nil, "router") == nil {
			t.Fatalf("expected a no-op logger")
		}
	})

	t.Run("component field", func(t *testing.T) {
		core, logs := observer.New(zapcore.InfoLevel)
		Named(zap.New(core), "store").Info("saved")

		entries := logs.All()
		if len(entries) != 1 {
			t.Fatalf("expected one entry, got %d", len(entries))
		}
		if entries[0].LoggerName != "store" || entries[0].ContextMap()["component"] != "store" {
			t.Fatalf("unexpected entry: %+v", entries[0])
		}
	})
}
