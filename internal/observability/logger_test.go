package observability

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestNewRequestContext(t *testing.T) {
	a := NewRequestContext(slog.Default(), "extract_event_info")
	b := NewRequestContext(slog.Default(), "extract_event_info")

	if a.RequestID == "" {
		t.Fatal("RequestID should not be empty")
	}
	if a.RequestID == b.RequestID {
		t.Error("request IDs should be unique per context")
	}
	if a.Operation != "extract_event_info" {
		t.Errorf("Operation = %q", a.Operation)
	}
	if a.DurationMs() < 0 {
		t.Errorf("DurationMs() = %d, want >= 0", a.DurationMs())
	}

	// nil logger falls back to the default logger
	c := NewRequestContext(nil, "op")
	if c.Logger == nil {
		t.Error("Logger should fall back to slog.Default()")
	}
}

func TestRequestContextLogFields(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	reqCtx := NewRequestContext(logger, "extract_event_info")
	reqCtx.Info("event info extracted", slog.Int(LogFieldTextLen, 42))
	reqCtx.Error("completion request failed", errors.New("connection refused"))

	out := buf.String()
	for _, want := range []string{
		reqCtx.RequestID,
		LogFieldOperation + "=extract_event_info",
		LogFieldTextLen + "=42",
		"connection refused",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
