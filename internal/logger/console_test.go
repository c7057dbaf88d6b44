package logger

import (
	"bytes"
	"strings"
	"testing"
)

// TestLogLevelFiltering verifies messages below the configured level are
// suppressed.
func TestLogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "warn")

	cl.LogDebug("debug message")
	cl.LogInfo("info message")
	cl.LogWarn("warn message")
	cl.LogError("error message")

	out := buf.String()
	if strings.Contains(out, "debug message") {
		t.Error("debug message should be filtered at warn level")
	}
	if strings.Contains(out, "info message") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "warn message") {
		t.Error("warn message missing")
	}
	if !strings.Contains(out, "error message") {
		t.Error("error message missing")
	}
}

// TestLogFormat verifies the "[HH:MM:SS] [LEVEL] message" line shape.
func TestLogFormat(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "info")

	cl.LogInfo("probing %s", "/lib/ld-musl-x86_64.so.1")

	out := buf.String()
	if !strings.Contains(out, "[INFO] probing /lib/ld-musl-x86_64.so.1") {
		t.Errorf("unexpected log line: %q", out)
	}
	if !strings.HasPrefix(out, "[") {
		t.Errorf("log line missing timestamp prefix: %q", out)
	}
	if !strings.HasSuffix(out, "\n") {
		t.Errorf("log line missing trailing newline: %q", out)
	}
}

// TestInvalidLevelDefaultsToInfo verifies the level fallback.
func TestInvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "loud")

	cl.LogDebug("hidden")
	cl.LogInfo("shown")

	if strings.Contains(buf.String(), "hidden") {
		t.Error("debug should be filtered when level defaults to info")
	}
	if !strings.Contains(buf.String(), "shown") {
		t.Error("info message missing at default level")
	}
}

// TestNilWriter verifies a nil writer discards without panicking.
func TestNilWriter(t *testing.T) {
	cl := NewConsoleLogger(nil, "trace")
	cl.LogError("goes nowhere")
}

// TestNoColorForBuffer verifies non-file writers never get ANSI codes.
func TestNoColorForBuffer(t *testing.T) {
	var buf bytes.Buffer
	cl := NewConsoleLogger(&buf, "info")

	cl.LogError("plain")

	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("buffer output should be colorless: %q", buf.String())
	}
}
