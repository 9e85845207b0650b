package config

import (
	"log/slog"
	"os"
	"testing"
)

func TestNewFromEnvDefaults(t *testing.T) {
	// Clear env vars for clean test
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("MCP_TRANSPORT", "")
	t.Setenv("WORKSPACE_ROOT", "")
	t.Setenv("OTEL_ENABLED", "")
	t.Setenv("OTEL_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")

	cfg := NewFromEnv()

	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %s", cfg.LogLevel)
	}
	if cfg.Transport != TransportStdio {
		t.Errorf("expected default transport stdio, got %s", cfg.Transport)
	}
	if cfg.WorkspaceRoot != "" {
		t.Errorf("expected empty workspace root, got %s", cfg.WorkspaceRoot)
	}
	if cfg.OTelEnabled {
		t.Errorf("expected OTel disabled by default")
	}
}

func TestNewFromEnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MCP_TRANSPORT", "http")
	t.Setenv("WORKSPACE_ROOT", "/srv/modules")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("OTEL_ENDPOINT", "localhost:4317")

	cfg := NewFromEnv()

	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.LogLevel)
	}
	if cfg.Transport != TransportHTTP {
		t.Errorf("expected transport http, got %s", cfg.Transport)
	}
	if cfg.WorkspaceRoot != "/srv/modules" {
		t.Errorf("expected workspace root /srv/modules, got %s", cfg.WorkspaceRoot)
	}
	if !cfg.OTelEnabled {
		t.Errorf("expected OTel enabled")
	}
	if cfg.OTelEndpoint != "localhost:4317" {
		t.Errorf("expected OTel endpoint localhost:4317, got %s", cfg.OTelEndpoint)
	}
}

func TestNewFromEnvInvalidValues(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	t.Setenv("MCP_TRANSPORT", "grpc")
	t.Setenv("OTEL_ENABLED", "yes-please")

	cfg := NewFromEnv()

	if cfg.Port != 8080 {
		t.Errorf("expected fallback port 8080, got %d", cfg.Port)
	}
	if cfg.Transport != TransportStdio {
		t.Errorf("expected fallback transport stdio, got %s", cfg.Transport)
	}
	if cfg.OTelEnabled {
		t.Errorf("expected OTel disabled on invalid value")
	}
}

func TestLogWriterByTransport(t *testing.T) {
	stdio := &Config{Transport: TransportStdio}
	if stdio.LogWriter() != os.Stderr {
		t.Errorf("stdio transport must log to stderr")
	}

	httpCfg := &Config{Transport: TransportHTTP}
	if httpCfg.LogWriter() != os.Stdout {
		t.Errorf("http transport must log to stdout")
	}
}

func TestSlogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"unknown": slog.LevelInfo,
	}
	for value, want := range cases {
		cfg := &Config{LogLevel: value}
		if got := cfg.SlogLevel(); got != want {
			t.Errorf("LogLevel %q: expected %v, got %v", value, want, got)
		}
	}
}
