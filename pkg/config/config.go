package config

import (
	"io"
	"log/slog"
	"os"
	"strconv"
)

// Transport names for MCP_TRANSPORT.
const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds server configuration read from environment variables.
type Config struct {
	Port          int
	LogLevel      string
	Transport     string
	WorkspaceRoot string
	OTelEnabled   bool
	OTelEndpoint  string
}

// NewFromEnv creates a Config by reading environment variables with defaults.
func NewFromEnv() *Config {
	port := 8080
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			port = p
		}
	}

	logLevel := "info"
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		logLevel = v
	}

	transport := TransportStdio
	switch v := os.Getenv("MCP_TRANSPORT"); v {
	case "", TransportStdio:
	case TransportHTTP:
		transport = TransportHTTP
	default:
		slog.Warn("invalid MCP_TRANSPORT value, defaulting to stdio", "value", v)
	}

	otelEnabled := false
	if v := os.Getenv("OTEL_ENABLED"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			slog.Warn("invalid OTEL_ENABLED value, defaulting to false")
		} else {
			otelEnabled = parsed
		}
	}

	otelEndpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if otelEndpoint == "" {
		otelEndpoint = os.Getenv("OTEL_ENDPOINT")
	}

	return &Config{
		Port:          port,
		LogLevel:      logLevel,
		Transport:     transport,
		WorkspaceRoot: os.Getenv("WORKSPACE_ROOT"),
		OTelEnabled:   otelEnabled,
		OTelEndpoint:  otelEndpoint,
	}
}

// LogWriter returns where slog output goes. The stdio transport owns stdout
// for JSON-RPC framing, so its logs move to stderr.
func (c *Config) LogWriter() io.Writer {
	if c.Transport == TransportStdio {
		return os.Stderr
	}
	return os.Stdout
}

// SetupLogging configures slog with a JSON handler at the configured log level.
func (c *Config) SetupLogging() {
	handler := slog.NewJSONHandler(c.LogWriter(), &slog.HandlerOptions{Level: c.SlogLevel()})
	slog.SetDefault(slog.New(handler))
}

// SlogLevel returns the configured slog.Level for use with OTel log bridge setup.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
