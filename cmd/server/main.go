package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/config"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/mcp"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/telemetry"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/terraform"
	"github.com/somospragma/cloudops-ref-repo-mcp-iac-rules/pkg/tools"
)

func main() {
	// Load .env before reading the environment; missing file is fine.
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", "error", err)
	}

	cfg := config.NewFromEnv()
	cfg.SetupLogging()

	slog.Info("starting iac-rules-mcp",
		"transport", cfg.Transport,
		"port", cfg.Port,
		"workspaceRoot", cfg.WorkspaceRoot,
		"otelEnabled", cfg.OTelEnabled,
	)

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Initialize OpenTelemetry (traces, metrics, logs)
	shutdown, err := telemetry.InitTelemetry(ctx, cfg.OTelEnabled, cfg.OTelEndpoint)
	if err != nil {
		slog.Error("failed to initialize telemetry", "error", err)
		os.Exit(1)
	}
	defer shutdown()

	if cfg.OTelEnabled {
		telemetry.SetupOTelLogging(cfg.SlogLevel(), cfg.LogWriter())
	}

	registry := tools.NewRegistry()
	base := tools.BaseTool{Cfg: cfg, FS: terraform.DirFS{}}

	// Validation tools
	registry.Register(&tools.ValidateStructureTool{BaseTool: base})
	registry.Register(&tools.ValidateNamingTool{BaseTool: base})
	registry.Register(&tools.ValidateVariablesTool{BaseTool: base})
	registry.Register(&tools.ValidateTypingTool{BaseTool: base})
	registry.Register(&tools.ValidateForEachTool{BaseTool: base})
	registry.Register(&tools.ValidateSecurityTool{BaseTool: base})
	registry.Register(&tools.ValidateDocumentationTool{BaseTool: base})
	registry.Register(&tools.FullReportTool{BaseTool: base})

	// Generation and catalog tools
	registry.Register(&tools.GenerateReadmeTool{BaseTool: base})
	registry.Register(&tools.GenerateSampleReadmeTool{BaseTool: base})
	registry.Register(&tools.GenerateChangelogTool{BaseTool: base})
	registry.Register(&tools.GenerateDocsConfigTool{BaseTool: base})
	registry.Register(&tools.ListRulesTool{BaseTool: base})

	switch cfg.Transport {
	case config.TransportHTTP:
		server := mcp.NewServer(registry, func() bool { return true }, cfg.Port)
		if err := server.ListenAndServe(ctx); err != nil {
			slog.Error("MCP server stopped", "error", err)
		}
	default:
		server := mcp.NewStdioServer(registry, os.Stdin, os.Stdout)
		if err := server.Run(ctx); err != nil {
			slog.Error("stdio MCP server stopped", "error", err)
		}
	}

	slog.Info("iac-rules-mcp stopped")
}
