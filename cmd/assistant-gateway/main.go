// Assistant gateway server — exposes the chat HTTP API, runs the provider
// conversation loop, and dispatches tool calls to the backend proxy.
package main

import (
	"context"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/quantshow/assistant-gateway/pkg/api"
	"github.com/quantshow/assistant-gateway/pkg/config"
	"github.com/quantshow/assistant-gateway/pkg/llm"
	"github.com/quantshow/assistant-gateway/pkg/orchestrator"
	"github.com/quantshow/assistant-gateway/pkg/tools"
	"github.com/quantshow/assistant-gateway/pkg/version"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func main() {
	configFile := flag.String("config-file",
		getEnv("CONFIG_FILE", "./config.yaml"),
		"Path to configuration file")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"error", err)
	}

	httpPort := getEnv("HTTP_PORT", "8080")

	slog.Info("Starting assistant gateway",
		"version", version.Full(),
		"http_port", httpPort,
		"config_file", *configFile)

	// 1. Configuration
	cfg, err := config.Initialize(*configFile)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}
	slog.Info("Configuration loaded",
		"model", cfg.Provider.Model,
		"backend", cfg.Backend.BaseURL,
		"max_iterations", cfg.Turn.MaxIterations)

	// 2. Provider client and tool dispatcher
	provider := llm.NewClient(cfg.Provider)
	dispatcher := tools.NewDispatcher(cfg.Backend)
	catalog := tools.Catalog()
	slog.Info("Tool catalog loaded", "tools", len(catalog))

	// 3. Orchestrator
	orch := orchestrator.New(provider, dispatcher, catalog, orchestrator.Options{
		MaxIterations: cfg.Turn.MaxIterations,
		LLMTimeout:    cfg.Provider.CallTimeout,
		ToolTimeout:   cfg.Backend.CallTimeout,
	})

	// 4. HTTP server (non-blocking)
	httpServer := api.NewServer(cfg, orch, catalog)

	errCh := make(chan error, 1)
	go func() {
		addr := ":" + httpPort
		slog.Info("HTTP server listening", "addr", addr)
		if err := httpServer.Start(addr); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	// 5. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 6. Graceful shutdown — in-flight turns get a grace period
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
