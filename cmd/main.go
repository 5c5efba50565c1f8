package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"meta-ads/internal/adapter/graph"
	mcpadapter "meta-ads/internal/adapter/mcp"
	"meta-ads/internal/adapter/simulator"
	"meta-ads/internal/adapter/usecase"
	"meta-ads/internal/config"
)

// main is the entry point of the meta-ads MCP server. It loads
// configuration, initializes the structured logger, wires the live and
// dry-run campaign clients into the orchestrator, then serves the MCP
// tools on stdio or HTTP. On receiving a termination signal it shuts
// down gracefully.
func main() {
	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	var logger *slog.Logger
	{
		// Initialise structured logger based on configuration. Logs go
		// to stderr because stdout belongs to the stdio transport.
		var handler slog.Handler
		level := cfg.Log.SlogLevel()
		switch cfg.Log.SlogFormat() {
		case "json":
			handler = slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		default:
			handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
		}
		logger = slog.New(handler)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	live := graph.NewClient(cfg.Meta, logger)
	sim := simulator.New()
	planner := usecase.NewCampaignUseCase(live, sim, logger)
	server := mcpadapter.NewServer(planner, logger)

	switch cfg.MCP.Transport {
	case "stdio", "":
		if err := server.RunStdio(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Error("mcp server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("mcp server stopped")
	case "http":
		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.HTTP.Port),
			Handler: server.Router(),
		}

		go func() {
			logger.Info("mcp server listening", slog.Int("port", int(cfg.HTTP.Port)))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Error("server error", slog.Any("error", err))
			}
		}()

		<-ctx.Done()

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("server shutdown error", slog.Any("error", err))
		} else {
			logger.Info("server gracefully stopped")
		}
	default:
		logger.Error("unsupported MCP transport", slog.String("transport", cfg.MCP.Transport))
		os.Exit(1)
	}
}
