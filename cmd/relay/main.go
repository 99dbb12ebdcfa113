// Relay server: durable agent session orchestration behind an HTTP API,
// with an optional Slack front-end.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/relay-agents/relay/pkg/api"
	"github.com/relay-agents/relay/pkg/cleanup"
	"github.com/relay-agents/relay/pkg/config"
	"github.com/relay-agents/relay/pkg/database"
	"github.com/relay-agents/relay/pkg/llm"
	"github.com/relay-agents/relay/pkg/run"
	"github.com/relay-agents/relay/pkg/services"
	"github.com/relay-agents/relay/pkg/slack"
	"github.com/relay-agents/relay/pkg/version"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment", "error", err)
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("Starting relay",
		"version", version.Full(),
		"http_port", cfg.HTTPPort,
		"llm_provider", cfg.LLMProvider)

	ctx := context.Background()

	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	sessionService := services.NewSessionService(dbClient.Client)
	eventService := services.NewEventService(dbClient.Client)
	threadService := services.NewThreadService(dbClient.Client)
	mountService := services.NewMountService(dbClient.Client)

	// Sessions whose worker died before this restart get a terminal
	// state now, before readers start long-polling them.
	if err := run.RecoverOrphans(ctx, sessionService, eventService, cfg.StaleSessionMax); err != nil {
		slog.Error("Failed to recover orphaned sessions", "error", err)
		// Non-fatal: the reader-side stale probe covers stragglers.
	}

	var llmClient llm.Client
	if cfg.LLMConfigured() {
		if llmClient, err = llm.NewFromConfig(cfg); err != nil {
			slog.Error("Failed to initialize model client", "error", err)
			os.Exit(1)
		}
		slog.Info("Model client initialized", "provider", cfg.LLMProvider, "model", cfg.LLMModel)
	} else {
		slog.Warn("No model provider configured, chat submissions will be refused")
	}

	runner := run.NewRunner(cfg, llmClient, sessionService, eventService, mountService)
	reader := run.NewReader(cfg, sessionService, eventService)

	sweeper := cleanup.NewService(cleanup.Config{
		Retention: cfg.SessionRetention,
		Interval:  cfg.CleanupInterval,
	}, sessionService)
	sweeper.Start(ctx)
	defer sweeper.Stop()

	httpServer := api.NewServer(cfg, dbClient, runner, reader, sessionService, eventService)

	if slackService := slack.NewService(cfg.SlackBotToken, cfg.SlackAPIURL, threadService, sessionService, runner); slackService != nil {
		httpServer.Echo().POST("/slack/events", slackService.EventsHandler())
		slog.Info("Slack front-end enabled")
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", ":"+cfg.HTTPPort)
		if err := httpServer.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// Stop the runner first so active runs reach a terminal state; runs
	// that exceed the budget are orphan-recovered on the next start.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.GracefulShutdownTimeout)
	defer cancel()

	runnerDone := make(chan struct{})
	go func() {
		runner.Stop()
		close(runnerDone)
	}()
	select {
	case <-runnerDone:
		slog.Info("Runner stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Runner shutdown timeout exceeded, incomplete sessions will be orphan-recovered")
	}

	httpCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
