package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/chu3/chu3-discord-bot-go/internal/app"
	"github.com/chu3/chu3-discord-bot-go/internal/config"
	"github.com/chu3/chu3-discord-bot-go/internal/constants"
	"github.com/chu3/chu3-discord-bot-go/internal/util"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("CHU³ Discord bot starting...",
		zap.String("version", constants.Version),
		zap.String("log_level", cfg.Logging.Level),
	)

	container, err := app.Build(cfg, logger)
	if err != nil {
		logger.Error("Failed to assemble application services", zap.Error(err))
		os.Exit(1)
	}

	// Create context with cancellation for runtime lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Setup signal handling
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Start bot in goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := container.Bot.Start(ctx); err != nil {
			errCh <- err
		}
	}()

	logger.Info("Bot started, waiting for signals...")

	// Wait for termination signal or error
	select {
	case sig := <-sigCh:
		logger.Info("Received shutdown signal", zap.String("signal", sig.String()))
	case err := <-errCh:
		logger.Error("Bot error", zap.Error(err))
	}

	// Graceful shutdown
	logger.Info("Shutting down gracefully...")
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := container.Bot.Shutdown(shutdownCtx); err != nil {
		logger.Error("Error during shutdown", zap.Error(err))
	}

	logger.Info("Shutdown complete")
}
