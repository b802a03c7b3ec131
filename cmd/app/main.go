package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"floodaware.app/internal/app"
	"floodaware.app/pkg/logger"
)

func main() {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	log := logger.NewWithLevel(logger.ParseLevel(os.Getenv("LOG_LEVEL"))).WithField("service", "flood-engine")
	log.SetDefault()

	application, err := app.NewApplication(log.Logger)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}
	slog.Info("Server configuration", "port", application.Config().Server.Port, "store", application.Config().Store.Type)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Start blocks until the signal context is cancelled and the server drains
	runErr := application.Start(ctx)
	if err := application.Shutdown(); err != nil {
		slog.Error("Error during graceful shutdown", "error", err)
	}
	if runErr != nil {
		slog.Error("Application stopped with error", "error", runErr)
		os.Exit(1)
	}
}
