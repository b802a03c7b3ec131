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
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found or error loading it")
	}

	log := logger.NewWithLevel(logger.ParseLevel(os.Getenv("LOG_LEVEL"))).WithField("service", "alert-backend")
	log.SetDefault()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, err := app.NewBackendApplication(ctx, log.Logger)
	if err != nil {
		slog.Error("Failed to initialize alert backend", "error", err)
		os.Exit(1)
	}

	runErr := backend.Start(ctx)
	backend.Shutdown()
	if runErr != nil {
		slog.Error("Alert backend stopped with error", "error", runErr)
		os.Exit(1)
	}
}
