package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/courseloop/growthplane/config"
	"github.com/courseloop/growthplane/internal/app"
	"github.com/courseloop/growthplane/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewLogger().WithField("error", err.Error()).Fatal("Failed to load configuration")
	}

	log := logger.NewLoggerWithLevel(cfg.LogLevel)

	application := app.NewApp(cfg, log)
	if err := application.Initialize(); err != nil {
		log.WithField("error", err.Error()).Fatal("Failed to initialize application")
	}

	// Handle graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Start()
	}()

	select {
	case sig := <-stop:
		log.WithField("signal", sig.String()).Info("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			log.WithField("error", err.Error()).Error("Server stopped unexpectedly")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := application.Shutdown(ctx); err != nil {
		log.WithField("error", err.Error()).Error("Shutdown error")
		os.Exit(1)
	}

	log.Info("Server stopped")
}
