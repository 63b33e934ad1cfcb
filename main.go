package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Cedar-Hollow-Club/errwatch-bot/app"
	"github.com/Cedar-Hollow-Club/errwatch-bot/config"
	"github.com/Cedar-Hollow-Club/errwatch-bot/internal/observability"
)

func main() {
	configFile := flag.String("config", "config.yaml", "Path to the configuration file")
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	obs, err := observability.Init(ctx, cfg.Observability)
	if err != nil {
		log.Fatalf("Failed to initialize observability: %v", err)
	}

	application, err := app.NewApp(ctx, cfg, obs)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- application.Run(ctx)
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case <-interrupt:
		obs.Logger.Info("Shutdown signal received")
	case err := <-errCh:
		if err != nil {
			obs.Logger.Error("Application stopped with error", "error", err)
		}
	case <-ctx.Done():
		obs.Logger.Info("Application context canceled")
	}

	cancel()

	if err := application.Close(); err != nil {
		obs.Logger.Error("Error during shutdown", "error", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := obs.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error shutting down observability: %v", err)
	}
}
