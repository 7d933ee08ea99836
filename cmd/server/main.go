package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quantra/financial-data-service/app/server"
	"github.com/quantra/financial-data-service/pkg/config"
	"github.com/quantra/financial-data-service/pkg/logger"
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid config: %v", err)
	}

	srv, err := server.NewServer(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	// Scheduler unit
	stop := make(chan struct{}, 1)
	schedulerErr := make(chan error, 1)
	go func() {
		schedulerErr <- srv.Scheduler.Run(ctx, stop)
	}()

	// Request-serving unit
	httpErr := make(chan error, 1)
	go func() {
		httpErr <- srv.HTTP.ListenAndServe()
	}()

	srv.Logger.Info("financial data service started",
		logger.NewField("app", cfg.App.Name),
		logger.NewField("environment", cfg.App.Environment),
		logger.NewField("addr", srv.HTTP.Addr),
	)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	exitCode := 0
	var httpDone, schedulerDone bool

	select {
	case <-quit:
		srv.Logger.Info("termination signal received, shutting down")
	case err := <-httpErr:
		httpDone = true
		if err != nil && err != http.ErrServerClosed {
			srv.Logger.Error(err)
			exitCode = 1
		}
	case err := <-schedulerErr:
		schedulerDone = true
		if err != nil {
			srv.Logger.Error(err)
			exitCode = 1
		}
	}

	// Stop accepting requests first, then signal the scheduler and
	// join both units before exiting.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.HTTP.Shutdown(shutdownCtx); err != nil {
		srv.Logger.Error(err)
	}

	stop <- struct{}{}

	if !httpDone {
		if err := <-httpErr; err != nil && err != http.ErrServerClosed {
			srv.Logger.Error(err)
			exitCode = 1
		}
	}
	if !schedulerDone {
		if err := <-schedulerErr; err != nil {
			srv.Logger.Error(err)
			exitCode = 1
		}
	}

	srv.Logger.Info("financial data service stopped")
	srv.Logger.Sync()
	srv.Close()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}
