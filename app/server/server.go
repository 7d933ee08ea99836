package server

import (
	"context"
	"fmt"
	"net/http"

	"github.com/quantra/financial-data-service/internal/bootstrap"
	"github.com/quantra/financial-data-service/internal/provider/alphavantage"
	"github.com/quantra/financial-data-service/internal/scheduler"
	"github.com/quantra/financial-data-service/pkg/config"
	"github.com/quantra/financial-data-service/pkg/errors"
	"github.com/quantra/financial-data-service/pkg/logger"
	"github.com/quantra/financial-data-service/pkg/migration"
	"github.com/quantra/financial-data-service/pkg/postgresql"
)

// Server owns the two long-lived units of the service: the HTTP server
// answering read requests and the scheduler driving ingestion.
type Server struct {
	HTTP      *http.Server
	Scheduler *scheduler.Scheduler
	Logger    logger.Interface

	db        postgresql.PostgreSQLClient
	bootstrap bootstrap.Bootstrap
}

// NewServer builds a fully wired server from configuration. A failed
// storage connection or schema preparation is unrecoverable here.
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	log, err := logger.NewLogger(logger.WithLoggingLevel(logger.Level(cfg.App.LogLevel)))
	if err != nil {
		return nil, err
	}

	db, err := postgresql.NewClient(ctx, cfg.Postgres)
	if err != nil {
		return nil, errors.NewTracer("failed to connect to storage").WithCode(errors.DatabaseConnectError).Wrap(err)
	}

	if err := runMigrations(ctx, db); err != nil {
		db.Close()
		return nil, errors.NewTracer("failed to prepare storage schema").WithCode(errors.DatabaseInitError).Wrap(err)
	}

	provider, err := alphavantage.NewClient(cfg.AlphaVantage.APIKey,
		alphavantage.WithBaseURL(cfg.AlphaVantage.BaseURL),
		alphavantage.WithTimeout(cfg.AlphaVantage.FetchTimeout),
		alphavantage.WithLookback(cfg.Scheduler.Lookback),
	)
	if err != nil {
		db.Close()
		return nil, err
	}

	b := bootstrap.Bootstrap{}
	b.Init(bootstrap.BootstrapConfig{
		Postgres: db,
		Provider: provider,
		Logger:   log,
		Config:   cfg,
	})

	return &Server{
		HTTP: &http.Server{
			Addr:    fmt.Sprintf(":%d", cfg.App.Port),
			Handler: b.REST.Router,
		},
		Scheduler: b.Scheduler,
		Logger:    log,
		db:        db,
		bootstrap: b,
	}, nil
}

// Close releases the storage connection.
func (s *Server) Close() {
	s.db.Close()
}

func runMigrations(ctx context.Context, db postgresql.PostgreSQLClient) error {
	runner := migration.NewRunner(ctx, db, migration.Config{
		MigrationDir: "migrations",
	})
	if err := runner.EnsureMigrationTable(); err != nil {
		return err
	}
	return runner.MigrateUp(0)
}
