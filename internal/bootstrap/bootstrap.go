package bootstrap

import (
	ingestionDomain "github.com/quantra/financial-data-service/internal/domain/ingestion"
	"github.com/quantra/financial-data-service/internal/scheduler"
	"github.com/quantra/financial-data-service/pkg/config"
	"github.com/quantra/financial-data-service/pkg/logger"
	"github.com/quantra/financial-data-service/pkg/postgresql"
)

// Bootstrap wires the financial data service together.
type Bootstrap struct {
	Usecase    Usecase
	Logger     logger.Interface
	REST       REST
	Repository Repository
	Scheduler  *scheduler.Scheduler

	Postgres postgresql.PostgreSQLClient
	Provider ingestionDomain.Provider
	Config   *config.Config
}

// BootstrapConfig is the config for the bootstrap.
type BootstrapConfig struct {
	Postgres postgresql.PostgreSQLClient
	Provider ingestionDomain.Provider
	Logger   logger.Interface
	Config   *config.Config
}

// Init initializes the bootstrap.
func (b *Bootstrap) Init(config BootstrapConfig) Bootstrap {
	b.Postgres = config.Postgres
	b.Provider = config.Provider
	b.Logger = config.Logger
	b.Config = config.Config

	b.registerRepository()
	b.registerUsecase()
	b.registerREST()
	b.registerScheduler()

	return *b
}

// registerScheduler registers the ingestion scheduler.
func (b *Bootstrap) registerScheduler() {
	b.Scheduler = scheduler.NewScheduler(
		b.Usecase.IngestionUsecase,
		b.Logger,
		b.Config.Scheduler.PollInterval,
		b.Config.Scheduler.TickInterval,
	)
}
