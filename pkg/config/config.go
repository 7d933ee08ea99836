package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/quantra/financial-data-service/pkg/errors"
	"github.com/quantra/financial-data-service/pkg/postgresql"
)

// Config represents the application configuration.
type Config struct {
	App          AppConfig          `envPrefix:"APP_"`
	Postgres     postgresql.Config  `envPrefix:"POSTGRES_"`
	AlphaVantage AlphaVantageConfig `envPrefix:"ALPHA_VANTAGE_"`
	Scheduler    SchedulerConfig    `envPrefix:"SCHEDULER_"`
}

// AppConfig represents the application configuration.
type AppConfig struct {
	Name        string `env:"NAME" envDefault:"financial-data-service"`
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	Port        int    `env:"PORT" envDefault:"8080"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
}

// AlphaVantageConfig represents the market data provider configuration.
type AlphaVantageConfig struct {
	APIKey       string        `env:"API_KEY"`
	BaseURL      string        `env:"BASE_URL" envDefault:"https://www.alphavantage.co"`
	Symbols      []string      `env:"SYMBOLS" envSeparator:"," envDefault:"IBM,AAPL"`
	FetchTimeout time.Duration `env:"FETCH_TIMEOUT" envDefault:"30s"`
}

// SchedulerConfig represents the ingestion scheduler configuration.
type SchedulerConfig struct {
	PollInterval time.Duration `env:"POLL_INTERVAL" envDefault:"5s"`
	TickInterval time.Duration `env:"TICK_INTERVAL" envDefault:"24h"`
	Lookback     time.Duration `env:"LOOKBACK" envDefault:"336h"`
}

// Load loads the configuration from the environment.
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}

// Validate checks values env parsing alone cannot enforce.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.AlphaVantage.APIKey) == "" {
		return errors.NewTracer("alpha vantage API key must not be empty").WithCode(errors.ValidationError)
	}
	if len(c.AlphaVantage.Symbols) == 0 {
		return errors.NewTracer("at least one symbol must be configured").WithCode(errors.ValidationError)
	}
	if c.Scheduler.TickInterval <= 0 {
		return errors.NewTracer("scheduler tick interval must be positive").WithCode(errors.ValidationError)
	}
	return nil
}
