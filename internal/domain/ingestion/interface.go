package ingestion

import (
	"context"

	financialdata "github.com/quantra/financial-data-service/internal/infrastructure/postgresql/financialdata"
)

// Provider fetches the recent daily price series for a symbol from an
// external market data source.
//
//go:generate mockgen -source=interface.go -destination=mock/ingestion_mock.go -package=mock
type Provider interface {
	GetDailySeries(ctx context.Context, symbol string) ([]*financialdata.FinancialData, error)
}

// Usecase runs one ingestion pass over the configured symbols.
type Usecase interface {
	RunOnce(ctx context.Context) error
}
