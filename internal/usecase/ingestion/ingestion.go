package ingestion

import (
	"context"

	"github.com/quantra/financial-data-service/internal/domain/ingestion"
	financialdata "github.com/quantra/financial-data-service/internal/infrastructure/postgresql/financialdata"
	"github.com/quantra/financial-data-service/pkg/errors"
	"github.com/quantra/financial-data-service/pkg/logger"
)

// Usecase drives one ingestion pass: fetch the recent series for every
// configured symbol, then write all rows in a single transaction.
type Usecase struct {
	provider   ingestion.Provider
	repository financialdata.Repository
	symbols    []string
	logger     logger.Interface
}

// NewUsecase creates a new ingestion usecase.
func NewUsecase(provider ingestion.Provider, repository financialdata.Repository, symbols []string, logger logger.Interface) *Usecase {
	return &Usecase{
		provider:   provider,
		repository: repository,
		symbols:    symbols,
		logger:     logger,
	}
}

// RunOnce fetches every configured symbol and upserts the combined batch.
// A failed fetch aborts the pass before anything is written, so a partial
// tick never reaches storage.
func (u *Usecase) RunOnce(ctx context.Context) error {
	var batch []*financialdata.FinancialData
	for _, symbol := range u.symbols {
		rows, err := u.provider.GetDailySeries(ctx, symbol)
		if err != nil {
			return errors.TracerFromError(err)
		}
		u.logger.InfoContext(ctx, "fetched daily series",
			logger.NewField("symbol", symbol),
			logger.NewField("rows", len(rows)),
		)
		batch = append(batch, rows...)
	}

	if err := u.repository.UpsertBatch(ctx, batch); err != nil {
		return errors.TracerFromError(err)
	}

	u.logger.InfoContext(ctx, "ingestion pass complete",
		logger.NewField("rows", len(batch)),
	)
	return nil
}
