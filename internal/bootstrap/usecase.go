package bootstrap

import (
	financialdataUc "github.com/quantra/financial-data-service/internal/usecase/financialdata"
	ingestionUc "github.com/quantra/financial-data-service/internal/usecase/ingestion"

	financialdataDomain "github.com/quantra/financial-data-service/internal/domain/financialdata"
	ingestionDomain "github.com/quantra/financial-data-service/internal/domain/ingestion"
)

// Usecase is the usecase layer for the financial data service.
type Usecase struct {
	FinancialDataUsecase financialdataDomain.Usecase
	IngestionUsecase     ingestionDomain.Usecase
}

// registerUsecase registers the usecase.
func (b *Bootstrap) registerUsecase() {
	b.Usecase.FinancialDataUsecase = financialdataUc.NewUsecase(b.Repository.FinancialDataRepository, b.Logger)
	b.Usecase.IngestionUsecase = ingestionUc.NewUsecase(
		b.Provider,
		b.Repository.FinancialDataRepository,
		b.Config.AlphaVantage.Symbols,
		b.Logger,
	)
}
