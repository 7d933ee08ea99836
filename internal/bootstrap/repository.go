package bootstrap

import (
	financialdataInfra "github.com/quantra/financial-data-service/internal/infrastructure/postgresql/financialdata"
)

// Repository is the repository layer for the financial data service.
type Repository struct {
	FinancialDataRepository financialdataInfra.Repository
}

// registerRepository registers the repository.
func (b *Bootstrap) registerRepository() {
	b.Repository.FinancialDataRepository = financialdataInfra.NewRepository(b.Postgres)
}
