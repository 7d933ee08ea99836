package financialdata

import (
	"context"
	"time"

	v1 "github.com/quantra/financial-data-service/internal/domain/financialdata/v1"
	financialdata "github.com/quantra/financial-data-service/internal/infrastructure/postgresql/financialdata"
)

// Usecase is the interface for the financial data usecase.
//
//go:generate mockgen -source=interface.go -destination=mock/usecase_mock.go -package=mock
type Usecase interface {
	QueryPage(ctx context.Context, filter financialdata.Filter, page v1.PageRequest) (*v1.PageResult, error)
	Statistics(ctx context.Context, symbol string, startDate, endDate time.Time) (*financialdata.Statistics, error)
}
