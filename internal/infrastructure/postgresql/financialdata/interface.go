package financialdata

import (
	"context"
	"time"
)

// Repository is the interface for the financial data repository.
//
//go:generate mockgen -source=interface.go -destination=mock/repository_mock.go -package=mock
type Repository interface {
	GetByFilter(ctx context.Context, filter Filter) ([]*FinancialData, error)
	GetStatistics(ctx context.Context, symbol string, startDate, endDate time.Time) (*Statistics, error)
	UpsertBatch(ctx context.Context, rows []*FinancialData) error
}
