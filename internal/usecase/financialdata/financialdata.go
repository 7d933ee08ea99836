package financialdata

import (
	"context"
	"strings"
	"time"

	v1 "github.com/quantra/financial-data-service/internal/domain/financialdata/v1"
	financialdata "github.com/quantra/financial-data-service/internal/infrastructure/postgresql/financialdata"
	"github.com/quantra/financial-data-service/pkg/errors"
	"github.com/quantra/financial-data-service/pkg/logger"
)

// Advisory messages reported through PageResult.Info. Invalid pagination
// input is absorbed into a normal response rather than surfaced as an error.
const (
	msgInvalidPage  = "Page must be a positive number bigger than 0."
	msgInvalidLimit = "Limit must be a positive number bigger than 0."
	msgNoResults    = "The query had no results. Try another date range and verify symbol is correct."
)

// Usecase is the usecase for querying financial data.
type Usecase struct {
	repository financialdata.Repository
	logger     logger.Interface
}

// NewUsecase creates a new financial data usecase.
func NewUsecase(repository financialdata.Repository, logger logger.Interface) *Usecase {
	return &Usecase{repository: repository, logger: logger}
}

// QueryPage fetches all entries matching the filter and slices the requested
// page. Count reflects the total matching rows before pagination and Pages is
// Count divided by Limit, floored. Page and Limit values below 1 produce an
// empty result with zeroed pagination and an advisory message, never an error.
func (u *Usecase) QueryPage(ctx context.Context, filter financialdata.Filter, page v1.PageRequest) (*v1.PageResult, error) {
	if page.Page < 1 {
		return &v1.PageResult{Data: []*financialdata.FinancialData{}, Info: msgInvalidPage}, nil
	}
	if page.Limit < 1 {
		return &v1.PageResult{Data: []*financialdata.FinancialData{}, Info: msgInvalidLimit}, nil
	}

	entries, err := u.repository.GetByFilter(ctx, filter)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}

	count := len(entries)
	pages := count / page.Limit
	offset := page.Limit * (page.Page - 1)

	info := ""
	if count == 0 {
		info = msgNoResults
	}

	pageData := []*financialdata.FinancialData{}
	for i := offset; i < count && i < offset+page.Limit; i++ {
		entry := *entries[i]
		entry.Symbol = strings.TrimSpace(entry.Symbol)
		pageData = append(pageData, &entry)
	}

	return &v1.PageResult{
		Data:  pageData,
		Count: count,
		Page:  page.Page,
		Limit: page.Limit,
		Pages: pages,
		Info:  info,
	}, nil
}

// Statistics computes averaged daily metrics for a symbol within a date
// range. A nil row without error means no data matched the filter.
func (u *Usecase) Statistics(ctx context.Context, symbol string, startDate, endDate time.Time) (*financialdata.Statistics, error) {
	stats, err := u.repository.GetStatistics(ctx, symbol, startDate, endDate)
	if err != nil {
		return nil, errors.TracerFromError(err)
	}
	return stats, nil
}
