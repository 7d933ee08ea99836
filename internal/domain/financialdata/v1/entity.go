package v1

import (
	financialdata "github.com/quantra/financial-data-service/internal/infrastructure/postgresql/financialdata"
)

// DefaultPage and DefaultLimit apply when the caller omits pagination parameters.
const (
	DefaultPage  = 1
	DefaultLimit = 5
)

// PageRequest holds 1-indexed pagination parameters.
type PageRequest struct {
	Page  int
	Limit int
}

// NewPageRequest returns a PageRequest with defaults applied for omitted values.
// Zero and negative values are kept as-is so validation can reject them.
func NewPageRequest(page, limit *int) PageRequest {
	req := PageRequest{Page: DefaultPage, Limit: DefaultLimit}
	if page != nil {
		req.Page = *page
	}
	if limit != nil {
		req.Limit = *limit
	}
	return req
}

// PageResult holds one page of time series entries with pagination metadata.
// Count is the total number of matching rows before pagination and
// Pages is Count divided by Limit, floored. Info carries an advisory
// message for the caller and is empty on a non-empty result.
type PageResult struct {
	Data  []*financialdata.FinancialData
	Count int
	Page  int
	Limit int
	Pages int
	Info  string
}
