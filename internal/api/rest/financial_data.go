package rest

import (
	"net/http"
	"strconv"
	"time"

	v1 "github.com/quantra/financial-data-service/internal/domain/financialdata/v1"
	financialdata "github.com/quantra/financial-data-service/internal/infrastructure/postgresql/financialdata"
	"github.com/quantra/financial-data-service/pkg/util"
)

// FinancialData serves GET /api/financial_data.
//
// Returns a page of time series entries for a global equity within a date
// range. All query parameters are optional: symbol (all equities when
// omitted), start_date, end_date, limit (default 5) and page (default 1).
func (h *Handler) FinancialData(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	filter := financialdata.Filter{Symbol: query.Get("symbol")}

	if raw := query.Get("start_date"); raw != "" {
		startDate, err := time.Parse(util.DateLayout, raw)
		if err != nil {
			h.writeJSON(ctx, w, http.StatusBadRequest, FinancialDataResponse{
				Data: []FinancialDataEntry{},
				Info: ResponseInfo{Error: "start_date must be a calendar date in YYYY-MM-DD format."},
			})
			return
		}
		filter.StartDate = util.TimePointer(startDate)
	}

	if raw := query.Get("end_date"); raw != "" {
		endDate, err := time.Parse(util.DateLayout, raw)
		if err != nil {
			h.writeJSON(ctx, w, http.StatusBadRequest, FinancialDataResponse{
				Data: []FinancialDataEntry{},
				Info: ResponseInfo{Error: "end_date must be a calendar date in YYYY-MM-DD format."},
			})
			return
		}
		filter.EndDate = util.TimePointer(endDate)
	}

	var page, limit *int
	if raw := query.Get("page"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			h.writeJSON(ctx, w, http.StatusBadRequest, FinancialDataResponse{
				Data: []FinancialDataEntry{},
				Info: ResponseInfo{Error: "page must be an integer."},
			})
			return
		}
		page = &value
	}
	if raw := query.Get("limit"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			h.writeJSON(ctx, w, http.StatusBadRequest, FinancialDataResponse{
				Data: []FinancialDataEntry{},
				Info: ResponseInfo{Error: "limit must be an integer."},
			})
			return
		}
		limit = &value
	}

	result, err := h.usecase.QueryPage(ctx, filter, v1.NewPageRequest(page, limit))
	if err != nil {
		h.logger.ErrorContext(ctx, err)
		h.writeJSON(ctx, w, http.StatusInternalServerError, FinancialDataResponse{
			Data: []FinancialDataEntry{},
			Info: ResponseInfo{Error: "Internal server error."},
		})
		return
	}

	h.writeJSON(ctx, w, http.StatusOK, FinancialDataResponse{
		Data: toFinancialDataEntries(result.Data),
		Pagination: Pagination{
			Count: result.Count,
			Page:  result.Page,
			Limit: result.Limit,
			Pages: result.Pages,
		},
		Info: ResponseInfo{Error: result.Info},
	})
}
