package rest

import (
	"net/http"
	"time"

	"github.com/quantra/financial-data-service/pkg/util"
)

const msgNoResults = "The query had no results. Try another date range and verify symbol is correct."

// Statistics serves GET /api/statistics.
//
// Returns the average opening price, closing price, and volume of a given
// global equity for a given date range. The symbol, start_date, and
// end_date query parameters are all required.
func (h *Handler) Statistics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := r.URL.Query()

	symbol := query.Get("symbol")
	if symbol == "" {
		h.writeJSON(ctx, w, http.StatusBadRequest, StatisticsResponse{
			Info: ResponseInfo{Error: "symbol is required."},
		})
		return
	}

	startDate, err := time.Parse(util.DateLayout, query.Get("start_date"))
	if err != nil {
		h.writeJSON(ctx, w, http.StatusBadRequest, StatisticsResponse{
			Info: ResponseInfo{Error: "start_date is required and must be a calendar date in YYYY-MM-DD format."},
		})
		return
	}

	endDate, err := time.Parse(util.DateLayout, query.Get("end_date"))
	if err != nil {
		h.writeJSON(ctx, w, http.StatusBadRequest, StatisticsResponse{
			Info: ResponseInfo{Error: "end_date is required and must be a calendar date in YYYY-MM-DD format."},
		})
		return
	}

	stats, err := h.usecase.Statistics(ctx, symbol, startDate, endDate)
	if err != nil {
		h.logger.ErrorContext(ctx, err)
		h.writeJSON(ctx, w, http.StatusInternalServerError, StatisticsResponse{
			Info: ResponseInfo{Error: "Internal server error."},
		})
		return
	}

	info := ""
	if stats == nil {
		info = msgNoResults
	}

	h.writeJSON(ctx, w, http.StatusOK, StatisticsResponse{
		Data: toStatisticsReport(stats),
		Info: ResponseInfo{Error: info},
	})
}
