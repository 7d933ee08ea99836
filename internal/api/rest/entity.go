package rest

import (
	financialdata "github.com/quantra/financial-data-service/internal/infrastructure/postgresql/financialdata"
	"github.com/quantra/financial-data-service/pkg/util"
)

// FinancialDataEntry is one wire-format entry of the price time series.
type FinancialDataEntry struct {
	Symbol     string  `json:"symbol"`
	Date       string  `json:"date"`
	OpenPrice  float64 `json:"open_price"`
	ClosePrice float64 `json:"close_price"`
	Volume     int64   `json:"volume"`
}

// Pagination is the wire-format pagination metadata for list responses.
type Pagination struct {
	Count int `json:"count"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Pages int `json:"pages"`
}

// ResponseInfo carries an advisory message for endpoint responses.
type ResponseInfo struct {
	Error string `json:"error"`
}

// FinancialDataResponse is the wire format of the financial_data endpoint.
type FinancialDataResponse struct {
	Data       []FinancialDataEntry `json:"data"`
	Pagination Pagination           `json:"pagination"`
	Info       ResponseInfo         `json:"info"`
}

// StatisticsReport is the wire format of one statistics row.
type StatisticsReport struct {
	Symbol                 string  `json:"symbol"`
	StartDate              string  `json:"start_date"`
	EndDate                string  `json:"end_date"`
	AverageDailyOpenPrice  float64 `json:"average_daily_open_price"`
	AverageDailyClosePrice float64 `json:"average_daily_close_price"`
	AverageDailyVolume     float64 `json:"average_daily_volume"`
}

// StatisticsResponse is the wire format of the statistics endpoint.
// Data is null when no rows matched the filter.
type StatisticsResponse struct {
	Data *StatisticsReport `json:"data"`
	Info ResponseInfo      `json:"info"`
}

func toFinancialDataEntries(rows []*financialdata.FinancialData) []FinancialDataEntry {
	entries := make([]FinancialDataEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, FinancialDataEntry{
			Symbol:     row.Symbol,
			Date:       row.Date.Format(util.DateLayout),
			OpenPrice:  row.OpenPrice,
			ClosePrice: row.ClosePrice,
			Volume:     row.Volume,
		})
	}
	return entries
}

func toStatisticsReport(stats *financialdata.Statistics) *StatisticsReport {
	if stats == nil {
		return nil
	}
	return &StatisticsReport{
		Symbol:                 stats.Symbol,
		StartDate:              stats.StartDate.Format(util.DateLayout),
		EndDate:                stats.EndDate.Format(util.DateLayout),
		AverageDailyOpenPrice:  stats.AverageDailyOpenPrice,
		AverageDailyClosePrice: stats.AverageDailyClosePrice,
		AverageDailyVolume:     stats.AverageDailyVolume,
	}
}
