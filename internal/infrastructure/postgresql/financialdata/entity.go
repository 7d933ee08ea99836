package financialdata

import (
	"time"
)

// FinancialData represents a single daily entry of the price time series.
type FinancialData struct {
	Symbol     string
	Date       time.Time
	OpenPrice  float64
	ClosePrice float64
	Volume     int64
}

// Filter represents the filter criteria for time series entries.
type Filter struct {
	Symbol    string
	StartDate *time.Time
	EndDate   *time.Time
}

// Statistics represents averaged daily metrics for a symbol within a date range.
type Statistics struct {
	Symbol                 string
	StartDate              time.Time
	EndDate                time.Time
	AverageDailyOpenPrice  float64
	AverageDailyClosePrice float64
	AverageDailyVolume     float64
}
