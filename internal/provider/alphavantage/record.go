package alphavantage

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	financialdata "github.com/quantra/financial-data-service/internal/infrastructure/postgresql/financialdata"
	"github.com/quantra/financial-data-service/pkg/util"
)

// placeholderSymbol fills the symbol field for payloads without a symbol
// column. It is always overwritten with the requested symbol.
const placeholderSymbol = "uninitialized"

// record holds one decoded row of the provider's CSV payload.
type record struct {
	symbol    string
	timestamp time.Time
	open      float64
	close     float64
	volume    int64
}

// decodeDailySeries decodes the CSV payload of a daily series response.
// Columns are resolved by header name so extra columns are tolerated.
// Rows strictly older than cutoff are dropped; the symbol field is
// overwritten with the requested symbol regardless of payload content.
func decodeDailySeries(r io.Reader, symbol string, cutoff time.Time) ([]*financialdata.FinancialData, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[name] = i
	}
	for _, required := range []string{"timestamp", "open", "close", "volume"} {
		if _, ok := columns[required]; !ok {
			return nil, fmt.Errorf("missing column %q", required)
		}
	}

	var rows []*financialdata.FinancialData
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading row: %w", err)
		}

		rec, err := parseRecord(fields, columns)
		if err != nil {
			return nil, err
		}
		rec.symbol = symbol

		if rec.timestamp.Before(cutoff) {
			continue
		}

		rows = append(rows, &financialdata.FinancialData{
			Symbol:     rec.symbol,
			Date:       rec.timestamp,
			OpenPrice:  rec.open,
			ClosePrice: rec.close,
			Volume:     rec.volume,
		})
	}

	return rows, nil
}

func parseRecord(fields []string, columns map[string]int) (*record, error) {
	rec := &record{symbol: placeholderSymbol}

	if i, ok := columns["symbol"]; ok && i < len(fields) {
		rec.symbol = fields[i]
	}

	timestamp, err := time.Parse(util.DateLayout, fields[columns["timestamp"]])
	if err != nil {
		return nil, fmt.Errorf("parsing timestamp: %w", err)
	}
	rec.timestamp = timestamp

	if rec.open, err = strconv.ParseFloat(fields[columns["open"]], 64); err != nil {
		return nil, fmt.Errorf("parsing open: %w", err)
	}
	if rec.close, err = strconv.ParseFloat(fields[columns["close"]], 64); err != nil {
		return nil, fmt.Errorf("parsing close: %w", err)
	}
	if rec.volume, err = strconv.ParseInt(fields[columns["volume"]], 10, 64); err != nil {
		return nil, fmt.Errorf("parsing volume: %w", err)
	}

	return rec, nil
}
