package financialdata

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/quantra/financial-data-service/pkg/errors"
	"github.com/quantra/financial-data-service/pkg/postgresql"
)

const upsertQuery = `INSERT INTO financial_data (symbol, date, open_price, close_price, volume)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (symbol, date)
		DO UPDATE
		SET open_price = EXCLUDED.open_price, close_price = EXCLUDED.close_price, volume = EXCLUDED.volume`

const statisticsQuery = `SELECT symbol, start_date, end_date, average_daily_open_price, average_daily_close_price, average_daily_volume
		FROM (
			SELECT
				$1::text as symbol,
				$2::date as start_date,
				$3::date as end_date,
				AVG(open_price) as average_daily_open_price,
				AVG(close_price) as average_daily_close_price,
				CAST(AVG(volume) as FLOAT8) as average_daily_volume
			FROM financial_data
			WHERE symbol = $1 AND date BETWEEN $2 AND $3
		) as statistics
		WHERE average_daily_volume IS NOT NULL`

// PostgresRepository represents the repository for financial data.
type PostgresRepository struct {
	client postgresql.PostgreSQLClient
	tx     postgresql.Transaction
}

// NewRepository creates a new financial data repository.
func NewRepository(client postgresql.PostgreSQLClient) *PostgresRepository {
	return &PostgresRepository{
		client: client,
		tx:     postgresql.NewTransaction(client),
	}
}

// NewRepositoryWithTransaction creates a repository with an explicit transaction wrapper.
func NewRepositoryWithTransaction(client postgresql.PostgreSQLClient, tx postgresql.Transaction) *PostgresRepository {
	return &PostgresRepository{
		client: client,
		tx:     tx,
	}
}

// UpsertBatch writes a batch of time series rows inside a single transaction.
// Rows sharing a (symbol, date) key with an existing row overwrite its price
// and volume fields, never the key itself.
func (r *PostgresRepository) UpsertBatch(ctx context.Context, rows []*FinancialData) error {
	if len(rows) == 0 {
		return nil
	}

	txCtx, err := r.tx.Begin(ctx)
	if err != nil {
		return errors.TracerFromError(fmt.Errorf("failed to begin upsert transaction: %w", err)).WithCode(errors.DatabaseUpsertError)
	}

	for _, row := range rows {
		_, err := r.client.Exec(txCtx, upsertQuery,
			row.Symbol, row.Date, row.OpenPrice, row.ClosePrice, row.Volume)
		if err != nil {
			if rbErr := r.tx.Rollback(txCtx); rbErr != nil {
				return errors.NewTracer(fmt.Sprintf("failed to upsert financial data: %v, rollback failed: %v", err, rbErr)).WithCode(errors.DatabaseUpsertError)
			}
			return errors.TracerFromError(fmt.Errorf("failed to upsert financial data: %w", err)).WithCode(errors.DatabaseUpsertError)
		}
	}

	if err := r.tx.Commit(txCtx); err != nil {
		return errors.TracerFromError(fmt.Errorf("failed to commit upsert transaction: %w", err)).WithCode(errors.DatabaseUpsertError)
	}

	return nil
}

// GetByFilter retrieves all matching time series entries ordered by date descending.
func (r *PostgresRepository) GetByFilter(ctx context.Context, filter Filter) ([]*FinancialData, error) {
	query := "SELECT symbol, date, open_price, close_price, volume FROM financial_data WHERE 1=1"
	args := []interface{}{}
	argIndex := 1

	if filter.Symbol != "" {
		query += fmt.Sprintf(" AND symbol = $%d", argIndex)
		args = append(args, filter.Symbol)
		argIndex++
	}

	if filter.StartDate != nil {
		query += fmt.Sprintf(" AND date >= $%d", argIndex)
		args = append(args, *filter.StartDate)
		argIndex++
	}

	if filter.EndDate != nil {
		query += fmt.Sprintf(" AND date <= $%d", argIndex)
		args = append(args, *filter.EndDate)
		argIndex++
	}

	query += " ORDER BY date DESC"

	rows, err := r.client.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.TracerFromError(fmt.Errorf("failed to query financial data: %w", err)).WithCode(errors.DatabaseQueryError)
	}
	defer rows.Close()

	var entries []*FinancialData
	for rows.Next() {
		entry := &FinancialData{}
		err := rows.Scan(&entry.Symbol, &entry.Date, &entry.OpenPrice, &entry.ClosePrice, &entry.Volume)
		if err != nil {
			return nil, errors.TracerFromError(fmt.Errorf("failed to scan financial data: %w", err)).WithCode(errors.DatabaseQueryError)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.TracerFromError(fmt.Errorf("error iterating rows: %w", err)).WithCode(errors.DatabaseQueryError)
	}

	return entries, nil
}

// GetStatistics computes averaged daily metrics for a symbol within a date range.
// Returns nil when no rows match the filter.
func (r *PostgresRepository) GetStatistics(ctx context.Context, symbol string, startDate, endDate time.Time) (*Statistics, error) {
	stats := &Statistics{}
	err := r.client.QueryRow(ctx, statisticsQuery, symbol, startDate, endDate).Scan(
		&stats.Symbol,
		&stats.StartDate,
		&stats.EndDate,
		&stats.AverageDailyOpenPrice,
		&stats.AverageDailyClosePrice,
		&stats.AverageDailyVolume,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, errors.TracerFromError(fmt.Errorf("failed to get statistics: %w", err)).WithCode(errors.DatabaseQueryError)
	}

	return stats, nil
}
