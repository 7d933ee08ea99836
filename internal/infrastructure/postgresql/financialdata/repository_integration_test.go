package financialdata

import (
	"context"
	"testing"
	"time"

	"github.com/quantra/financial-data-service/pkg/postgresql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Integration(t *testing.T) {
	helper := postgresql.NewTestHelperWithMigrations(t, "../../../../migrations")
	repo := NewRepository(helper.GetClient())
	ctx := context.Background()

	day := func(d int) time.Time {
		return time.Date(2023, 4, d, 0, 0, 0, 0, time.UTC)
	}

	t.Run("upsert is idempotent on (symbol, date)", func(t *testing.T) {
		defer helper.CleanupTables()

		first := []*FinancialData{
			{Symbol: "IBM", Date: day(14), OpenPrice: 128.78, ClosePrice: 128.14, Volume: 3268720},
			{Symbol: "IBM", Date: day(13), OpenPrice: 128.01, ClosePrice: 128.72, Volume: 2902000},
		}
		require.NoError(t, repo.UpsertBatch(ctx, first))

		// Same keys, new values. The keys must stay unique.
		second := []*FinancialData{
			{Symbol: "IBM", Date: day(14), OpenPrice: 130.00, ClosePrice: 131.00, Volume: 4000000},
		}
		require.NoError(t, repo.UpsertBatch(ctx, second))

		entries, err := repo.GetByFilter(ctx, Filter{Symbol: "IBM"})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, day(14), entries[0].Date)
		assert.Equal(t, 130.00, entries[0].OpenPrice)
		assert.Equal(t, int64(4000000), entries[0].Volume)
	})

	t.Run("filter by symbol and date range ordered date descending", func(t *testing.T) {
		defer helper.CleanupTables()

		rows := []*FinancialData{
			{Symbol: "IBM", Date: day(10), OpenPrice: 1, ClosePrice: 2, Volume: 10},
			{Symbol: "IBM", Date: day(12), OpenPrice: 3, ClosePrice: 4, Volume: 20},
			{Symbol: "AAPL", Date: day(11), OpenPrice: 5, ClosePrice: 6, Volume: 30},
		}
		require.NoError(t, repo.UpsertBatch(ctx, rows))

		start := day(10)
		end := day(12)
		entries, err := repo.GetByFilter(ctx, Filter{Symbol: "IBM", StartDate: &start, EndDate: &end})
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.True(t, entries[0].Date.After(entries[1].Date))

		all, err := repo.GetByFilter(ctx, Filter{})
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("statistics averages matching rows", func(t *testing.T) {
		defer helper.CleanupTables()

		rows := []*FinancialData{
			{Symbol: "IBM", Date: day(10), OpenPrice: 100, ClosePrice: 110, Volume: 1000},
			{Symbol: "IBM", Date: day(11), OpenPrice: 200, ClosePrice: 210, Volume: 3000},
		}
		require.NoError(t, repo.UpsertBatch(ctx, rows))

		stats, err := repo.GetStatistics(ctx, "IBM", day(10), day(11))
		require.NoError(t, err)
		require.NotNil(t, stats)
		assert.Equal(t, "IBM", stats.Symbol)
		assert.Equal(t, 150.0, stats.AverageDailyOpenPrice)
		assert.Equal(t, 160.0, stats.AverageDailyClosePrice)
		assert.Equal(t, 2000.0, stats.AverageDailyVolume)
	})

	t.Run("statistics returns nil when nothing matches", func(t *testing.T) {
		defer helper.CleanupTables()

		stats, err := repo.GetStatistics(ctx, "IBM", day(1), day(2))
		require.NoError(t, err)
		assert.Nil(t, stats)
	})
}
