package financialdata

import (
	"context"
	"errors"
	"testing"
	"time"

	v1 "github.com/quantra/financial-data-service/internal/domain/financialdata/v1"
	financialdata "github.com/quantra/financial-data-service/internal/infrastructure/postgresql/financialdata"
	repoMock "github.com/quantra/financial-data-service/internal/infrastructure/postgresql/financialdata/mock"
	loggerMock "github.com/quantra/financial-data-service/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func seedEntries(n int) []*financialdata.FinancialData {
	entries := make([]*financialdata.FinancialData, 0, n)
	for i := 0; i < n; i++ {
		entries = append(entries, &financialdata.FinancialData{
			Symbol:     "IBM",
			Date:       time.Date(2023, 4, 20-i, 0, 0, 0, 0, time.UTC),
			OpenPrice:  100 + float64(i),
			ClosePrice: 101 + float64(i),
			Volume:     int64(1000 * (i + 1)),
		})
	}
	return entries
}

func TestUsecase_QueryPage(t *testing.T) {
	testCases := []struct {
		name     string
		filter   financialdata.Filter
		page     v1.PageRequest
		mockFn   func(repo *repoMock.MockRepository)
		assertFn func(t *testing.T, res *v1.PageResult, err error)
	}{
		{
			name:   "first page with defaults",
			filter: financialdata.Filter{Symbol: "IBM"},
			page:   v1.PageRequest{Page: 1, Limit: 5},
			mockFn: func(repo *repoMock.MockRepository) {
				repo.EXPECT().GetByFilter(gomock.Any(), financialdata.Filter{Symbol: "IBM"}).Return(seedEntries(12), nil)
			},
			assertFn: func(t *testing.T, res *v1.PageResult, err error) {
				assert.NoError(t, err)
				assert.Len(t, res.Data, 5)
				assert.Equal(t, 12, res.Count)
				assert.Equal(t, 1, res.Page)
				assert.Equal(t, 5, res.Limit)
				assert.Equal(t, 2, res.Pages)
				assert.Empty(t, res.Info)
				assert.Equal(t, time.Date(2023, 4, 20, 0, 0, 0, 0, time.UTC), res.Data[0].Date)
			},
		},
		{
			name:   "last partial page",
			filter: financialdata.Filter{Symbol: "IBM"},
			page:   v1.PageRequest{Page: 3, Limit: 5},
			mockFn: func(repo *repoMock.MockRepository) {
				repo.EXPECT().GetByFilter(gomock.Any(), gomock.Any()).Return(seedEntries(12), nil)
			},
			assertFn: func(t *testing.T, res *v1.PageResult, err error) {
				assert.NoError(t, err)
				assert.Len(t, res.Data, 2)
				assert.Equal(t, 12, res.Count)
				assert.Equal(t, 2, res.Pages)
			},
		},
		{
			name:   "page beyond the data is empty but not an error",
			filter: financialdata.Filter{Symbol: "IBM"},
			page:   v1.PageRequest{Page: 10, Limit: 5},
			mockFn: func(repo *repoMock.MockRepository) {
				repo.EXPECT().GetByFilter(gomock.Any(), gomock.Any()).Return(seedEntries(3), nil)
			},
			assertFn: func(t *testing.T, res *v1.PageResult, err error) {
				assert.NoError(t, err)
				assert.Empty(t, res.Data)
				assert.Equal(t, 3, res.Count)
				assert.Empty(t, res.Info)
			},
		},
		{
			name: "zero page yields advisory message and zeroed pagination",
			page: v1.PageRequest{Page: 0, Limit: 5},
			mockFn: func(repo *repoMock.MockRepository) {
			},
			assertFn: func(t *testing.T, res *v1.PageResult, err error) {
				assert.NoError(t, err)
				assert.Empty(t, res.Data)
				assert.Equal(t, 0, res.Count)
				assert.Equal(t, 0, res.Page)
				assert.Equal(t, 0, res.Limit)
				assert.Equal(t, 0, res.Pages)
				assert.Equal(t, msgInvalidPage, res.Info)
			},
		},
		{
			name: "zero limit yields advisory message and zeroed pagination",
			page: v1.PageRequest{Page: 1, Limit: 0},
			mockFn: func(repo *repoMock.MockRepository) {
			},
			assertFn: func(t *testing.T, res *v1.PageResult, err error) {
				assert.NoError(t, err)
				assert.Empty(t, res.Data)
				assert.Equal(t, msgInvalidLimit, res.Info)
			},
		},
		{
			name: "empty result carries the no results message",
			page: v1.PageRequest{Page: 1, Limit: 5},
			mockFn: func(repo *repoMock.MockRepository) {
				repo.EXPECT().GetByFilter(gomock.Any(), gomock.Any()).Return(nil, nil)
			},
			assertFn: func(t *testing.T, res *v1.PageResult, err error) {
				assert.NoError(t, err)
				assert.Empty(t, res.Data)
				assert.Equal(t, 0, res.Count)
				assert.Equal(t, msgNoResults, res.Info)
			},
		},
		{
			name: "symbols are trimmed in the returned page",
			page: v1.PageRequest{Page: 1, Limit: 5},
			mockFn: func(repo *repoMock.MockRepository) {
				repo.EXPECT().GetByFilter(gomock.Any(), gomock.Any()).Return([]*financialdata.FinancialData{
					{Symbol: "  IBM  ", Date: time.Date(2023, 4, 14, 0, 0, 0, 0, time.UTC)},
				}, nil)
			},
			assertFn: func(t *testing.T, res *v1.PageResult, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "IBM", res.Data[0].Symbol)
			},
		},
		{
			name: "repository error propagates",
			page: v1.PageRequest{Page: 1, Limit: 5},
			mockFn: func(repo *repoMock.MockRepository) {
				repo.EXPECT().GetByFilter(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection refused"))
			},
			assertFn: func(t *testing.T, res *v1.PageResult, err error) {
				assert.Error(t, err)
				assert.Nil(t, res)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repoMock.NewMockRepository(ctrl)
			log := loggerMock.NewMockInterface(ctrl)
			tc.mockFn(repo)

			res, err := NewUsecase(repo, log).QueryPage(context.Background(), tc.filter, tc.page)
			tc.assertFn(t, res, err)
		})
	}
}

func TestUsecase_Statistics(t *testing.T) {
	startDate := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2023, 4, 14, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		mockFn   func(repo *repoMock.MockRepository)
		assertFn func(t *testing.T, stats *financialdata.Statistics, err error)
	}{
		{
			name: "success",
			mockFn: func(repo *repoMock.MockRepository) {
				repo.EXPECT().GetStatistics(gomock.Any(), "IBM", startDate, endDate).Return(&financialdata.Statistics{
					Symbol:                 "IBM",
					StartDate:              startDate,
					EndDate:                endDate,
					AverageDailyOpenPrice:  123.45,
					AverageDailyClosePrice: 124.56,
					AverageDailyVolume:     1234567.8,
				}, nil)
			},
			assertFn: func(t *testing.T, stats *financialdata.Statistics, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 123.45, stats.AverageDailyOpenPrice)
			},
		},
		{
			name: "no data yields nil without error",
			mockFn: func(repo *repoMock.MockRepository) {
				repo.EXPECT().GetStatistics(gomock.Any(), "IBM", startDate, endDate).Return(nil, nil)
			},
			assertFn: func(t *testing.T, stats *financialdata.Statistics, err error) {
				assert.NoError(t, err)
				assert.Nil(t, stats)
			},
		},
		{
			name: "repository error propagates",
			mockFn: func(repo *repoMock.MockRepository) {
				repo.EXPECT().GetStatistics(gomock.Any(), "IBM", startDate, endDate).Return(nil, errors.New("connection refused"))
			},
			assertFn: func(t *testing.T, stats *financialdata.Statistics, err error) {
				assert.Error(t, err)
				assert.Nil(t, stats)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := repoMock.NewMockRepository(ctrl)
			log := loggerMock.NewMockInterface(ctrl)
			tc.mockFn(repo)

			stats, err := NewUsecase(repo, log).Statistics(context.Background(), "IBM", startDate, endDate)
			tc.assertFn(t, stats, err)
		})
	}
}
