package rest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	ucMock "github.com/quantra/financial-data-service/internal/domain/financialdata/mock"
	financialdata "github.com/quantra/financial-data-service/internal/infrastructure/postgresql/financialdata"
	loggerMock "github.com/quantra/financial-data-service/pkg/logger/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_Statistics(t *testing.T) {
	startDate := time.Date(2023, 4, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2023, 4, 14, 0, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		target   string
		mockFn   func(uc *ucMock.MockUsecase, log *loggerMock.MockInterface)
		assertFn func(t *testing.T, rec *httptest.ResponseRecorder)
	}{
		{
			name:   "success",
			target: "/api/statistics?symbol=IBM&start_date=2023-04-01&end_date=2023-04-14",
			mockFn: func(uc *ucMock.MockUsecase, log *loggerMock.MockInterface) {
				uc.EXPECT().
					Statistics(gomock.Any(), "IBM", startDate, endDate).
					Return(&financialdata.Statistics{
						Symbol:                 "IBM",
						StartDate:              startDate,
						EndDate:                endDate,
						AverageDailyOpenPrice:  123.45,
						AverageDailyClosePrice: 124.56,
						AverageDailyVolume:     1234567.8,
					}, nil)
			},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)

				var res StatisticsResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
				require.NotNil(t, res.Data)
				assert.Equal(t, "IBM", res.Data.Symbol)
				assert.Equal(t, "2023-04-01", res.Data.StartDate)
				assert.Equal(t, "2023-04-14", res.Data.EndDate)
				assert.Equal(t, 123.45, res.Data.AverageDailyOpenPrice)
				assert.Empty(t, res.Info.Error)
			},
		},
		{
			name:   "no data yields null data with advisory message",
			target: "/api/statistics?symbol=IBM&start_date=2023-04-01&end_date=2023-04-14",
			mockFn: func(uc *ucMock.MockUsecase, log *loggerMock.MockInterface) {
				uc.EXPECT().
					Statistics(gomock.Any(), "IBM", startDate, endDate).
					Return(nil, nil)
			},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusOK, rec.Code)

				var res StatisticsResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
				assert.Nil(t, res.Data)
				assert.Equal(t, msgNoResults, res.Info.Error)
			},
		},
		{
			name:     "missing symbol is a 400",
			target:   "/api/statistics?start_date=2023-04-01&end_date=2023-04-14",
			mockFn:   func(uc *ucMock.MockUsecase, log *loggerMock.MockInterface) {},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			name:     "missing start_date is a 400",
			target:   "/api/statistics?symbol=IBM&end_date=2023-04-14",
			mockFn:   func(uc *ucMock.MockUsecase, log *loggerMock.MockInterface) {},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			name:     "malformed end_date is a 400",
			target:   "/api/statistics?symbol=IBM&start_date=2023-04-01&end_date=tomorrow",
			mockFn:   func(uc *ucMock.MockUsecase, log *loggerMock.MockInterface) {},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusBadRequest, rec.Code)
			},
		},
		{
			name:   "storage failure is a generic 500",
			target: "/api/statistics?symbol=IBM&start_date=2023-04-01&end_date=2023-04-14",
			mockFn: func(uc *ucMock.MockUsecase, log *loggerMock.MockInterface) {
				uc.EXPECT().
					Statistics(gomock.Any(), "IBM", startDate, endDate).
					Return(nil, errors.New("connection refused"))
				log.EXPECT().ErrorContext(gomock.Any(), gomock.Any()).Times(1)
			},
			assertFn: func(t *testing.T, rec *httptest.ResponseRecorder) {
				assert.Equal(t, http.StatusInternalServerError, rec.Code)
				assert.NotContains(t, rec.Body.String(), "connection refused")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			uc := ucMock.NewMockUsecase(ctrl)
			log := loggerMock.NewMockInterface(ctrl)
			tc.mockFn(uc, log)

			router := NewRouter(NewHandler(uc, log))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.target, nil))

			tc.assertFn(t, rec)
		})
	}
}
