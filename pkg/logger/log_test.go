package logger

import (
	"context"
	"fmt"
	"testing"

	"github.com/quantra/financial-data-service/pkg/errors"
	"github.com/quantra/financial-data-service/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &Logger{logger: zap.New(core)}, logs
}

func TestLogger_Info(t *testing.T) {
	log, logs := newObservedLogger()

	log.Info("ingestion pass complete", NewField("rows", 42))

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "ingestion pass complete", entries[0].Message)
	assert.Equal(t, int64(42), entries[0].ContextMap()["rows"])
}

func TestLogger_InfoContext_AppendsRequestID(t *testing.T) {
	log, logs := newObservedLogger()
	ctx := util.WithRequestID(context.Background(), "req-123")

	log.InfoContext(ctx, "fetched daily series", NewField("symbol", "IBM"))

	entries := logs.All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "IBM", fields["symbol"])
	assert.Equal(t, "req-123", fields["request_id"])
}

func TestLogger_Error_CarriesTracerStack(t *testing.T) {
	log, logs := newObservedLogger()
	err := errors.NewTracer("failed to upsert financial data").Wrap(fmt.Errorf("broken pipe"))

	log.Error(err)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "failed to upsert financial data", entries[0].Message)
	assert.NotEmpty(t, entries[0].Stack)
}

func TestNewLogger_LevelOption(t *testing.T) {
	log, err := NewLogger(WithLoggingLevel(DebugLevel))
	require.NoError(t, err)
	require.NotNil(t, log)

	_, err = NewLogger(WithLoggingLevel(Level("nonsense")))
	require.NoError(t, err)
}
