package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorTracer_WithCode(t *testing.T) {
	err := NewTracer("failed to connect to storage").WithCode(DatabaseConnectError)

	assert.Equal(t, "failed to connect to storage", err.Error())
	assert.Equal(t, DatabaseConnectError, err.Code)
	assert.Equal(t, DatabaseConnectError, CodeOf(err))
}

func TestTracerFromError_CarriesCodeForward(t *testing.T) {
	inner := NewTracer("failed to upsert financial data").WithCode(DatabaseUpsertError)

	outer := TracerFromError(inner)

	assert.Equal(t, DatabaseUpsertError, outer.Code)
	assert.Equal(t, DatabaseUpsertError, CodeOf(outer))
	assert.Equal(t, "failed to upsert financial data", outer.Error())
}

func TestCodeOf_UnwrapsUntilCodeFound(t *testing.T) {
	inner := NewTracer("unexpected status code: 429").WithCode(FetchTransportError)
	outer := NewTracer("ingestion pass failed").Wrap(inner)

	assert.Equal(t, FetchTransportError, CodeOf(outer))
}

func TestCodeOf_PlainError(t *testing.T) {
	assert.Equal(t, ErrorCode(""), CodeOf(fmt.Errorf("boom")))
	assert.Equal(t, ErrorCode(""), CodeOf(NewTracer("no code attached")))
	assert.Equal(t, ErrorCode(""), CodeOf(nil))
}

func TestTracerFromError_WrapsStackOnce(t *testing.T) {
	plain := fmt.Errorf("connection refused")

	tracer := TracerFromError(plain)

	assert.NotNil(t, tracer.StackTrace())
	assert.Equal(t, "connection refused", tracer.Error())

	rewrapped := TracerFromError(tracer)
	assert.Equal(t, tracer, rewrapped.Unwrap())
}
