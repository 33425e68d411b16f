package utils

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

func withRecorder(t *testing.T) *tracetest.SpanRecorder {
	t.Helper()
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	previous := otel.GetTracerProvider()
	otel.SetTracerProvider(provider)
	t.Cleanup(func() { otel.SetTracerProvider(previous) })
	return recorder
}

func TestTraceOperation(t *testing.T) {
	recorder := withRecorder(t)

	attributes := map[string]interface{}{
		"string_attr":  "value",
		"int_attr":     42,
		"int64_attr":   int64(123),
		"bool_attr":    true,
		"float64_attr": 3.14,
		"slice_attr":   []string{"a", "b"},
		"unknown_attr": struct{}{},
	}

	spanCtx, span, cleanup := TraceOperation(context.Background(), "test_operation", attributes)
	require.NotNil(t, spanCtx)
	require.NotNil(t, span)
	cleanup()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, "test_operation", ended[0].Name())

	attrs := map[string]string{}
	for _, kv := range ended[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.Emit()
	}
	assert.Equal(t, "value", attrs["string_attr"])
	assert.Equal(t, "unknown_type", attrs["unknown_attr"])
	assert.Contains(t, attrs, "duration_ms")
}

func TestEndpointStepHelpers(t *testing.T) {
	recorder := withRecorder(t)
	ctx := context.Background()

	_, s1 := TraceInputParsing(ctx, "json")
	s1.End()
	_, s2 := TraceInputValidation(ctx, "cuil", "cuil")
	s2.End()
	_, s3 := TraceBusinessLogic(ctx, "evaluate_bureau")
	s3.End()
	_, s4 := TraceDatabaseFind(ctx, "clientes", "cuil")
	s4.End()
	_, s5 := TraceDatabaseInsert(ctx, "clientes")
	s5.End()
	_, s6 := TraceDatabaseDelete(ctx, "clientes")
	s6.End()
	_, s7 := TraceDatabaseUpsert(ctx, "config", "_id")
	s7.End()
	_, s8 := TraceCacheGet(ctx, "bcra:cuil:1")
	s8.End()
	_, s9 := TraceCacheSet(ctx, "bcra:cuil:1", time.Hour)
	s9.End()
	_, s10 := TraceCacheInvalidation(ctx, "bcra:cuil:1")
	s10.End()
	_, s11 := TraceExternalService(ctx, "bcra", "deudas")
	s11.End()
	_, s12 := TraceResponseSerialization(ctx, "json")
	s12.End()

	ended := recorder.Ended()
	require.Len(t, ended, 12)
	assert.Equal(t, "endpoint.step.parse_input", ended[0].Name())
	assert.Equal(t, "endpoint.step.external_service", ended[10].Name())
}

func TestRecordErrorInSpan(t *testing.T) {
	recorder := withRecorder(t)

	_, span := TraceBusinessLogic(context.Background(), "save")
	RecordErrorInSpan(span, errors.New("boom"), map[string]interface{}{"attempt": 2})
	AddSpanAttribute(span, "estado", "rechazada")
	span.End()

	ended := recorder.Ended()
	require.Len(t, ended, 1)
	assert.Equal(t, codes.Error, ended[0].Status().Code)
	assert.Len(t, ended[0].Events(), 1)
}
