package utils

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "app-solicitudes"

func toAttributes(attributes map[string]interface{}) []attribute.KeyValue {
	otelAttrs := make([]attribute.KeyValue, 0, len(attributes))
	for k, v := range attributes {
		otelAttrs = append(otelAttrs, toAttribute(k, v))
	}
	return otelAttrs
}

func toAttribute(key string, value interface{}) attribute.KeyValue {
	switch val := value.(type) {
	case string:
		return attribute.String(key, val)
	case int:
		return attribute.Int(key, val)
	case int64:
		return attribute.Int64(key, val)
	case bool:
		return attribute.Bool(key, val)
	case float64:
		return attribute.Float64(key, val)
	case []string:
		return attribute.StringSlice(key, val)
	default:
		return attribute.String(key, "unknown_type")
	}
}

// TraceOperation starts a span and returns a cleanup func that records duration and ends it
func TraceOperation(ctx context.Context, operationName string, attributes map[string]interface{}) (context.Context, trace.Span, func()) {
	start := time.Now()
	spanCtx, span := otel.Tracer(tracerName).Start(ctx, operationName, trace.WithAttributes(toAttributes(attributes)...))

	cleanup := func() {
		AddTimingToSpan(span, start)
		span.End()
	}
	return spanCtx, span, cleanup
}

// TraceEndpointStep traces a specific step within an endpoint
func TraceEndpointStep(ctx context.Context, stepName string, attributes map[string]interface{}) (context.Context, trace.Span) {
	stepAttributes := map[string]interface{}{
		"step.name": stepName,
		"step.type": "endpoint_operation",
	}
	for k, v := range attributes {
		stepAttributes[k] = v
	}

	return otel.Tracer(tracerName).Start(ctx, "endpoint.step."+stepName, trace.WithAttributes(toAttributes(stepAttributes)...))
}

// TraceInputParsing traces input parsing operations
func TraceInputParsing(ctx context.Context, inputType string) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "parse_input", map[string]interface{}{
		"input.type": inputType,
	})
}

// TraceInputValidation traces input validation operations
func TraceInputValidation(ctx context.Context, validationType, field string) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "validate_input", map[string]interface{}{
		"validation.type":  validationType,
		"validation.field": field,
	})
}

// TraceBusinessLogic traces business logic operations
func TraceBusinessLogic(ctx context.Context, logicType string) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "business_logic", map[string]interface{}{
		"logic.type": logicType,
	})
}

// TraceDatabaseFind traces database find operations
func TraceDatabaseFind(ctx context.Context, collection, filter string) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "database_find", map[string]interface{}{
		"db.collection": collection,
		"db.filter":     filter,
		"db.operation":  "find",
	})
}

// TraceDatabaseInsert traces database insert operations
func TraceDatabaseInsert(ctx context.Context, collection string) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "database_insert", map[string]interface{}{
		"db.collection": collection,
		"db.operation":  "insert",
	})
}

// TraceDatabaseDelete traces database delete operations
func TraceDatabaseDelete(ctx context.Context, collection string) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "database_delete", map[string]interface{}{
		"db.collection": collection,
		"db.operation":  "delete",
	})
}

// TraceDatabaseUpsert traces database upsert operations
func TraceDatabaseUpsert(ctx context.Context, collection, filter string) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "database_update", map[string]interface{}{
		"db.collection": collection,
		"db.filter":     filter,
		"db.operation":  "update",
		"db.upsert":     true,
	})
}

// TraceCacheGet traces cache get operations
func TraceCacheGet(ctx context.Context, cacheKey string) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "cache_get", map[string]interface{}{
		"cache.key":       cacheKey,
		"cache.operation": "get",
	})
}

// TraceCacheSet traces cache set operations
func TraceCacheSet(ctx context.Context, cacheKey string, ttl time.Duration) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "cache_set", map[string]interface{}{
		"cache.key":       cacheKey,
		"cache.operation": "set",
		"cache.ttl":       ttl.String(),
	})
}

// TraceCacheInvalidation traces cache invalidation operations
func TraceCacheInvalidation(ctx context.Context, cacheKey string) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "cache_invalidation", map[string]interface{}{
		"cache.key":       cacheKey,
		"cache.operation": "delete",
	})
}

// TraceExternalService traces external service calls
func TraceExternalService(ctx context.Context, serviceName, operation string) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "external_service", map[string]interface{}{
		"service.name":      serviceName,
		"service.operation": operation,
	})
}

// TraceResponseSerialization traces response serialization operations
func TraceResponseSerialization(ctx context.Context, responseType string) (context.Context, trace.Span) {
	return TraceEndpointStep(ctx, "serialize_response", map[string]interface{}{
		"response.type": responseType,
	})
}

// AddTimingToSpan adds timing information to an existing span
func AddTimingToSpan(span trace.Span, startTime time.Time) {
	duration := time.Since(startTime)
	span.SetAttributes(
		attribute.Int64("duration_ms", duration.Milliseconds()),
		attribute.String("duration", duration.String()),
	)
}

// RecordErrorInSpan records an error in a span with additional context
func RecordErrorInSpan(span trace.Span, err error, context map[string]interface{}) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	span.SetAttributes(toAttributes(context)...)
}

// AddSpanAttribute adds a single attribute to a span
func AddSpanAttribute(span trace.Span, key string, value interface{}) {
	span.SetAttributes(toAttribute(key, value))
}
