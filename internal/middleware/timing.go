package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcuotas/app-solicitudes/internal/observability"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// RequestTiming opens the server span of the request and records its
// duration by route
func RequestTiming() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		ctx, span := otel.Tracer("http").Start(c.Request.Context(), c.Request.Method+" "+route,
			trace.WithSpanKind(trace.SpanKindServer))
		defer span.End()

		span.SetAttributes(
			attribute.String("http.method", c.Request.Method),
			attribute.String("http.route", route),
			attribute.String("http.client_ip", c.ClientIP()),
		)
		if id := c.GetString(RequestIDKey); id != "" {
			span.SetAttributes(attribute.String("http.request_id", id))
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()

		span.SetAttributes(
			attribute.Int("http.status_code", status),
			attribute.Int64("http.duration_ms", latency.Milliseconds()),
		)
		if status >= 500 {
			span.SetStatus(codes.Error, strconv.Itoa(status))
		}

		observability.RequestDuration.WithLabelValues(
			route,
			c.Request.Method,
			strconv.Itoa(status),
		).Observe(latency.Seconds())
	}
}
