package observability

import (
	"testing"

	"github.com/microcuotas/app-solicitudes/internal/config"
	"github.com/stretchr/testify/assert"
	"go.opentelemetry.io/otel"
)

func withTracingConfig(t *testing.T, enabled bool, endpoint string) {
	t.Helper()
	original := config.AppConfig
	config.AppConfig = &config.Config{
		Environment:        "test",
		TracingEnabled:     enabled,
		TracingEndpoint:    endpoint,
		TracingSampleRatio: 1,
	}
	t.Cleanup(func() {
		ShutdownTracer()
		tracerProvider = nil
		config.AppConfig = original
	})
}

func TestInitTracer_Disabled(t *testing.T) {
	withTracingConfig(t, false, "")

	InitTracer()

	assert.Nil(t, tracerProvider)
}

func TestInitTracer_Enabled(t *testing.T) {
	// the exporter connects lazily, so an unreachable endpoint still initializes
	withTracingConfig(t, true, "localhost:4317")

	InitTracer()

	assert.NotNil(t, tracerProvider)
	assert.NotNil(t, otel.GetTracerProvider())
}

func TestShutdownTracer_NilProvider(t *testing.T) {
	tracerProvider = nil

	ShutdownTracer()
}

func TestNewSampler(t *testing.T) {
	assert.Contains(t, newSampler(1).Description(), "AlwaysOnSampler")
	assert.Contains(t, newSampler(0.25).Description(), "TraceIDRatioBased{0.25}")
	assert.Contains(t, newSampler(0).Description(), "ParentBased")
}
