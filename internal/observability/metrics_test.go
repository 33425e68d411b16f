package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsExist(t *testing.T) {
	assert.NotNil(t, RequestDuration)
	assert.NotNil(t, ActiveConnections)
	assert.NotNil(t, CacheHits)
	assert.NotNil(t, DatabaseOperations)
	assert.NotNil(t, BureauLookups)
	assert.NotNil(t, BureauLookupDuration)
	assert.NotNil(t, EvaluationOutcomes)
	assert.NotNil(t, GuardOutcomes)
	assert.NotNil(t, GuardUnavailable)
	assert.NotNil(t, SolicitudesSaved)
}

func TestCounters(t *testing.T) {
	before := testutil.ToFloat64(GuardUnavailable.WithLabelValues("metrics_test"))
	GuardUnavailable.WithLabelValues("metrics_test").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(GuardUnavailable.WithLabelValues("metrics_test")))

	before = testutil.ToFloat64(SolicitudesSaved.WithLabelValues("metrics_test"))
	SolicitudesSaved.WithLabelValues("metrics_test").Add(2)
	assert.Equal(t, before+2, testutil.ToFloat64(SolicitudesSaved.WithLabelValues("metrics_test")))
}

func TestActiveConnections(t *testing.T) {
	before := testutil.ToFloat64(ActiveConnections)
	ActiveConnections.Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(ActiveConnections))
	ActiveConnections.Dec()
	assert.Equal(t, before, testutil.ToFloat64(ActiveConnections))
}

func TestHistograms(t *testing.T) {
	RequestDuration.WithLabelValues("/v1/solicitudes", "POST", "201").Observe(0.2)
	BureauLookupDuration.Observe(1.1)
}
