package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RequestDuration tracks request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "app_solicitudes_request_duration_seconds",
			Help: "Duration of HTTP requests in seconds",
		},
		[]string{"path", "method", "status"},
	)

	// ActiveConnections tracks in-flight requests
	ActiveConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_solicitudes_active_connections",
			Help: "Number of active connections",
		},
	)

	// CacheHits tracks cache hits/misses
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_solicitudes_cache_hits_total",
			Help: "Number of cache lookups by cache and result",
		},
		[]string{"cache", "result"},
	)

	// DatabaseOperations tracks database operations
	DatabaseOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_solicitudes_database_operations_total",
			Help: "Number of database operations",
		},
		[]string{"operation", "status"},
	)

	// BureauLookups tracks calls to the credit bureau
	BureauLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_solicitudes_bureau_lookups_total",
			Help: "Number of credit bureau lookups by outcome",
		},
		[]string{"status"},
	)

	// BureauLookupDuration tracks remote bureau latency
	BureauLookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "app_solicitudes_bureau_lookup_duration_seconds",
			Help:    "Duration of credit bureau HTTP calls in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	// EvaluationOutcomes tracks eligibility decisions by result code
	EvaluationOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_solicitudes_evaluation_outcomes_total",
			Help: "Number of eligibility evaluations by stage and result",
		},
		[]string{"stage", "result"},
	)

	// GuardOutcomes tracks uniqueness and recency checks
	GuardOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_solicitudes_guard_outcomes_total",
			Help: "Number of uniqueness/recency checks by check and outcome",
		},
		[]string{"check", "outcome"},
	)

	// GuardUnavailable counts checks that could not be verified and failed open
	GuardUnavailable = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_solicitudes_guard_unavailable_total",
			Help: "Number of guard checks that failed open because the store was unavailable",
		},
		[]string{"check"},
	)

	// SolicitudesSaved tracks persisted applications by estado
	SolicitudesSaved = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_solicitudes_saved_total",
			Help: "Number of persisted applications by estado",
		},
		[]string{"estado"},
	)

	// AuditEvents counts back-office write operations
	AuditEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "app_solicitudes_audit_events_total",
			Help: "Number of audited back-office operations by action and resource",
		},
		[]string{"action", "resource"},
	)
)
