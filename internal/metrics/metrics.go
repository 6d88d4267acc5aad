package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route and status",
		},
		[]string{"method", "route", "status"},
	)

	HTTPDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ApplicationTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "job_application_transitions_total",
			Help: "Job application workflow actions by action and outcome",
		},
		[]string{"action", "outcome"},
	)

	Registrations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "business_registrations_total",
			Help: "Business registration steps by stage and outcome",
		},
		[]string{"stage", "outcome"},
	)

	PendingRegistrations = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "pending_registrations",
			Help: "Registrations waiting for OTP verification in the in-memory store",
		},
	)

	AuditLogsPurged = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_logs_purged_total",
			Help: "Audit log rows removed by the retention job",
		},
	)
)

// Outcome labels.
const (
	OutcomeOK       = "ok"
	OutcomeConflict = "conflict"
	OutcomeError    = "error"
)

func Handler() http.Handler {
	return promhttp.Handler()
}
