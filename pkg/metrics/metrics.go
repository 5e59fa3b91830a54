package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels
const (
	ResultSuccess  = "success"
	ResultError    = "error"
	ResultFallback = "fallback"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	activeConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_connections",
			Help: "Number of active HTTP connections",
		},
	)

	storeOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_store_operations_total",
			Help: "Total number of lead store calls by operation and result",
		},
		[]string{"operation", "result"},
	)

	storeReconciliations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "lead_store_reconciliations_total",
			Help: "Total number of full refetches triggered by a failed write",
		},
	)

	leadsInMemory = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "leads_in_memory",
			Help: "Number of leads currently held in memory",
		},
	)

	advisoryRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "advisory_requests_total",
			Help: "Total number of AI advisory requests by operation and result",
		},
		[]string{"operation", "result"},
	)
)

func ConnectionOpened() {
	activeConnections.Inc()
}

func ConnectionClosed() {
	activeConnections.Dec()
}

func RecordHTTPRequest(method, path, status string, seconds float64) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path).Observe(seconds)
}

func RecordStoreOperation(operation string, err error) {
	result := ResultSuccess
	if err != nil {
		result = ResultError
	}
	storeOperations.WithLabelValues(operation, result).Inc()
}

func RecordReconciliation() {
	storeReconciliations.Inc()
}

func SetLeadsInMemory(n int) {
	leadsInMemory.Set(float64(n))
}

func RecordAdvisoryRequest(operation, result string) {
	advisoryRequests.WithLabelValues(operation, result).Inc()
}
