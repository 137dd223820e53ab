package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/btoksoz/tatli-panel/pkg/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Record store operation metrics
	RecordOperationsCounter prometheus.CounterVec
	StoreWriteFailures      prometheus.Counter

	// Delivery routing metrics
	RouteBuildsCounter prometheus.CounterVec
	RouteStopsTotal    prometheus.Counter

	// Reporting metrics
	ReportRequestsCounter prometheus.Counter

	// Backup metrics
	BackupOperationsCounter prometheus.CounterVec
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	// Use metric prefix from configuration
	prefix := config.Metrics.Prefix

	// HTTP request metrics
	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTP request duration
	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	// Record store operation metrics
	RecordOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_record_operations_total",
			Help: "Total number of record store operations",
		},
		[]string{"collection", "operation"},
	)

	StoreWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_store_write_failures_total",
			Help: "Total number of swallowed record store write failures",
		},
	)

	// Delivery routing metrics
	RouteBuildsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_route_builds_total",
			Help: "Total number of route build attempts",
		},
		[]string{"result"},
	)

	RouteStopsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_route_stops_total",
			Help: "Total number of resolved stops placed on built routes",
		},
	)

	// Reporting metrics
	ReportRequestsCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_report_requests_total",
			Help: "Total number of day-end report requests",
		},
	)

	// Backup metrics
	BackupOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_backup_operations_total",
			Help: "Total number of backup import/export operations",
		},
		[]string{"operation", "result"},
	)
}

// RecordOperation increments the counter for record store operations
func RecordOperation(collection string, operation string) {
	RecordOperationsCounter.WithLabelValues(collection, operation).Inc()
}

// RecordRouteBuild increments the counter for route builds and tracks stop counts
func RecordRouteBuild(result string, stops int) {
	RouteBuildsCounter.WithLabelValues(result).Inc()
	if stops > 0 {
		RouteStopsTotal.Add(float64(stops))
	}
}

// RecordBackupOperation increments the counter for backup operations
func RecordBackupOperation(operation string, result string) {
	BackupOperationsCounter.WithLabelValues(operation, result).Inc()
}

// RecordStoreWriteFailure increments the swallowed-write-failure counter
func RecordStoreWriteFailure() {
	StoreWriteFailures.Inc()
}
