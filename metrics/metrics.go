package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// HTTP request metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	// Sale transaction outcomes
	SalesCompletedCounter prometheus.Counter
	SalesRejectedCounter  *prometheus.CounterVec

	// Database operation metrics
	DBOperationDuration *prometheus.HistogramVec
)

// Init registers all metrics under the configured prefix.
func Init(prefix string) {
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	SalesCompletedCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_sales_completed_total",
			Help: "Total number of committed sale transactions",
		},
	)

	SalesRejectedCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_sales_rejected_total",
			Help: "Total number of rejected sale transactions",
		},
		[]string{"reason"},
	)

	DBOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)
}

// TrackDBOperation returns a function that records the duration of a
// database operation.
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		DBOperationDuration.WithLabelValues(operationType).Observe(time.Since(startTime).Seconds())
	}
}

// RecordSaleCompleted increments the committed-sale counter.
func RecordSaleCompleted() {
	SalesCompletedCounter.Inc()
}

// RecordSaleRejected increments the rejection counter for a failure reason.
func RecordSaleRejected(reason string) {
	SalesRejectedCounter.WithLabelValues(reason).Inc()
}
