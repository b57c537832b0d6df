package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	MetricsNamespace = "reporter"

	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	errorsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "errors_total",
		Help:      "Count of errors",
	}, []string{
		"error",
	})

	reportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: MetricsNamespace,
		Name:      "reports_total",
		Help:      "Count of generated reports",
	}, []string{
		"result",
	})

	generationSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: MetricsNamespace,
		Name:      "generation_seconds",
		Help:      "Report generation duration in seconds",
		Buckets:   prometheus.DefBuckets,
	})
)

// RecordReport records the outcome and duration of one report generation.
func RecordReport(result string, duration time.Duration) {
	reportsTotal.WithLabelValues(result).Inc()
	generationSeconds.Observe(duration.Seconds())
}

// RecordError increments the error counter for the given error class.
func RecordError(errorClass string) {
	errorsTotal.WithLabelValues(errorClass).Inc()
}
