// Package monitoring provides Prometheus metrics for the scaling service.
package monitoring

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	scaleOperationsTotal  *prometheus.CounterVec
	quantitiesParsedTotal *prometheus.CounterVec
	recipesImportedTotal  prometheus.Counter
}

// NewMetrics creates metrics registered against the default registry
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith creates metrics registered against reg. Tests pass a fresh
// registry so repeated construction does not collide.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)

	return &Metrics{
		httpRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pantrypilot_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		httpRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pantrypilot_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
		scaleOperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pantrypilot_scale_operations_total",
				Help: "Total number of scaling operations by outcome",
			},
			[]string{"operation", "outcome"},
		),
		quantitiesParsedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pantrypilot_quantities_parsed_total",
				Help: "Total number of parsed ingredient lines by result",
			},
			[]string{"found"},
		),
		recipesImportedTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "pantrypilot_recipes_imported_total",
				Help: "Total number of recipes imported from model responses",
			},
		),
	}
}

// RecordRequest records an HTTP request
func (m *Metrics) RecordRequest(method, path string, status int, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordScaleOperation records a scaling operation outcome
func (m *Metrics) RecordScaleOperation(operation string, err error) {
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	m.scaleOperationsTotal.WithLabelValues(operation, outcome).Inc()
}

// RecordParse records a parse result
func (m *Metrics) RecordParse(found bool) {
	m.quantitiesParsedTotal.WithLabelValues(strconv.FormatBool(found)).Inc()
}

// RecordRecipeImport records a successful recipe import
func (m *Metrics) RecordRecipeImport() {
	m.recipesImportedTotal.Inc()
}
