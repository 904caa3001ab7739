// Package metrics holds the Prometheus collectors exported by the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager groups the service's Prometheus collectors.
type Manager struct {
	// counters
	CounterRequests           *prometheus.CounterVec
	CounterFetchFailures      *prometheus.CounterVec
	CounterHandleRequestPanic prometheus.Counter

	// histograms
	HistRequestDuration     prometheus.Histogram
	HistAggregationDuration *prometheus.HistogramVec
}

// NewTestManager returns a Manager registered on a private registry.
func NewTestManager() *Manager {
	return NewManager("fitstats", "test", prometheus.NewRegistry())
}

// NewManager creates the collectors and registers them on reg. It panics if
// a collector is already registered.
func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	return &Manager{
		CounterRequests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request",
			Help:      "The total number of incoming requests",
		}, []string{"method", "status"}),
		CounterFetchFailures: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "fetch_failures",
			Help:      "The total number of failed metric source reads",
		}, []string{"source"}),
		CounterHandleRequestPanic: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "handle_request_panic",
			Help:      "The total number of serve request panics",
		}),
		HistRequestDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}),
		HistAggregationDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "aggregation_duration_seconds",
			Help:      "Duration of statistics queries, fetches included",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"query"}),
	}
}
