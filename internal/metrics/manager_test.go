package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManagerRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewManager("fitstats", "unit", reg)

	m.CounterRequests.WithLabelValues("GET", "200").Inc()
	m.CounterFetchFailures.WithLabelValues("water").Inc()
	m.CounterFetchFailures.WithLabelValues("water").Inc()
	m.HistAggregationDuration.WithLabelValues("overview").Observe(0.02)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterFetchFailures.WithLabelValues("water")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterRequests.WithLabelValues("GET", "200")))

	families, err := reg.Gather()
	require.NoError(t, err)
	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "fitstats_unit_fetch_failures")
	assert.Contains(t, names, "fitstats_unit_aggregation_duration_seconds")
}

func TestNewTestManagerIsIsolated(t *testing.T) {
	// Two managers must not collide on a shared registry.
	assert.NotPanics(t, func() {
		_ = NewTestManager()
		_ = NewTestManager()
	})
}
