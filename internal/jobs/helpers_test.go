package jobs_test

import (
	"io"
	"log/slog"
	"testing"

	"furniture/internal/jobs"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"
)

func newTestMetrics() *jobs.Metrics {
	return jobs.NewMetrics(prometheus.NewRegistry())
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func counterValue(t *testing.T, vec *prometheus.CounterVec, outcome string) float64 {
	t.Helper()

	m := &dto.Metric{}
	require.NoError(t, vec.WithLabelValues(outcome).Write(m))
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()

	m := &dto.Metric{}
	require.NoError(t, gauge.Write(m))
	return m.GetGauge().GetValue()
}
