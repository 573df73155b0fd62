package telemetry

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "amath"

// Call outcome label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Metrics records kernel calls on a private Prometheus registry.
type Metrics struct {
	registry  *prometheus.Registry
	duration  *prometheus.HistogramVec
	calls     *prometheus.CounterVec
	inputSize *prometheus.GaugeVec
	workers   *prometheus.GaugeVec
}

// NewMetrics creates the kernel instruments on a fresh registry, so separate
// instances never collide.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "kernel_duration_seconds",
			Help:      "Wall time of a kernel call.",
			Buckets:   prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"operation"}),
		calls: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "kernel_calls_total",
			Help:      "Kernel calls by outcome.",
		}, []string{"operation", "status"}),
		inputSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "kernel_input_size",
			Help:      "Number of input elements of the last kernel call.",
		}, []string{"operation"}),
		workers: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "kernel_workers",
			Help:      "Worker count requested by the last parallel kernel call.",
		}, []string{"operation"}),
	}

	m.registry.MustRegister(m.duration, m.calls, m.inputSize, m.workers)

	return m
}

// Registry exposes the underlying registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Observe records one kernel call.
// workers is 0 for sequential kernels and is then not recorded.
func (m *Metrics) Observe(operation string, size, workers int, elapsed time.Duration, err error) {
	status := StatusOK
	if err != nil {
		status = StatusError
	}

	m.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
	m.calls.WithLabelValues(operation, status).Inc()
	m.inputSize.WithLabelValues(operation).Set(float64(size))
	if workers > 0 {
		m.workers.WithLabelValues(operation).Set(float64(workers))
	}
}

// WriteTextfile writes all metrics to path in the Prometheus text format,
// suitable for the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
