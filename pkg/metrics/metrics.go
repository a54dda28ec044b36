// Package metrics exposes Prometheus metrics for fakes generation runs.
//
// # Overview
//
// The package provides:
//   - Counters for generated records, values, scan errors and written bytes
//   - A latency histogram per run phase
//   - A Timer helper and a text exposition dump for short-lived CLI runs
//
// # Basic Usage
//
//	timer := metrics.NewTimer("generate")
//	records := f.GenDataSet(n, columns)
//	metrics.PhaseLatency.WithLabelValues("generate").Observe(timer.Stop().Seconds())
//
//	// At exit, when --metrics is set
//	_ = metrics.Dump(os.Stderr)
//
// All metrics are registered with the default Prometheus registry on import.
package metrics

import (
	"fmt"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/common/expfmt"
)

// Prometheus metrics
var (
	// RecordsGenerated counts generated records.
	// Labels: locale
	RecordsGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fakes_records_generated_total",
			Help: "Total number of records generated",
		},
		[]string{"locale"},
	)

	// ValuesGenerated counts generated column values.
	// Labels: category (Lorem, Name, Primitive, ...)
	ValuesGenerated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fakes_values_generated_total",
			Help: "Total number of column values generated",
		},
		[]string{"category"},
	)

	// ScanErrors counts rejected option expressions.
	// Labels: kind (UnknownCategory, RangeErr, ...)
	ScanErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fakes_scan_errors_total",
			Help: "Total number of option expressions rejected by the scanner",
		},
		[]string{"kind"},
	)

	// OutputBytes counts bytes handed to the output writer before compression.
	// Labels: converter, compression
	OutputBytes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fakes_output_bytes_total",
			Help: "Total number of rendered bytes written",
		},
		[]string{"converter", "compression"},
	)

	// PhaseLatency tracks the duration of each run phase in seconds.
	// Labels: phase (locale, scan, generate, write, dataset)
	PhaseLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "fakes_phase_duration_seconds",
			Help: "Duration of generation run phases in seconds",
			Buckets: []float64{
				1e-5, // 10μs
				1e-4, // 100μs
				1e-3, // 1ms
				1e-2, // 10ms
				1e-1, // 100ms
				1,    // 1s
				10,   // 10s
			},
		},
		[]string{"phase"},
	)
)

// Timer provides a simple timing mechanism for measuring operation durations.
type Timer struct {
	start time.Time
	name  string
}

// NewTimer creates a new timer and starts timing immediately.
func NewTimer(name string) *Timer {
	return &Timer{
		start: time.Now(),
		name:  name,
	}
}

// Name returns the name the timer was created with.
func (t *Timer) Name() string {
	return t.name
}

// Stop returns the elapsed duration since creation. It can be called more than once.
func (t *Timer) Stop() time.Duration {
	return time.Since(t.start)
}

// ObservePhase stops t and records it in PhaseLatency under the timer name.
func (t *Timer) ObservePhase() time.Duration {
	d := t.Stop()
	PhaseLatency.WithLabelValues(t.name).Observe(d.Seconds())
	return d
}

// Dump writes every metric of the default registry to w in the Prometheus
// text exposition format.
func Dump(w io.Writer) error {
	return DumpFrom(prometheus.DefaultGatherer, w)
}

// DumpFrom writes the metrics of g to w in the Prometheus text exposition format.
func DumpFrom(g prometheus.Gatherer, w io.Writer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	enc := expfmt.NewEncoder(w, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range families {
		if err := enc.Encode(mf); err != nil {
			return fmt.Errorf("failed to encode metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
