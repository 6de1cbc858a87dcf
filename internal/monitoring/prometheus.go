package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
)

const (
	statusOK     = "ok"
	statusFailed = "failed"
)

var (
	operationsDesc = prometheus.NewDesc(
		"dataseries_operations_total",
		"Number of recorded series operations.",
		[]string{"operation", "status"}, nil,
	)
	entriesDesc = prometheus.NewDesc(
		"dataseries_operation_entries_total",
		"Number of series entries touched by recorded operations.",
		[]string{"operation"}, nil,
	)
	durationDesc = prometheus.NewDesc(
		"dataseries_operation_duration_seconds_total",
		"Total time spent in recorded operations.",
		[]string{"operation"}, nil,
	)
	allocatedDesc = prometheus.NewDesc(
		"dataseries_operation_allocated_bytes_total",
		"Bytes allocated while recorded operations ran.",
		[]string{"operation"}, nil,
	)
)

// Exporter exposes a MetricsCollector to Prometheus. Values are computed
// from the recorded operations at scrape time.
type Exporter struct {
	collector *MetricsCollector
}

// NewExporter creates an exporter over collector.
func NewExporter(collector *MetricsCollector) *Exporter {
	return &Exporter{collector: collector}
}

// Describe implements prometheus.Collector.
func (e *Exporter) Describe(ch chan<- *prometheus.Desc) {
	ch <- operationsDesc
	ch <- entriesDesc
	ch <- durationDesc
	ch <- allocatedDesc
}

type operationTotals struct {
	ok, failed int
	entries    int64
	seconds    float64
	allocated  int64
}

// Collect implements prometheus.Collector.
func (e *Exporter) Collect(ch chan<- prometheus.Metric) {
	totals := make(map[string]*operationTotals)
	for _, m := range e.collector.GetMetrics() {
		t, ok := totals[m.Operation]
		if !ok {
			t = &operationTotals{}
			totals[m.Operation] = t
		}
		if m.Failed {
			t.failed++
		} else {
			t.ok++
		}
		t.entries += m.EntriesAffected
		t.seconds += m.Duration.Seconds()
		t.allocated += m.MemoryUsed
	}

	for op, t := range totals {
		ch <- prometheus.MustNewConstMetric(operationsDesc, prometheus.CounterValue, float64(t.ok), op, statusOK)
		ch <- prometheus.MustNewConstMetric(operationsDesc, prometheus.CounterValue, float64(t.failed), op, statusFailed)
		ch <- prometheus.MustNewConstMetric(entriesDesc, prometheus.CounterValue, float64(t.entries), op)
		ch <- prometheus.MustNewConstMetric(durationDesc, prometheus.CounterValue, t.seconds, op)
		ch <- prometheus.MustNewConstMetric(allocatedDesc, prometheus.CounterValue, float64(t.allocated), op)
	}
}
