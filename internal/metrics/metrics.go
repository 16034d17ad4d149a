package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Lookup outcomes.
const (
	OutcomeMatched   = "matched"
	OutcomeUnmatched = "unmatched"
)

// Generation outcomes.
const (
	OutcomeSuccess  = "success"
	OutcomeFailure  = "failure"
	OutcomeCanceled = "canceled"
)

var (
	lookupsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketassist_lookups_total",
			Help: "Total suggestion table lookups by outcome",
		},
		[]string{"outcome"},
	)

	generationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ticketassist_generations_total",
			Help: "Total text generation calls by provider and outcome",
		},
		[]string{"provider", "outcome"},
	)

	tableRowsDesc = prometheus.NewDesc(
		"ticketassist_suggestion_table_rows",
		"Number of rows in the loaded suggestion table",
		nil,
		nil,
	)
)

// Sizer is anything reporting a row count.
type Sizer interface {
	Len() int
}

// TableCollector reports the size of the suggestion table on each scrape.
type TableCollector struct {
	table Sizer
}

// Describe sends the metric descriptor to the channel.
func (c *TableCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- tableRowsDesc
}

// Collect emits the current row count as a gauge.
func (c *TableCollector) Collect(ch chan<- prometheus.Metric) {
	rows := 0
	if c.table != nil {
		rows = c.table.Len()
	}
	ch <- prometheus.MustNewConstMetric(tableRowsDesc, prometheus.GaugeValue, float64(rows))
}

var initOnce sync.Once

// Init registers the collectors with the default registry.
// Must be called once at startup; later calls are no-ops.
func Init(table Sizer) {
	initOnce.Do(func() {
		prometheus.MustRegister(lookupsTotal, generationsTotal, &TableCollector{table: table})
	})
}

// RecordLookup counts a table lookup outcome.
func RecordLookup(outcome string) {
	lookupsTotal.WithLabelValues(outcome).Inc()
}

// RecordGeneration counts a generator call outcome.
func RecordGeneration(provider, outcome string) {
	generationsTotal.WithLabelValues(provider, outcome).Inc()
}
