package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	// storeOps counts persistence operations by operation name and outcome
	// ("ok", "noop", or an error kind such as "storage_unavailable").
	storeOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "store_operations_total",
			Help: "Total number of user-state store operations.",
		},
		[]string{"op", "outcome"},
	)

	// storeLat records store operation latency in seconds by operation name.
	storeLat = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "store_operation_duration_seconds",
			Help:    "Duration of user-state store operations in seconds.",
			Buckets: []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"op"},
	)

	// webSearchCalls counts upstream web-search calls by result.
	webSearchCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "web_search_requests_total",
			Help: "Total number of upstream web-search calls.",
		},
		[]string{"result"},
	)

	// janitorDeleted counts rows removed by the maintenance janitor.
	janitorDeleted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "janitor_deleted_rows_total",
			Help: "Rows deleted by scheduled maintenance, by table.",
		},
		[]string{"table"},
	)
)

func init() {
	prometheus.MustRegister(storeOps, storeLat, webSearchCalls, janitorDeleted)
}

// ObserveStoreOp records one store operation.
func ObserveStoreOp(op, outcome string, d time.Duration) {
	storeOps.WithLabelValues(op, outcome).Inc()
	storeLat.WithLabelValues(op).Observe(d.Seconds())
}

// ObserveWebSearch records one upstream web-search call ("ok" or "error").
func ObserveWebSearch(result string) {
	webSearchCalls.WithLabelValues(result).Inc()
}

// ObserveJanitorDeleted adds n deleted rows for table.
func ObserveJanitorDeleted(table string, n int64) {
	if n > 0 {
		janitorDeleted.WithLabelValues(table).Add(float64(n))
	}
}
