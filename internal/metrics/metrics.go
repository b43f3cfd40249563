package metrics

import "github.com/prometheus/client_golang/prometheus"

// Prometheus metrics for observing simulation runs
var (
	SimulationRunsTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fleetsim_simulation_runs_total",
			Help: "Total number of simulation runs started",
		},
	)

	SimulationRunsAbortedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fleetsim_simulation_runs_aborted_total",
			Help: "Total number of simulation runs aborted before commit",
		},
	)

	OrdersDecidedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fleetsim_orders_decided_total",
			Help: "Total number of orders delivered or marked late across runs",
		},
	)

	OrdersUnassignedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fleetsim_orders_unassigned_total",
			Help: "Total number of orders left unassigned due to exhausted capacity",
		},
	)

	OrdersSkippedTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "fleetsim_orders_skipped_total",
			Help: "Total number of orders skipped over unresolvable route references",
		},
	)

	RunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "fleetsim_run_duration_seconds",
			Help:    "Duration of complete simulation runs including commit",
			Buckets: prometheus.DefBuckets,
		},
	)
)

// Register registers all Prometheus metrics
func Register() {
	prometheus.MustRegister(SimulationRunsTotal)
	prometheus.MustRegister(SimulationRunsAbortedTotal)
	prometheus.MustRegister(OrdersDecidedTotal)
	prometheus.MustRegister(OrdersUnassignedTotal)
	prometheus.MustRegister(OrdersSkippedTotal)
	prometheus.MustRegister(RunDuration)
}
