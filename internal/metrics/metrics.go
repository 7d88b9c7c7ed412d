package metrics

import (
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SchedulerRunsTotal counts scheduler job runs by job and outcome
	SchedulerRunsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "custody_scheduler_runs_total",
			Help: "Total number of scheduler job runs",
		},
		[]string{"job", "status"},
	)

	// SchedulerRunDuration tracks job run time
	SchedulerRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "custody_scheduler_run_duration_seconds",
			Help:    "Scheduler job run duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"job"},
	)

	// SchedulerSkipsTotal counts ticks skipped because the previous run was still in flight
	SchedulerSkipsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "custody_scheduler_skips_total",
			Help: "Total number of scheduler ticks skipped due to an overlapping run",
		},
		[]string{"job"},
	)

	// AddressesIssued counts derived and persisted managed addresses
	AddressesIssued = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "custody_addresses_issued_total",
			Help: "Total number of managed addresses issued",
		},
	)

	// TransactionsDispatched counts outbound transactions by asset kind and resulting status
	TransactionsDispatched = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "custody_transactions_dispatched_total",
			Help: "Total number of outbound transactions dispatched",
		},
		[]string{"kind", "status"},
	)

	// TransactionsFinalized counts finalized transactions by outcome
	TransactionsFinalized = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "custody_transactions_finalized_total",
			Help: "Total number of transactions that reached a terminal state",
		},
		[]string{"status"},
	)

	// StuckTransactions is the number of transactions waiting for confirmation longer than the configured limit
	StuckTransactions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "custody_stuck_transactions",
			Help: "Number of started transactions older than the stuck threshold",
		},
	)

	// DepositsValidated counts deposit validations by outcome
	DepositsValidated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "custody_deposits_validated_total",
			Help: "Total number of deposit validation attempts",
		},
		[]string{"kind", "status"},
	)

	// RPCCallsTotal counts chain gateway calls by method and classified status
	RPCCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "custody_rpc_calls_total",
			Help: "Total number of chain RPC calls",
		},
		[]string{"method", "status"},
	)

	// ErrorsTotal counts errors by component and type
	ErrorsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "custody_errors_total",
			Help: "Total number of errors",
		},
		[]string{"component", "error_type"},
	)
)

// RecordRPCCall records one chain call with its classified status.
func RecordRPCCall(method string, err error) {
	RPCCallsTotal.WithLabelValues(method, ClassifyRPCError(err)).Inc()
}

// ClassifyRPCError buckets an RPC error into a low-cardinality label.
func ClassifyRPCError(err error) string {
	if err == nil {
		return "ok"
	}
	lower := strings.ToLower(err.Error())
	switch {
	case strings.Contains(lower, "not found"):
		return "not_found"
	case strings.Contains(lower, "timeout") || strings.Contains(lower, "deadline exceeded"):
		return "timeout"
	case strings.Contains(lower, "rate limit") || strings.Contains(lower, "429") || strings.Contains(lower, "too many requests"):
		return "rate_limited"
	case strings.Contains(lower, "connection refused") || strings.Contains(lower, "connection reset") ||
		strings.Contains(lower, "no such host") || strings.Contains(lower, "eof"):
		return "network_error"
	default:
		return "error"
	}
}
