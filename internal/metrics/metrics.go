// Package metrics holds the Prometheus collectors shared by the dashboard components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "nebula_dashboard"

var (
	// SessionErrors counts errors recorded by the wallet session, by kind
	// (connect, disconnect, balance, sign, send).
	SessionErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "wallet",
		Name:      "errors_total",
		Help:      "Errors recorded by the wallet session.",
	}, []string{"kind"})

	// BalanceQueries counts native balance queries that reached the RPC.
	BalanceQueries = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "wallet",
		Name:      "balance_queries_total",
		Help:      "Native balance queries sent to the RPC endpoint.",
	}, []string{"network", "result"})

	Connected = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: "wallet",
		Name:      "connected",
		Help:      "1 while a wallet session is connected.",
	})

	RefreshDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "portfolio",
		Name:      "refresh_duration_seconds",
		Help:      "Time spent computing a token balance snapshot.",
		Buckets:   prometheus.DefBuckets,
	})

	// StaleRefreshes counts snapshots discarded because a newer refresh had started.
	StaleRefreshes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "portfolio",
		Name:      "stale_refreshes_total",
		Help:      "Refresh results discarded in favour of a newer refresh.",
	})

	FilterRuns = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "explorer",
		Name:      "filter_runs_total",
		Help:      "Record filter evaluations.",
	})
)
