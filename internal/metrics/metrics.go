package metrics

import (
	"database/sql"

	"github.com/dlmiddlecote/sqlstats"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Service owns the prometheus registry and the custody domain counters.
type Service struct {
	Registry *prometheus.Registry

	DepositsIngested      prometheus.Counter
	DepositsConfirmed     prometheus.Counter
	DepositsFailed        prometheus.Counter
	SweepJobsPlanned      prometheus.Counter
	SweepJobsBroadcasted  prometheus.Counter
	SweepJobsFailed       prometheus.Counter
	WithdrawalsCreated    prometheus.Counter
	WithdrawalsConfirmed  prometheus.Counter
	WithdrawalsFailed     prometheus.Counter
	GatewayRetries        prometheus.Counter
	HotWalletLowBalance   prometheus.Counter
	BroadcastsByChainType *prometheus.CounterVec
}

func New(db *sql.DB) *Service {
	registry := prometheus.NewRegistry()

	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(sqlstats.NewStatsCollector("custody", db))

	s := &Service{
		Registry: registry,

		DepositsIngested: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "custody_deposits_ingested_total",
			Help: "Deposits ingested as pending.",
		}),
		DepositsConfirmed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "custody_deposits_confirmed_total",
			Help: "Deposits that reached their required confirmations.",
		}),
		DepositsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "custody_deposits_failed_total",
			Help: "Deposits that failed or timed out.",
		}),
		SweepJobsPlanned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "custody_sweep_jobs_planned_total",
			Help: "Sweep jobs created by the planner.",
		}),
		SweepJobsBroadcasted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "custody_sweep_jobs_broadcasted_total",
			Help: "Sweep transactions broadcast to chain.",
		}),
		SweepJobsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "custody_sweep_jobs_failed_total",
			Help: "Sweep jobs that ended in failure.",
		}),
		WithdrawalsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "custody_withdrawals_created_total",
			Help: "Withdrawals accepted from users.",
		}),
		WithdrawalsConfirmed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "custody_withdrawals_confirmed_total",
			Help: "Withdrawals settled on chain.",
		}),
		WithdrawalsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "custody_withdrawals_failed_total",
			Help: "Withdrawals that failed and were refunded.",
		}),
		GatewayRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "custody_gateway_retries_total",
			Help: "RPC calls retried after a retryable error.",
		}),
		HotWalletLowBalance: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "custody_hot_wallet_low_balance_alerts_total",
			Help: "Low balance alerts sent for hot wallets.",
		}),
		BroadcastsByChainType: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "custody_broadcasts_total",
			Help: "Raw transactions broadcast, by chain type.",
		}, []string{"chain_type"}),
	}

	registry.MustRegister(
		s.DepositsIngested,
		s.DepositsConfirmed,
		s.DepositsFailed,
		s.SweepJobsPlanned,
		s.SweepJobsBroadcasted,
		s.SweepJobsFailed,
		s.WithdrawalsCreated,
		s.WithdrawalsConfirmed,
		s.WithdrawalsFailed,
		s.GatewayRetries,
		s.HotWalletLowBalance,
		s.BroadcastsByChainType,
	)

	return s
}
