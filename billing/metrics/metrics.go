// Package metrics exposes Prometheus instruments for session billing.
// Labels are bounded enums only; session and account ids never become labels.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/dugiahuy/session-billing/billing/model"
)

var (
	SessionsStartedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "billing_sessions_started_total",
		Help: "Total number of sessions started, by kind and tier.",
	}, []string{"kind", "tier"})

	SessionsRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "billing_sessions_rejected_total",
		Help: "Total number of session starts refused by the safety gate, by kind.",
	}, []string{"kind"})

	SessionsEndedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "billing_sessions_ended_total",
		Help: "Total number of sessions that reached a terminal state, by end reason.",
	}, []string{"reason"})

	// MinutesBilledTotal counts minutes charged to payers.
	MinutesBilledTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "billing_minutes_billed_total",
		Help: "Total number of session minutes billed, by kind.",
	}, []string{"kind"})

	CreditsChargedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "billing_credits_charged_total",
		Help: "Total credits debited from payers, by kind.",
	}, []string{"kind"})

	// CreditsDistributedTotal splits charged credits by recipient; platform+earner equals charged.
	CreditsDistributedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "billing_credits_distributed_total",
		Help: "Total credits credited to recipients, by recipient (platform/earner).",
	}, []string{"recipient"})

	TicksTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "billing_ticks_total",
		Help: "Total number of tick reconciliations, by outcome.",
	}, []string{"outcome"})

	TickDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "billing_tick_duration_seconds",
		Help:    "Latency of a tick reconciliation including its transaction.",
		Buckets: prometheus.DefBuckets,
	})
)

// Tick outcomes.
const (
	OutcomeCharged      = "charged"
	OutcomeNoop         = "noop"
	OutcomeEnded        = "ended"
	OutcomeInsufficient = "insufficient_funds"
	OutcomeError        = "error"
)

func RecordSessionStarted(kind model.SessionKind, tier model.Tier) {
	SessionsStartedTotal.WithLabelValues(string(kind), string(tier)).Inc()
}

func RecordSessionRejected(kind model.SessionKind) {
	SessionsRejectedTotal.WithLabelValues(string(kind)).Inc()
}

func RecordSessionEnded(reason model.EndReason) {
	SessionsEndedTotal.WithLabelValues(string(reason)).Inc()
}

// RecordCharge records one committed charge and its distribution.
func RecordCharge(kind model.SessionKind, minutes, amount, platformAmount, earnerAmount int64) {
	MinutesBilledTotal.WithLabelValues(string(kind)).Add(float64(minutes))
	CreditsChargedTotal.WithLabelValues(string(kind)).Add(float64(amount))
	CreditsDistributedTotal.WithLabelValues("platform").Add(float64(platformAmount))
	CreditsDistributedTotal.WithLabelValues("earner").Add(float64(earnerAmount))
}

func RecordTick(outcome string, started time.Time) {
	TicksTotal.WithLabelValues(outcome).Inc()
	TickDuration.Observe(time.Since(started).Seconds())
}
