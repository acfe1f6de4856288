// Package metrics defines and registers all custom Prometheus metrics for
// the childcare platform API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default registry on import; the router exposes
// them through the echoprometheus handler at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "childcare"

// ── Authentication metrics ────────────────────────────────────────────────────

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)

// RegistrationsTotal counts created accounts.
// Label:
//   - role: the role of the new account (admin, manager, caregiver, parent)
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of accounts created, by role.",
	},
	[]string{"role"},
)

// TokensRevokedTotal counts tokens put on the denylist by logout.
var TokensRevokedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_revoked_total",
		Help:      "Total number of tokens revoked via logout.",
	},
)

// ── Activity pipeline metrics ─────────────────────────────────────────────────

// ActivityEventsTotal counts activity events that were persisted.
// Label:
//   - action: the recorded action (e.g. "logged_in", "profile_updated")
var ActivityEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_events_total",
		Help:      "Total number of activity events successfully persisted.",
	},
	[]string{"action"},
)

// ActivityErrorsTotal counts activity events that were lost.
// Label:
//   - reason: "queue_full" or "persist_failed"
var ActivityErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "activity_errors_total",
		Help:      "Total number of activity events dropped or failed.",
	},
	[]string{"reason"},
)

// ActivityQueueDepth tracks pending events per dispatcher worker.
// Label:
//   - worker_id: numeric worker index ("0", "1", …)
var ActivityQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "activity_queue_depth",
		Help:      "Current number of activity events pending per worker channel.",
	},
	[]string{"worker_id"},
)
