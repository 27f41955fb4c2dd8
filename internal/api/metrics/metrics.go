// Package metrics defines and registers all custom Prometheus metrics for the
// ShopEase storefront API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default Prometheus registry at package load
// via promauto, so importing any consumer is enough to expose them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "shopease"

// ── Session metrics ───────────────────────────────────────────────────────────

// LoginsTotal counts successful logins.
// Label:
//   - role: the role of the authenticated identity ("admin", "seller", "customer")
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of successful logins, by role.",
	},
	[]string{"role"},
)

// ActiveSessions tracks the number of sessions currently held in memory.
var ActiveSessions = promauto.NewGauge(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "active_sessions",
		Help:      "Number of authenticated sessions currently cached in memory.",
	},
)

// SessionPersistFailures counts best-effort session writes that were dropped.
// The in-memory session stays valid; this only signals degraded durability.
var SessionPersistFailures = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "session_persist_failures_total",
		Help:      "Total number of session store writes that failed and were dropped.",
	},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersCreatedTotal counts orders created at checkout.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of orders created.",
	},
)

// ── Payment event metrics ─────────────────────────────────────────────────────

// PaymentEventsProcessedTotal counts gateway events that completed processing.
// Labels:
//   - status: the order status applied by the event (e.g. "paid")
//   - source: the event source reported by the gateway (e.g. "stripe")
var PaymentEventsProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_events_processed_total",
		Help:      "Total number of payment gateway events successfully processed.",
	},
	[]string{"status", "source"},
)

// PaymentEventsErrorsTotal counts gateway events that failed processing.
// Label:
//   - reason: short description of the failure (e.g. "invalid_transition", "order_not_found")
var PaymentEventsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_events_errors_total",
		Help:      "Total number of payment gateway events that failed processing.",
	},
	[]string{"reason"},
)

// PaymentEventsDedupTotal counts deduplication decisions.
// Label:
//   - result: "hit" (duplicate, skipped) or "miss" (new event, processed)
var PaymentEventsDedupTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payment_events_dedup_total",
		Help:      "Total number of deduplication checks, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// PaymentQueueDepth tracks events waiting in each dispatcher worker channel.
// Label:
//   - worker_id: numeric worker index (e.g. "0", "1", …)
var PaymentQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "payment_queue_depth",
		Help:      "Current number of events pending in each dispatcher worker channel.",
	},
	[]string{"worker_id"},
)
