// Package metrics defines and registers the custom Prometheus metrics of the
// inventory console API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics are registered with the default registry at package init through
// promauto; HTTP request metrics come from the echoprometheus middleware.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "inventory"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts login attempts.
// Label:
//   - result: "success", "unknown_user" or "bad_password"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// GuardRejectionsTotal counts requests refused by the access guard.
// Label:
//   - reason: "unauthenticated", "invalid_token" or "forbidden"
var GuardRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_rejections_total",
		Help:      "Total number of requests rejected by the access guard.",
	},
	[]string{"reason"},
)

// ── Catalog metrics ───────────────────────────────────────────────────────────

// ProductMutationsTotal counts successful catalog mutations.
// Label:
//   - op: "insert", "update" or "delete"
var ProductMutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "product_mutations_total",
		Help:      "Total number of successful product mutations, by operation.",
	},
	[]string{"op"},
)

// AssetDeleteFailuresTotal counts swallowed image deletion failures.
var AssetDeleteFailuresTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "asset_delete_failures_total",
		Help:      "Total number of image asset deletions that failed and were ignored.",
	},
)

// ── Order metrics ─────────────────────────────────────────────────────────────

// OrdersProcessedTotal counts orders received.
// Label:
//   - stock_updated: "true" when the payment method decremented stock
var OrdersProcessedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_processed_total",
		Help:      "Total number of orders processed.",
	},
	[]string{"stock_updated"},
)

// StockClampedTotal counts cart lines whose quantity exceeded stock and were floored at zero.
var StockClampedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stock_clamped_total",
		Help:      "Total number of cart lines that would have driven stock negative.",
	},
)

// ── Export metrics ────────────────────────────────────────────────────────────

// ExportRowsTotal counts product rows written to spreadsheet exports.
var ExportRowsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "export_rows_total",
		Help:      "Total number of product rows exported to spreadsheets.",
	},
)
