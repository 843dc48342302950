// Package metrics defines and registers the custom Prometheus metrics for the
// sweet shop API. It is the single source of truth for metric names, labels,
// and help strings; registration happens via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "sweetshop"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// RegistrationsTotal counts successful registrations by role.
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of user registrations, by role.",
	},
	[]string{"role"},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Inventory metrics ─────────────────────────────────────────────────────────

// PurchasesTotal counts completed purchases by sweet category.
var PurchasesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_total",
		Help:      "Total number of completed purchases, by category.",
	},
	[]string{"category"},
)

// PurchasesRejectedTotal counts purchases rejected because the item was out
// of stock.
var PurchasesRejectedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "purchases_rejected_total",
		Help:      "Total number of purchases rejected for lack of stock.",
	},
)

// RestocksTotal counts restock operations by sweet category.
var RestocksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "restocks_total",
		Help:      "Total number of restock operations, by category.",
	},
	[]string{"category"},
)
