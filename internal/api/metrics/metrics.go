// Package metrics defines and registers all custom Prometheus metrics for
// the employee records API. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics register with the default Prometheus registry at package init and
// are exposed by the /metrics endpoint mounted in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "employee_records"

// ── Identity metrics ──────────────────────────────────────────────────────────

// RegistrationsTotal counts registration attempts.
// Label:
//   - result: "created", "conflict", "invalid" or "error"
var RegistrationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "registrations_total",
		Help:      "Total number of account registration attempts, by result.",
	},
	[]string{"result"},
)

// LoginsTotal counts login attempts. Failed attempts carry a single
// "unauthorized" result on purpose: the metric must not leak more than the
// API response does.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result (success/unauthorized/error).",
	},
	[]string{"result"},
)

// AuthDenialsTotal counts requests rejected by the authorization gate.
// Label:
//   - reason: "missing_credential" (no usable token) or "insufficient_role"
var AuthDenialsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "auth_denials_total",
		Help:      "Total number of requests denied by the authorization gate, by reason.",
	},
	[]string{"reason"},
)

// ── Employee catalog metrics ──────────────────────────────────────────────────

// EmployeeWritesTotal counts employee mutations that reached the store.
// Labels:
//   - operation: "create", "update" or "delete"
//   - result: "ok", "conflict", "invalid" or "error"
var EmployeeWritesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "employee_writes_total",
		Help:      "Total number of employee write operations, by operation and result.",
	},
	[]string{"operation", "result"},
)

// CatalogCacheTotal counts lookup-catalog cache decisions.
// Label:
//   - result: "hit" (served from Redis) or "miss" (loaded from the store)
var CatalogCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "catalog_cache_total",
		Help:      "Total number of lookup catalog reads, labelled by cache result (hit/miss).",
	},
	[]string{"result"},
)
