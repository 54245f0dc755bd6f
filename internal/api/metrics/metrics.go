// Package metrics defines and registers all custom Prometheus metrics
// for the waste-mgmt services. It is the single source of truth for
// metric names, labels, and help strings. Registration happens at
// import time via promauto against the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "waste_mgmt"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// SignupsTotal counts successful principal registrations.
// Label:
//   - kind: "user" or "vendor"
var SignupsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "signups_total",
		Help:      "Total number of successful signups, by principal kind.",
	},
	[]string{"kind"},
)

// LoginsTotal counts login attempts.
// Labels:
//   - kind: "user" or "vendor"
//   - outcome: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by principal kind and outcome.",
	},
	[]string{"kind", "outcome"},
)

// TokenVerificationsTotal counts local session-token verifications.
// Label:
//   - result: "valid" or "invalid"
var TokenVerificationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_verifications_total",
		Help:      "Total number of session token verifications, by result.",
	},
	[]string{"result"},
)

// ── Order-service metrics ─────────────────────────────────────────────────────

// OrdersCreatedTotal counts created pickup order lines.
var OrdersCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "orders_created_total",
		Help:      "Total number of pickup order lines created.",
	},
)

// IdentityCacheTotal counts verdict-cache lookups in the token relay.
// Label:
//   - result: "hit" or "miss"
var IdentityCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "identity_cache_total",
		Help:      "Total number of identity verdict cache lookups, by result.",
	},
	[]string{"result"},
)

// IdentityResolutionDuration measures remote identity-resolution round-trips.
// Label:
//   - outcome: "ok", "invalid", or "unavailable"
var IdentityResolutionDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "identity_resolution_duration_seconds",
		Help:      "Duration of remote identity resolution calls to the auth service.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"outcome"},
)
