// Package metrics defines all custom Prometheus metrics for the BrainArk
// session core. It is the single source of truth for metric names, labels,
// and help strings; metrics self-register via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "brainark"

// ── Booking metrics ───────────────────────────────────────────────────────────

// BookingsCreatedTotal counts bookings appended to the ledger.
// Label:
//   - report_type: "Child" or "Adult"
var BookingsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "bookings_created_total",
		Help:      "Total number of bookings created, by report type.",
	},
	[]string{"report_type"},
)

// PaymentsConfirmedTotal counts pending bookings moved to confirmed.
var PaymentsConfirmedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "payments_confirmed_total",
		Help:      "Total number of out-of-band payment confirmations applied.",
	},
)

// ── Forum metrics ─────────────────────────────────────────────────────────────

// PostsCreatedTotal counts published community posts.
// Label:
//   - category: post category (e.g. "Stream Selection")
var PostsCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "posts_created_total",
		Help:      "Total number of community posts published, by category.",
	},
	[]string{"category"},
)

// PostLikesTotal counts like increments across all posts.
var PostLikesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "post_likes_total",
		Help:      "Total number of post like increments.",
	},
)

// ── Session metrics ───────────────────────────────────────────────────────────

// NotificationsEmittedTotal counts notifications raised by the session
// facade.
// Label:
//   - variant: "default" (success) or "destructive" (failure)
var NotificationsEmittedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_emitted_total",
		Help:      "Total number of user-facing notifications emitted, by variant.",
	},
	[]string{"variant"},
)
