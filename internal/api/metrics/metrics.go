// Package metrics defines and registers all custom Prometheus metrics for the
// classifieds API. It is the single source of truth for metric names, labels,
// and help strings.
//
// The promauto constructors register with the default registry at package
// init, before the HTTP server starts serving /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "marketplace"

// ── Account metrics ───────────────────────────────────────────────────────────

// UsersRegisteredTotal counts successfully created accounts.
var UsersRegisteredTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_registered_total",
		Help:      "Total number of accounts successfully registered.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure". Failures are not broken down further so
//     the metric cannot leak whether a username exists.
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, by result.",
	},
	[]string{"result"},
)

// ── Ad metrics ────────────────────────────────────────────────────────────────

// AdsCreatedTotal counts newly published ads.
var AdsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ads_created_total",
		Help:      "Total number of ads created.",
	},
)

// AdsDeletedTotal counts removed ads (the cascade also removes comments and
// the picture, those are not counted separately here).
var AdsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ads_deleted_total",
		Help:      "Total number of ads deleted.",
	},
)

// CommentsCreatedTotal counts comments added under ads.
var CommentsCreatedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "comments_created_total",
		Help:      "Total number of comments created.",
	},
)

// ── Image metrics ─────────────────────────────────────────────────────────────

// ImageUploadBytes observes the size of stored image payloads (ad pictures and
// avatars alike).
// Label:
//   - kind: "ad" or "avatar"
var ImageUploadBytes = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "image_upload_bytes",
		Help:      "Size distribution of uploaded images.",
		Buckets:   prometheus.ExponentialBuckets(1024, 4, 8), // 1KiB … 16MiB
	},
	[]string{"kind"},
)
