// Package metrics defines and registers all custom Prometheus metrics for the
// Front Ridge site API. It is the single source of truth for metric names,
// labels, and help strings.
//
// Metrics register with the default Prometheus registry at import time; the
// router exposes them on /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "frontridge"

// ── Auth metrics ──────────────────────────────────────────────────────────────

// LoginAttemptsTotal counts admin login attempts.
// Label:
//   - result: "success", "denied", or "error"
var LoginAttemptsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "login_attempts_total",
		Help:      "Total number of admin login attempts, by result.",
	},
	[]string{"result"},
)

// ── Works metrics ─────────────────────────────────────────────────────────────

// WorksOperationsTotal counts works CRUD operations.
// Labels:
//   - op: "list", "create", "update", or "delete"
//   - result: "ok" or "error"
var WorksOperationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "works_operations_total",
		Help:      "Total number of works CRUD operations, by operation and result.",
	},
	[]string{"op", "result"},
)

// WorksCacheRequestsTotal counts reads of the works list cache.
// Label:
//   - result: "hit", "miss", or "error"
var WorksCacheRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "works_cache_requests_total",
		Help:      "Total number of works cache reads, by result.",
	},
	[]string{"result"},
)

// ── Upload metrics ────────────────────────────────────────────────────────────

// UploadsTotal counts image upload attempts.
// Label:
//   - result: "ok", "rejected" (validation), or "error" (provider/config)
var UploadsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "uploads_total",
		Help:      "Total number of image upload attempts, by result.",
	},
	[]string{"result"},
)

// UploadBytes measures the size of accepted uploads.
var UploadBytes = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "upload_bytes",
		Help:      "Size distribution of accepted image uploads.",
		Buckets:   prometheus.ExponentialBuckets(64<<10, 4, 8), // 64KiB .. 1TiB tail
	},
)

// ── Contact metrics ───────────────────────────────────────────────────────────

// ContactMessagesTotal counts contact form submissions.
// Label:
//   - result: "ok", "rejected", or "error"
var ContactMessagesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "contact_messages_total",
		Help:      "Total number of contact form submissions, by result.",
	},
	[]string{"result"},
)
