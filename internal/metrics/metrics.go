package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "galleria_http_requests_total",
			Help: "Number of HTTP requests processed, by method, path and status.",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "galleria_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)

	IngestEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "galleria_ingest_events_total",
			Help: "Number of message events handled, by kind and outcome.",
		},
		[]string{"kind", "outcome"},
	)

	PostsWrittenTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "galleria_posts_written_total",
			Help: "Number of gallery posts inserted or deleted.",
		},
		[]string{"operation"},
	)
)
