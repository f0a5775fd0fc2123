// Package metrics holds the Prometheus collectors of the API process.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "viztube_http_requests_total",
			Help: "Total HTTP requests by route, method and status",
		},
		[]string{"method", "route", "status"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "viztube_http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	ActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "viztube_http_active_requests",
			Help: "Requests currently being served",
		},
	)

	// result is "on" or "off"
	Toggles = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "viztube_toggles_total",
			Help: "Like and subscription toggles by kind and resulting state",
		},
		[]string{"kind", "result"},
	)

	VideoViews = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "viztube_video_views_total",
			Help: "Atomic view increments applied",
		},
	)

	MediaUploads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "viztube_media_uploads_total",
			Help: "Media uploads by detected file type",
		},
		[]string{"type"},
	)
)

func RecordAPIRequest(method, route, status string, d time.Duration) {
	APIRequests.WithLabelValues(method, route, status).Inc()
	APIRequestDuration.WithLabelValues(method, route).Observe(d.Seconds())
}

func TrackActiveRequest(inc bool) {
	if inc {
		ActiveRequests.Inc()
		return
	}
	ActiveRequests.Dec()
}

func RecordToggle(kind string, on bool) {
	result := "off"
	if on {
		result = "on"
	}
	Toggles.WithLabelValues(kind, result).Inc()
}

func RecordView() { VideoViews.Inc() }

func RecordMediaUpload(fileType string) {
	MediaUploads.WithLabelValues(fileType).Inc()
}
