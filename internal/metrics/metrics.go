package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	APICallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "temanramadhan_api_calls_total",
			Help: "Total upstream API calls",
		},
		[]string{"source", "endpoint", "status"},
	)

	APILatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "temanramadhan_api_latency_seconds",
			Help:    "Upstream API call latency in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source", "endpoint"},
	)

	ReadingsIngested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "temanramadhan_readings_ingested_total",
			Help: "Total weather and marine readings successfully ingested",
		},
		[]string{"source"},
	)

	ScoresComputed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "temanramadhan_scores_computed_total",
			Help: "Total score-history rows computed from fresh readings",
		},
	)

	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "temanramadhan_http_requests_total",
			Help: "Total HTTP API requests",
		},
		[]string{"handler", "status"},
	)
)
