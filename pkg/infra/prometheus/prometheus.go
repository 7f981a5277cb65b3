package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

var (
	commonLabels = []string{"server"}

	// Latency buckets in milliseconds
	latencyBuckets = []float64{
		5, 10, 25,
		50, 100, 250,
		500, 1000, 2500,
		5000, 10000, 30000, 60000,
	}

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "openvault_edge_requests_total",
			Help: "Total number of requests processed",
		},
		append(commonLabels, "method", "path", "status"),
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "openvault_edge_latency_ms",
			Help:    "Request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		append(commonLabels, "path"),
	)

	WebsocketConnections = promauto.With(registerer).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "openvault_edge_ws_connections",
			Help: "Number of active websocket connections",
		},
		commonLabels,
	)
)

// Registry exposes the private registry for the metrics endpoint.
func Registry() *prometheus.Registry {
	return registry
}
