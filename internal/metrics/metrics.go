package metrics

import (
	"strconv"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "tourtravel"

var (
	once sync.Once

	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		},
		[]string{"route", "method", "status"},
	)

	httpLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"route"},
	)

	gatewayCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "gateway_calls_total",
			Help:      "Payment gateway calls by operation and outcome.",
		},
		[]string{"op", "outcome"},
	)

	bookingTransitions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "booking_transitions_total",
			Help:      "Booking status changes by action and resulting status.",
		},
		[]string{"action", "status"},
	)
)

// Register registers the collectors with the default registry. Safe to call
// multiple times.
func Register() {
	once.Do(func() {
		prometheus.MustRegister(httpRequests, httpLatency, gatewayCalls, bookingTransitions)
	})
}

func ObserveHTTP(route, method string, status int, seconds float64) {
	if route == "" {
		route = "unmatched"
	}
	httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	httpLatency.WithLabelValues(route).Observe(seconds)
}

func IncGateway(op, outcome string) {
	gatewayCalls.WithLabelValues(op, outcome).Inc()
}

func IncTransition(action, status string) {
	bookingTransitions.WithLabelValues(action, status).Inc()
}
