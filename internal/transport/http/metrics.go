package http

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	// RequestsTotalMetric counts outgoing API requests by method and status code.
	RequestsTotalMetric = "api_client_requests_total"
	// RequestDurationMetric observes outgoing API request latency by method.
	RequestDurationMetric = "api_client_request_duration_seconds"
	// InFlightRequestsMetric tracks outgoing API requests that have not completed yet.
	InFlightRequestsMetric = "api_client_in_flight_requests"
)

// ClientMetrics holds the Prometheus collectors used to instrument the API client.
type ClientMetrics struct {
	// Requests counts requests partitioned by "code" and "method".
	Requests *prometheus.CounterVec
	// Duration observes request latency partitioned by "method".
	Duration *prometheus.HistogramVec
	// InFlight is the number of requests currently in flight.
	InFlight prometheus.Gauge
}

// NewClientMetrics creates the collectors and registers them with the registerer.
// A nil registerer leaves the collectors unregistered.
func NewClientMetrics(registerer prometheus.Registerer) (*ClientMetrics, error) {
	metrics := &ClientMetrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: RequestsTotalMetric,
				Help: "Total number of API requests issued by the client",
			},
			[]string{"code", "method"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    RequestDurationMetric,
				Help:    "Duration of API requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		InFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: InFlightRequestsMetric,
				Help: "Number of API requests currently in flight",
			},
		),
	}

	if registerer == nil {
		return metrics, nil
	}

	for _, collector := range []prometheus.Collector{metrics.Requests, metrics.Duration, metrics.InFlight} {
		if err := registerer.Register(collector); err != nil {
			return nil, fmt.Errorf("failed to register client metrics: %w", err)
		}
	}

	return metrics, nil
}

// NewMetricsTransport wraps next with Prometheus instrumentation.
func NewMetricsTransport(next http.RoundTripper, metrics *ClientMetrics) http.RoundTripper {
	return promhttp.InstrumentRoundTripperInFlight(metrics.InFlight,
		promhttp.InstrumentRoundTripperCounter(metrics.Requests,
			promhttp.InstrumentRoundTripperDuration(metrics.Duration, next),
		),
	)
}
