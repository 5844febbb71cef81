package observability

import (
	"context"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	errs "github.com/matzehuels/modrinth-go/pkg/errors"
)

const (
	metricsNamespace = "modrinth"
	metricsSubsystem = "client"
)

// PrometheusHooks implements HTTPHooks by recording Prometheus metrics.
//
// Metrics (all prefixed modrinth_client_):
//   - requests_total{method,endpoint}
//   - responses_total{method,endpoint,status}
//   - request_duration_seconds{method,endpoint}
//   - errors_total{method,endpoint,code}
//   - ratelimit_limit, ratelimit_remaining, ratelimit_reset_seconds
type PrometheusHooks struct {
	requests  *prometheus.CounterVec
	responses *prometheus.CounterVec
	duration  *prometheus.HistogramVec
	errors    *prometheus.CounterVec

	limit     prometheus.Gauge
	remaining prometheus.Gauge
	reset     prometheus.Gauge
}

// NewPrometheusHooks creates hooks and registers their collectors with reg.
// Registering twice on the same registerer returns an error.
func NewPrometheusHooks(reg prometheus.Registerer) (*PrometheusHooks, error) {
	h := &PrometheusHooks{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "requests_total",
			Help:      "Total number of requests dispatched to the API",
		}, []string{"method", "endpoint"}),
		responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "responses_total",
			Help:      "Total number of responses received, by status code",
		}, []string{"method", "endpoint", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "request_duration_seconds",
			Help:      "Time from dispatch until the response body was read",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "endpoint"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "errors_total",
			Help:      "Total number of failed calls, by error code",
		}, []string{"method", "endpoint", "code"}),
		limit: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "ratelimit_limit",
			Help:      "Request budget per window reported by the most recent response",
		}),
		remaining: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "ratelimit_remaining",
			Help:      "Requests remaining in the window reported by the most recent response",
		}),
		reset: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "ratelimit_reset_seconds",
			Help:      "Seconds until the rate-limit window resets, as of the most recent response",
		}),
	}

	for _, c := range []prometheus.Collector{
		h.requests, h.responses, h.duration, h.errors,
		h.limit, h.remaining, h.reset,
	} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return h, nil
}

// OnRequest increments requests_total.
func (h *PrometheusHooks) OnRequest(_ context.Context, method, endpoint string) {
	h.requests.WithLabelValues(method, endpoint).Inc()
}

// OnResponse increments responses_total and observes the request duration.
func (h *PrometheusHooks) OnResponse(_ context.Context, method, endpoint string, statusCode int, duration time.Duration) {
	h.responses.WithLabelValues(method, endpoint, strconv.Itoa(statusCode)).Inc()
	h.duration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// OnError increments errors_total labelled with the error code.
func (h *PrometheusHooks) OnError(_ context.Context, method, endpoint string, err error) {
	code := string(errs.GetCode(err))
	if code == "" {
		code = "UNKNOWN"
	}
	h.errors.WithLabelValues(method, endpoint, code).Inc()
}

// OnRateLimit sets the rate-limit gauges.
func (h *PrometheusHooks) OnRateLimit(_ context.Context, limit, remaining int, reset time.Duration) {
	h.limit.Set(float64(limit))
	h.remaining.Set(float64(remaining))
	h.reset.Set(reset.Seconds())
}

var _ HTTPHooks = (*PrometheusHooks)(nil)
