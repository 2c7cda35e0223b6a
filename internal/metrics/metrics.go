// Package metrics exposes Prometheus collectors for outbound auth API requests.
package metrics

import (
	"errors"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	namespace = "auth_client"

	// StatusError labels requests that never got an HTTP response.
	StatusError = "error"
)

// Recorder observes request counts and latencies. A nil *Recorder is a no-op.
type Recorder struct {
	requests *prometheus.CounterVec
	latency  *prometheus.HistogramVec
}

// New registers the request collectors on reg. Collectors already registered
// by another client on the same registerer are reused.
func New(reg prometheus.Registerer) (*Recorder, error) {
	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "requests_total",
		Help:      "Auth API requests by method, path and response status.",
	}, []string{"method", "path", "status"})

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "request_duration_seconds",
		Help:      "Auth API request latency in seconds.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "path"})

	var err error

	if requests, err = register(reg, requests); err != nil {
		return nil, err
	}

	if latency, err = register(reg, latency); err != nil {
		return nil, err
	}

	return &Recorder{requests: requests, latency: latency}, nil
}

func register[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}

		return c, err
	}

	return c, nil
}

// Observe records one request. status <= 0 means the transport failed.
func (r *Recorder) Observe(method, path string, status int, elapsed time.Duration) {
	if r == nil {
		return
	}

	label := StatusError
	if status > 0 {
		label = strconv.Itoa(status)
	}

	r.requests.WithLabelValues(method, path, label).Inc()
	r.latency.WithLabelValues(method, path).Observe(elapsed.Seconds())
}
