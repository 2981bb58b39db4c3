package api

import (
	"errors"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// InstrumentedTransport wraps next with request counters and latency
// histograms registered on reg. Collectors already registered by an
// earlier client are reused.
func InstrumentedTransport(next http.RoundTripper, reg prometheus.Registerer) (http.RoundTripper, error) {
	if next == nil {
		next = http.DefaultTransport
	}

	requests := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "postmark",
		Subsystem: "client",
		Name:      "requests_total",
		Help:      "Number of Postmark API requests by status code and method.",
	}, []string{"code", "method"})

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "postmark",
		Subsystem: "client",
		Name:      "request_duration_seconds",
		Help:      "Latency of Postmark API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"code", "method"})

	var err error
	if requests, err = registerOrReuse(reg, requests); err != nil {
		return nil, err
	}
	if latency, err = registerOrReuse(reg, latency); err != nil {
		return nil, err
	}

	return promhttp.InstrumentRoundTripperCounter(requests,
		promhttp.InstrumentRoundTripperDuration(latency, next),
	), nil
}

func registerOrReuse[T prometheus.Collector](reg prometheus.Registerer, c T) (T, error) {
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
