// Package metrics exposes the resolver's Prometheus instrumentation, with
// a no-op implementation for when metrics collection is disabled.
package metrics

import (
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
)

// Config controls whether metrics are collected and where the /metrics
// endpoint, if started, logs to.
type Config struct {
	Enable bool
	Port   int
	Logger *slog.Logger
}

// Interface is the instrumentation surface the resolver loop calls into.
// A Timer returned by one of the Get*Timer methods is observed by passing
// it to ObserveTimer once the measured operation completes.
type Interface interface {
	IncQueriesAnswered()
	IncCacheHit()
	IncCacheMiss()
	IncUpstreamFailure()
	IncNXDomainPassthrough()
	GetCacheReadTimer() *prometheus.Timer
	GetForwardTimer() *prometheus.Timer
	GetResponseTimer() *prometheus.Timer
	ObserveTimer(*prometheus.Timer)
	Start() error
}

// Get returns a PrometheusMetrics when enabled, otherwise a DummyMetrics.
func Get(config Config) Interface {
	if config.Enable {
		return newPrometheus(config)
	}
	return DummyMetrics{}
}
