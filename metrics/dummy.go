package metrics

import "github.com/prometheus/client_golang/prometheus"

// DummyMetrics discards every observation; it backs the resolver when
// metrics collection is disabled in configuration.
type DummyMetrics struct{}

func (ds DummyMetrics) IncQueriesAnswered()                  {}
func (ds DummyMetrics) IncCacheHit()                         {}
func (ds DummyMetrics) IncCacheMiss()                        {}
func (ds DummyMetrics) IncUpstreamFailure()                  {}
func (ds DummyMetrics) IncNXDomainPassthrough()               {}
func (ds DummyMetrics) GetCacheReadTimer() *prometheus.Timer { return nil }
func (ds DummyMetrics) GetForwardTimer() *prometheus.Timer   { return nil }
func (ds DummyMetrics) GetResponseTimer() *prometheus.Timer  { return nil }
func (ds DummyMetrics) Start() error                         { return nil }
func (ds DummyMetrics) ObserveTimer(_ *prometheus.Timer)     {}
