package metrics

import (
	"fmt"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// PrometheusMetrics is the live metrics backend, registering its
// collectors at construction and serving them over /metrics on Start.
type PrometheusMetrics struct {
	queriesAnswered      prometheus.Counter
	cacheHits            prometheus.Counter
	cacheMisses          prometheus.Counter
	upstreamFailures     prometheus.Counter
	nxdomainPassthroughs prometheus.Counter
	queryDuration        prometheus.HistogramVec

	config Config
}

func (ms PrometheusMetrics) IncQueriesAnswered() {
	ms.queriesAnswered.Inc()
}

func (ms PrometheusMetrics) IncCacheHit() {
	ms.cacheHits.Inc()
}

func (ms PrometheusMetrics) IncCacheMiss() {
	ms.cacheMisses.Inc()
}

func (ms PrometheusMetrics) IncUpstreamFailure() {
	ms.upstreamFailures.Inc()
}

func (ms PrometheusMetrics) IncNXDomainPassthrough() {
	ms.nxdomainPassthroughs.Inc()
}

func (ms PrometheusMetrics) GetCacheReadTimer() *prometheus.Timer {
	return prometheus.NewTimer(ms.queryDuration.WithLabelValues("cache_read"))
}

func (ms PrometheusMetrics) GetForwardTimer() *prometheus.Timer {
	return prometheus.NewTimer(ms.queryDuration.WithLabelValues("forward"))
}

func (ms PrometheusMetrics) GetResponseTimer() *prometheus.Timer {
	return prometheus.NewTimer(ms.queryDuration.WithLabelValues("respond"))
}

func (ms PrometheusMetrics) ObserveTimer(timer *prometheus.Timer) {
	if timer != nil {
		timer.ObserveDuration()
	}
}

// Start serves the /metrics endpoint in the background when enabled.
func (ms PrometheusMetrics) Start() error {
	if ms.config.Enable {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			ms.config.Logger.Info("starting metrics endpoint", "port", ms.config.Port)
			addr := fmt.Sprintf(":%d", ms.config.Port)
			if err := http.ListenAndServe(addr, mux); err != nil {
				ms.config.Logger.Error("metrics endpoint stopped", "error", err.Error())
			}
		}()
	}

	return nil
}

func newPrometheus(config Config) PrometheusMetrics {
	return PrometheusMetrics{
		queriesAnswered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pinedns_queries_answered",
			Help: "The total number of queries answered since last start",
		}),
		cacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pinedns_cache_hits",
			Help: "The number of queries answered directly from cache",
		}),
		cacheMisses: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pinedns_cache_misses",
			Help: "The number of queries that required an upstream round trip",
		}),
		upstreamFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pinedns_upstream_failures",
			Help: "The number of upstream round trips that failed or timed out",
		}),
		nxdomainPassthroughs: promauto.NewCounter(prometheus.CounterOpts{
			Name: "pinedns_nxdomain_passthroughs",
			Help: "The number of NXDOMAIN responses forwarded without caching",
		}),
		queryDuration: *promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:      "duration_seconds",
			Help:      "Time spent in each stage of handling a query",
			Namespace: "pinedns",
		}, []string{"action"}),
		config: config,
	}
}
