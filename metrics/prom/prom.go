// Package prom adapts cache.Metrics to Prometheus counters and a
// gauge.
package prom

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/akashihi/stlcache/cache"
)

// Adapter implements cache.Metrics and exports Prometheus
// counters/gauge. Safe for concurrent use; all Prometheus metric
// types are goroutine-safe (note that Cache itself is not — see
// package cache's doc comment).
type Adapter struct {
	hits   prometheus.Counter
	misses prometheus.Counter
	evicts prometheus.Counter
	size   prometheus.Gauge
}

// New constructs a Prometheus metrics adapter.
//   - reg:         registry to register metrics with (nil => prometheus.DefaultRegisterer)
//   - ns, sub:      Prometheus namespace and subsystem
//   - constLabels:  static labels applied to all metrics (may be nil)
func New(reg prometheus.Registerer, ns, sub string, constLabels prometheus.Labels) *Adapter {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	a := &Adapter{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "hits_total",
			Help:        "Cache hits",
			ConstLabels: constLabels,
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "misses_total",
			Help:        "Cache misses",
			ConstLabels: constLabels,
		}),
		evicts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "evictions_total",
			Help:        "Cache evictions",
			ConstLabels: constLabels,
		}),
		size: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace:   ns,
			Subsystem:   sub,
			Name:        "size_entries",
			Help:        "Number of resident entries",
			ConstLabels: constLabels,
		}),
	}
	reg.MustRegister(a.hits, a.misses, a.evicts, a.size)
	return a
}

// Hit increments the hit counter.
func (a *Adapter) Hit() { a.hits.Inc() }

// Miss increments the miss counter.
func (a *Adapter) Miss() { a.misses.Inc() }

// Evict increments the eviction counter.
func (a *Adapter) Evict() { a.evicts.Inc() }

// Size updates the resident-entries gauge.
func (a *Adapter) Size(entries int) { a.size.Set(float64(entries)) }

// Compile-time check: ensure Adapter implements cache.Metrics.
var _ cache.Metrics = (*Adapter)(nil)
