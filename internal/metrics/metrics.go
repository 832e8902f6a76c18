// SPDX-License-Identifier: MIT

// Package metrics exports route query statistics in Prometheus format.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/katalvlaran/haripath/route"
)

// Collector records route outcomes on its own registry.
// It implements route.Observer.
type Collector struct {
	registry *prometheus.Registry
	queries  *prometheus.CounterVec
	duration prometheus.Histogram
	expanded prometheus.Counter
}

var _ route.Observer = (*Collector)(nil)

// New creates a Collector with every outcome label pre-initialized to zero.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		queries: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "haripath_route_queries_total",
				Help: "Route queries by outcome.",
			},
			[]string{"outcome"},
		),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "haripath_route_query_duration_seconds",
			Help:    "Time spent answering a route query.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 10),
		}),
		expanded: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "haripath_nodes_expanded_total",
			Help: "Locations expanded by A* across all queries.",
		}),
	}
	c.registry.MustRegister(c.queries, c.duration, c.expanded)

	for _, k := range []route.Kind{route.Found, route.SameLocation, route.InvalidLocation, route.NoPath, route.Failed} {
		c.queries.WithLabelValues(k.String())
	}

	return c
}

// ObserveOutcome records one answered query.
func (c *Collector) ObserveOutcome(o route.Outcome, elapsed time.Duration) {
	c.queries.WithLabelValues(o.Kind.String()).Inc()
	c.duration.Observe(elapsed.Seconds())
	c.expanded.Add(float64(o.Expanded))
}

// Registry returns the registry holding the collectors.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
