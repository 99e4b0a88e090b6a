package web

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pattern labels used on the invocation counter.
const (
	patternStrategy        = "strategy"
	patternAbstractFactory = "abstract-factory"
	patternFactoryMethod   = "factory-method"
	patternComposite       = "composite"
	patternDecorator       = "decorator"
)

// Metrics holds the server's collectors on a private registry, so several servers
// (for example in tests) never collide on registration.
type Metrics struct {
	registry    *prometheus.Registry
	invocations *prometheus.CounterVec
}

// NewMetrics registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		invocations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "patterns_invocations_total",
				Help: "The total number of pattern computations served, by pattern",
			},
			[]string{"pattern"},
		),
	}
	m.registry.MustRegister(m.invocations)
	return m
}

func (m *Metrics) observe(pattern string) {
	m.invocations.WithLabelValues(pattern).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
