package render

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DefaultNamespace is the metrics namespace used when none is given.
const DefaultNamespace = "ftd"

// Metrics holds the Prometheus collectors for render passes.
type Metrics struct {
	renders  *prometheus.CounterVec
	nodes    *prometheus.CounterVec
	classes  *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

// NewMetrics registers the render collectors with reg. A nil reg uses
// prometheus.DefaultRegisterer.
func NewMetrics(namespace string, reg prometheus.Registerer) *Metrics {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	factory := promauto.With(reg)

	return &Metrics{
		renders: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renders_total",
			Help:      "Total number of render passes",
		}, []string{"mode", "status"}),

		nodes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rendered_nodes_total",
			Help:      "Total number of nodes created by render passes",
		}, []string{"mode"}),

		classes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "registered_classes_total",
			Help:      "Total number of CSS rules registered by render passes",
		}, []string{"mode"}),

		duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "render_duration_seconds",
			Help:      "Render pass duration in seconds",
			Buckets:   []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"mode"}),
	}
}

func (m *Metrics) observe(mode, status string, nodes, classes int, d time.Duration) {
	if m == nil {
		return
	}
	m.renders.WithLabelValues(mode, status).Inc()
	m.nodes.WithLabelValues(mode).Add(float64(nodes))
	m.classes.WithLabelValues(mode).Add(float64(classes))
	m.duration.WithLabelValues(mode).Observe(d.Seconds())
}
