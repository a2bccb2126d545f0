package observability

import (
	"fmt"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records tree lifecycle events as Prometheus collectors.
type Metrics struct {
	NodesCreated      prometheus.Counter
	SpacesCreated     *prometheus.CounterVec
	Attaches          prometheus.Counter
	Expansions        *prometheus.CounterVec
	ExpansionChildren prometheus.Histogram
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		NodesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arbor_nodes_created_total",
			Help: "Total number of nodes added to a tree",
		}),
		SpacesCreated: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arbor_spaces_created_total",
			Help: "Total number of spaces added to a tree",
		}, []string{"kind"}),
		Attaches: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arbor_attaches_total",
			Help: "Total number of spaces attached to nodes",
		}),
		Expansions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "arbor_expansions_total",
			Help: "Total number of space expansions",
		}, []string{"kind"}),
		ExpansionChildren: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "arbor_expansion_children",
			Help:    "Nodes created per expansion",
			Buckets: prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}

	for _, c := range []prometheus.Collector{m.NodesCreated, m.SpacesCreated, m.Attaches, m.Expansions, m.ExpansionChildren} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("register metrics: %w", err)
		}
	}
	return m, nil
}

// Hooks returns lifecycle hooks that feed the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeCreated: func(*domain.NodeEvent) {
			m.NodesCreated.Inc()
		},
		OnSpaceCreated: func(e *domain.SpaceEvent) {
			m.SpacesCreated.WithLabelValues(string(e.Kind)).Inc()
		},
		OnAttach: func(*domain.AttachEvent) {
			m.Attaches.Inc()
		},
		OnExpand: func(e *domain.ExpandEvent) {
			m.Expansions.WithLabelValues(string(e.Kind)).Inc()
			m.ExpansionChildren.Observe(float64(e.Created))
		},
	}
}

// Chain combines hooks so every non-nil callback of each runs in order.
func Chain(hooks ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnNodeCreated: func(e *domain.NodeEvent) {
			for _, h := range hooks {
				if h.OnNodeCreated != nil {
					h.OnNodeCreated(e)
				}
			}
		},
		OnSpaceCreated: func(e *domain.SpaceEvent) {
			for _, h := range hooks {
				if h.OnSpaceCreated != nil {
					h.OnSpaceCreated(e)
				}
			}
		},
		OnAttach: func(e *domain.AttachEvent) {
			for _, h := range hooks {
				if h.OnAttach != nil {
					h.OnAttach(e)
				}
			}
		},
		OnExpand: func(e *domain.ExpandEvent) {
			for _, h := range hooks {
				if h.OnExpand != nil {
					h.OnExpand(e)
				}
			}
		},
	}
}
