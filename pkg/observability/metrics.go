package observability

import (
	"fmt"

	"github.com/aretw0/ccstrace/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Transition kinds used as the "kind" label.
const (
	KindVisible = "visible"
	KindSilent  = "silent"
)

// Metrics counts transitions and halts of trace runs on its own registry.
type Metrics struct {
	registry    *prometheus.Registry
	transitions *prometheus.CounterVec
	halts       *prometheus.CounterVec
	steps       prometheus.Histogram
}

// NewMetrics creates the collectors and registers them on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		transitions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ccstrace_transitions_total",
				Help: "Total number of derived transitions",
			},
			[]string{"kind"},
		),
		halts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ccstrace_halts_total",
				Help: "Total number of finished traces by halt reason",
			},
			[]string{"reason"},
		),
		steps: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ccstrace_derivation_steps",
				Help:    "Number of derivation steps per transition",
				Buckets: prometheus.LinearBuckets(1, 2, 8),
			},
		),
	}
	m.registry.MustRegister(m.transitions, m.halts, m.steps)
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransition: func(e *domain.TransitionEvent) {
			kind := KindVisible
			if e.Label.Silent {
				kind = KindSilent
			}
			m.transitions.WithLabelValues(kind).Inc()
			m.steps.Observe(float64(e.Steps))
		},
		OnHalt: func(e *domain.HaltEvent) {
			m.halts.WithLabelValues(string(e.Reason)).Inc()
		},
	}
}

// Registry exposes the underlying registry, e.g. for a custom exporter.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// WriteTextfile writes all metrics in the text exposition format to path,
// atomically, as expected by the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
