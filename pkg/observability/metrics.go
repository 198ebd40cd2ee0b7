package observability

import (
	"context"

	"github.com/Rangchakdv/MazeSolver/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors of the maze engine.
type Metrics struct {
	Edits         *prometheus.CounterVec
	Solves        *prometheus.CounterVec
	Rejects       *prometheus.CounterVec
	SolveDuration prometheus.Histogram
	PathLength    prometheus.Histogram
	Visited       prometheus.Histogram
	Sessions      prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Edits: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mazesolver_edits_total",
				Help: "Total number of applied maze edits",
			},
			[]string{"command"},
		),
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mazesolver_solves_total",
				Help: "Total number of path searches by result",
			},
			[]string{"result"},
		),
		Rejects: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "mazesolver_rejected_commands_total",
				Help: "Total number of rejected commands",
			},
			[]string{"command"},
		),
		SolveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mazesolver_solve_duration_seconds",
			Help:    "Duration of path searches",
			Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
		}),
		PathLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mazesolver_path_length_steps",
			Help:    "Length of found paths in steps",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		Visited: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mazesolver_cells_visited",
			Help:    "Cells explored per search",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		Sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "mazesolver_sessions",
			Help: "Number of open maze sessions",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.Edits, m.Solves, m.Rejects, m.SolveDuration, m.PathLength, m.Visited, m.Sessions)
	}
	return m
}

// Hooks returns lifecycle hooks recording engine events into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnEdit: func(_ context.Context, e *domain.EditEvent) {
			m.Edits.WithLabelValues(string(e.Command)).Inc()
		},
		OnSolve: func(_ context.Context, e *domain.SolveEvent) {
			result := "unreachable"
			if e.Found {
				result = "found"
				m.PathLength.Observe(float64(e.Length))
			}
			m.Solves.WithLabelValues(result).Inc()
			m.SolveDuration.Observe(e.Duration.Seconds())
			m.Visited.Observe(float64(e.Visited))
		},
		OnReject: func(_ context.Context, e *domain.RejectEvent) {
			m.Rejects.WithLabelValues(string(e.Command)).Inc()
		},
	}
}
