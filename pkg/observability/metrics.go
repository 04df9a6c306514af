package observability

import (
	"context"
	"strconv"

	"github.com/aretw0/spotlight/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the engine's Prometheus collectors.
type Metrics struct {
	ToursStarted *prometheus.CounterVec
	StepsShown   *prometheus.CounterVec
	ToursEnded   *prometheus.CounterVec
	StepsReached *prometheus.HistogramVec
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		ToursStarted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spotlight_tours_started_total",
				Help: "Total number of tours started",
			},
			[]string{"tour"},
		),
		StepsShown: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spotlight_steps_shown_total",
				Help: "Total number of steps shown",
			},
			[]string{"tour", "step"},
		),
		ToursEnded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "spotlight_tours_ended_total",
				Help: "Total number of tours ended, by reason",
			},
			[]string{"tour", "reason"},
		),
		StepsReached: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "spotlight_tour_last_step",
				Help:    "Index of the step a tour was on when it ended",
				Buckets: prometheus.LinearBuckets(0, 1, 10),
			},
			[]string{"tour"},
		),
	}
	if reg != nil {
		reg.MustRegister(m.ToursStarted, m.StepsShown, m.ToursEnded, m.StepsReached)
	}
	return m
}

// Hooks returns lifecycle hooks that record into m.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTourStart: func(_ context.Context, e *domain.TourEvent) {
			m.ToursStarted.WithLabelValues(e.Tour).Inc()
		},
		OnStepShow: func(_ context.Context, e *domain.StepEvent) {
			m.StepsShown.WithLabelValues(e.Tour, strconv.Itoa(e.StepIndex)).Inc()
		},
		OnTourEnd: func(_ context.Context, e *domain.TourEvent) {
			m.ToursEnded.WithLabelValues(e.Tour, string(e.Reason)).Inc()
			m.StepsReached.WithLabelValues(e.Tour).Observe(float64(e.StepIndex))
		},
	}
}
