package observability_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/aretw0/spotlight/pkg/domain"
	"github.com/aretw0/spotlight/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tourEvent(tour string, reason domain.EndReason, step int) *domain.TourEvent {
	return &domain.TourEvent{
		EventBase: domain.EventBase{Tour: tour, SessionID: "s1"},
		Reason:    reason,
		StepIndex: step,
	}
}

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)
	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnTourStart(ctx, tourEvent("main", "", 0))
	hooks.OnStepShow(ctx, &domain.StepEvent{EventBase: domain.EventBase{Tour: "main"}, StepIndex: 0})
	hooks.OnStepShow(ctx, &domain.StepEvent{EventBase: domain.EventBase{Tour: "main"}, StepIndex: 1})
	hooks.OnStepShow(ctx, &domain.StepEvent{EventBase: domain.EventBase{Tour: "main"}, StepIndex: 1})
	hooks.OnTourEnd(ctx, tourEvent("main", domain.EndSkipped, 1))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ToursStarted.WithLabelValues("main")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.StepsShown.WithLabelValues("main", "1")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ToursEnded.WithLabelValues("main", "skipped")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.ToursEnded.WithLabelValues("main", "completed")))

	n, err := testutil.GatherAndCount(reg, "spotlight_tour_last_step")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestMetrics_NilRegisterer(t *testing.T) {
	m := observability.NewMetrics(nil)
	m.Hooks().OnTourStart(context.Background(), tourEvent("x", "", 0))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ToursStarted.WithLabelValues("x")))
}

func TestChain(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	var ended []domain.EndReason
	custom := domain.LifecycleHooks{
		OnTourEnd: func(_ context.Context, e *domain.TourEvent) { ended = append(ended, e.Reason) },
	}

	hooks := observability.Chain(m.Hooks(), observability.LogHooks(logger), custom)
	ctx := context.Background()
	hooks.OnTourStart(ctx, tourEvent("main", "", 0))
	hooks.OnTourEnd(ctx, tourEvent("main", domain.EndCompleted, 3))

	assert.Equal(t, []domain.EndReason{domain.EndCompleted}, ended)
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ToursEnded.WithLabelValues("main", "completed")))
	assert.Contains(t, buf.String(), "msg=tour_start")
	assert.Contains(t, buf.String(), "reason=completed")
}
