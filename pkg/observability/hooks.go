package observability

import (
	"context"
	"log/slog"

	"github.com/aretw0/spotlight/pkg/domain"
)

// LogHooks returns lifecycle hooks that log every event at info level.
func LogHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTourStart: func(ctx context.Context, e *domain.TourEvent) {
			logger.InfoContext(ctx, "tour_start",
				"session_id", e.SessionID,
				"tour", e.Tour,
				"steps", e.Steps,
			)
		},
		OnStepShow: func(ctx context.Context, e *domain.StepEvent) {
			logger.InfoContext(ctx, "step_show",
				"session_id", e.SessionID,
				"tour", e.Tour,
				"step", e.StepIndex,
				"selector", e.Selector,
				"centered", e.Centered,
			)
		},
		OnTourEnd: func(ctx context.Context, e *domain.TourEvent) {
			logger.InfoContext(ctx, "tour_end",
				"session_id", e.SessionID,
				"tour", e.Tour,
				"reason", e.Reason,
				"step", e.StepIndex,
				"mark_seen", e.MarkSeen,
			)
		},
	}
}

// Chain combines hook sets. Each event is delivered in order; nil callbacks are skipped.
func Chain(sets ...domain.LifecycleHooks) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTourStart: func(ctx context.Context, e *domain.TourEvent) {
			for _, h := range sets {
				if h.OnTourStart != nil {
					h.OnTourStart(ctx, e)
				}
			}
		},
		OnStepShow: func(ctx context.Context, e *domain.StepEvent) {
			for _, h := range sets {
				if h.OnStepShow != nil {
					h.OnStepShow(ctx, e)
				}
			}
		},
		OnTourEnd: func(ctx context.Context, e *domain.TourEvent) {
			for _, h := range sets {
				if h.OnTourEnd != nil {
					h.OnTourEnd(ctx, e)
				}
			}
		},
	}
}
