package domain

import (
	"context"
	"time"
)

// EventType defines the category of the event.
type EventType string

const (
	EventTourStart EventType = "tour_start"
	EventStepShow  EventType = "step_show"
	EventTourEnd   EventType = "tour_end"
)

// EndReason explains why a session ended.
type EndReason string

const (
	// EndCompleted is a done/dashboard action or next on the last step.
	EndCompleted EndReason = "completed"
	// EndSkipped is the skip button or the Escape key.
	EndSkipped EndReason = "skipped"
	// EndExhausted means every remaining target disappeared mid-tour.
	EndExhausted EndReason = "exhausted"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
	SessionID string    `json:"session_id"`
	Tour      string    `json:"tour"`
}

// TourEvent represents the start or end of a session.
type TourEvent struct {
	EventBase
	Steps     int       `json:"steps"`
	StepIndex int       `json:"step_index"`
	Reason    EndReason `json:"reason,omitempty"`
	MarkSeen  bool      `json:"mark_seen,omitempty"`
}

// StepEvent represents a step becoming visible.
type StepEvent struct {
	EventBase
	StepIndex int            `json:"step_index"`
	Selector  string         `json:"selector,omitempty"`
	Content   TooltipContent `json:"content"`
	Left      float64        `json:"left"`
	Top       float64        `json:"top"`
	Centered  bool           `json:"centered"`
}

// LifecycleHooks defines callbacks for engine observability.
type LifecycleHooks struct {
	OnTourStart func(context.Context, *TourEvent)
	OnStepShow  func(context.Context, *StepEvent)
	OnTourEnd   func(context.Context, *TourEvent)
}
