package domain

import (
	"fmt"
	"strings"
)

// Position is the desired placement of a tooltip relative to its target.
type Position string

const (
	PositionCenter Position = "center"
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
	PositionLeft   Position = "left"
	PositionRight  Position = "right"
)

// Valid reports whether p is one of the known positions.
func (p Position) Valid() bool {
	switch p {
	case PositionCenter, PositionTop, PositionBottom, PositionLeft, PositionRight:
		return true
	}
	return false
}

// ButtonKind is a declarative action tag rendered as a tooltip control.
// The engine dispatches on the tag; content never carries callbacks.
type ButtonKind string

const (
	ButtonStart         ButtonKind = "start"
	ButtonNext          ButtonKind = "next"
	ButtonSkip          ButtonKind = "skip"
	ButtonDone          ButtonKind = "done"
	ButtonDashboard     ButtonKind = "dashboard"
	ButtonDontShowAgain ButtonKind = "dont-show-again"
)

// Valid reports whether b is one of the known button kinds.
func (b ButtonKind) Valid() bool {
	switch b {
	case ButtonStart, ButtonNext, ButtonSkip, ButtonDone, ButtonDashboard, ButtonDontShowAgain:
		return true
	}
	return false
}

// Label returns the text shown on the control.
func (b ButtonKind) Label() string {
	switch b {
	case ButtonStart:
		return "Start Tour"
	case ButtonNext:
		return "Next →"
	case ButtonSkip:
		return "Skip"
	case ButtonDone:
		return "Done"
	case ButtonDashboard:
		return "Go to Dashboard"
	case ButtonDontShowAgain:
		return "Don't show this tour again"
	}
	return string(b)
}

// StepSpec is one author-declared step of a tour.
type StepSpec struct {
	// Target is a selector for the element the step points to.
	// Empty means a centered modal step.
	Target string `json:"target,omitempty" yaml:"target,omitempty" mapstructure:"target"`

	// Fallback is tried when Target resolves to nothing.
	Fallback string `json:"fallback,omitempty" yaml:"fallback,omitempty" mapstructure:"fallback"`

	Title       string `json:"title" yaml:"title" mapstructure:"title"`
	Description string `json:"description" yaml:"description" mapstructure:"description"`

	Position Position     `json:"position" yaml:"position" mapstructure:"position"`
	Buttons  []ButtonKind `json:"buttons" yaml:"buttons" mapstructure:"buttons"`
}

// Centered reports whether the step has no target.
func (s StepSpec) Centered() bool {
	return s.Target == ""
}

// HasButton reports whether the step declares the given control.
func (s StepSpec) HasButton(kind ButtonKind) bool {
	for _, b := range s.Buttons {
		if b == kind {
			return true
		}
	}
	return false
}

// TourDefinition is an immutable, named sequence of steps.
type TourDefinition struct {
	// Name is the identifier callers pass to StartTour.
	Name string `json:"name" yaml:"name" mapstructure:"name"`

	// Key is the settings flag recording that the tour was seen.
	Key string `json:"key" yaml:"key" mapstructure:"key"`

	Steps []StepSpec `json:"steps" yaml:"steps" mapstructure:"steps"`
}

// Validate checks names, positions and button kinds.
// Steps with a target are allowed to omit a position (the right-hand default applies).
func (t TourDefinition) Validate() error {
	var problems []string
	if t.Name == "" {
		problems = append(problems, "name is required")
	}
	if t.Key == "" {
		problems = append(problems, "key is required")
	}
	if t.Key == ForceShowKey {
		problems = append(problems, fmt.Sprintf("key %q is reserved", ForceShowKey))
	}
	if len(t.Steps) == 0 {
		problems = append(problems, "at least one step is required")
	}
	for i, s := range t.Steps {
		if s.Title == "" {
			problems = append(problems, fmt.Sprintf("step %d: title is required", i))
		}
		if s.Position != "" && !s.Position.Valid() {
			problems = append(problems, fmt.Sprintf("step %d: unknown position %q", i, s.Position))
		}
		if s.Target == "" && s.Fallback != "" {
			problems = append(problems, fmt.Sprintf("step %d: fallback without target", i))
		}
		for _, b := range s.Buttons {
			if !b.Valid() {
				problems = append(problems, fmt.Sprintf("step %d: unknown button %q", i, b))
			}
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w %q: %s", ErrInvalidTour, t.Name, strings.Join(problems, "; "))
	}
	return nil
}

// RuntimeStep is a StepSpec admitted into a running tour.
// Selector is the effective target: the original target, or the fallback
// when the target did not resolve at start time.
type RuntimeStep struct {
	StepSpec
	Selector string
}

// Centered reports whether the runtime step is shown as a centered panel.
func (r RuntimeStep) Centered() bool {
	return r.Selector == ""
}
