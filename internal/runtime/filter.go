package runtime

import (
	"github.com/aretw0/spotlight/pkg/domain"
	"github.com/aretw0/spotlight/pkg/ports"
)

// Resolver resolves selectors against the live document.
type Resolver interface {
	Query(selector string) (domain.ElementRef, bool)
}

var _ Resolver = (ports.Renderer)(nil)

// ResolveSteps filters a tour down to the steps that can be shown right now.
//
// Centered steps are always kept. A targeted step is kept when its target
// resolves, or when its fallback resolves (the fallback becomes the effective
// selector). Anything else is dropped. Declaration order is preserved and the
// definition itself is not modified.
func ResolveSteps(r Resolver, tour domain.TourDefinition) []domain.RuntimeStep {
	steps := make([]domain.RuntimeStep, 0, len(tour.Steps))
	for _, spec := range tour.Steps {
		if spec.Centered() {
			steps = append(steps, domain.RuntimeStep{StepSpec: spec})
			continue
		}
		if _, ok := r.Query(spec.Target); ok {
			steps = append(steps, domain.RuntimeStep{StepSpec: spec, Selector: spec.Target})
			continue
		}
		if spec.Fallback == "" {
			continue
		}
		if _, ok := r.Query(spec.Fallback); ok {
			steps = append(steps, domain.RuntimeStep{StepSpec: spec, Selector: spec.Fallback})
		}
	}
	return steps
}
