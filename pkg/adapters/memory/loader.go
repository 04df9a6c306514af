package memory

import (
	"fmt"
	"sort"

	"github.com/aretw0/spotlight/pkg/domain"
)

// Loader implements ports.TourLoader using an in-memory map.
type Loader struct {
	tours map[string]domain.TourDefinition
}

// NewLoader creates a Loader from tour definitions.
// Every tour is validated; names must be unique.
func NewLoader(tours ...domain.TourDefinition) (*Loader, error) {
	l := &Loader{tours: make(map[string]domain.TourDefinition, len(tours))}
	for _, t := range tours {
		if err := t.Validate(); err != nil {
			return nil, err
		}
		if _, dup := l.tours[t.Name]; dup {
			return nil, fmt.Errorf("duplicate tour name %q", t.Name)
		}
		l.tours[t.Name] = cloneTour(t)
	}
	return l, nil
}

// GetTour returns a copy of the named tour.
func (l *Loader) GetTour(name string) (domain.TourDefinition, error) {
	t, ok := l.tours[name]
	if !ok {
		return domain.TourDefinition{}, fmt.Errorf("%w: %s", domain.ErrTourNotFound, name)
	}
	return cloneTour(t), nil
}

// ListTours returns all available tour names.
func (l *Loader) ListTours() ([]string, error) {
	names := make([]string, 0, len(l.tours))
	for k := range l.tours {
		names = append(names, k)
	}
	sort.Strings(names) // Deterministic order
	return names, nil
}

// cloneTour copies the step slices so callers can never mutate stored definitions.
func cloneTour(t domain.TourDefinition) domain.TourDefinition {
	out := t
	out.Steps = make([]domain.StepSpec, len(t.Steps))
	for i, s := range t.Steps {
		s.Buttons = append([]domain.ButtonKind(nil), s.Buttons...)
		out.Steps[i] = s
	}
	return out
}
