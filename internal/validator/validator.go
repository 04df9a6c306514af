package validator

import (
	"fmt"
	"strings"

	"github.com/aretw0/spotlight/internal/runtime"
	"github.com/aretw0/spotlight/pkg/domain"
)

// ValidateTour checks a tour for problems a user would hit while walking it.
//
// Beyond the structural checks of TourDefinition.Validate it verifies that
// every step but the last offers a forward control, that the last step can
// finish the tour, and that a "don't show again" checkbox sits on a step the
// tour can actually end from. When page is not nil, targets are also resolved
// against it and steps that would be dropped are reported.
func ValidateTour(tour domain.TourDefinition, page runtime.Resolver) error {
	if err := tour.Validate(); err != nil {
		return err
	}

	var errors []string
	last := len(tour.Steps) - 1
	for i, s := range tour.Steps {
		name := fmt.Sprintf("step %d (%q)", i, s.Title)
		forward := s.HasButton(domain.ButtonStart) || s.HasButton(domain.ButtonNext)
		ends := s.HasButton(domain.ButtonDone) || s.HasButton(domain.ButtonDashboard)

		if i < last && !forward && !ends {
			errors = append(errors, fmt.Sprintf("%s: no start or next control", name))
		}
		if i == last && !ends && !s.HasButton(domain.ButtonNext) {
			errors = append(errors, fmt.Sprintf("%s: last step cannot finish the tour", name))
		}
		if s.HasButton(domain.ButtonDontShowAgain) && i != last && !ends && !s.HasButton(domain.ButtonSkip) {
			errors = append(errors, fmt.Sprintf("%s: don't-show-again is never applied, the tour cannot end here", name))
		}
	}

	if page != nil {
		for i, s := range tour.Steps {
			if s.Centered() {
				continue
			}
			if _, ok := page.Query(s.Target); ok {
				continue
			}
			if s.Fallback == "" {
				errors = append(errors, fmt.Sprintf("step %d (%q): target %q not found", i, s.Title, s.Target))
				continue
			}
			if _, ok := page.Query(s.Fallback); !ok {
				errors = append(errors, fmt.Sprintf("step %d (%q): neither target %q nor fallback %q found", i, s.Title, s.Target, s.Fallback))
			}
		}
		if len(runtime.ResolveSteps(page, tour)) == 0 {
			errors = append(errors, "no step can be shown on this page")
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("tour %q: found %d errors:\n- %s", tour.Name, len(errors), strings.Join(errors, "\n- "))
	}
	return nil
}
