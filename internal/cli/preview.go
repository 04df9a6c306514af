package cli

import (
	"fmt"
	"strings"

	"github.com/aretw0/spotlight/pkg/domain"
)

// TourMarkdown describes a tour as a markdown document, one section per step.
func TourMarkdown(tour domain.TourDefinition) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", tour.Name)
	fmt.Fprintf(&b, "Seen flag: `%s` · %d steps\n\n", tour.Key, len(tour.Steps))

	for i, s := range tour.Steps {
		fmt.Fprintf(&b, "## %d. %s\n\n", i+1, s.Title)
		if s.Description != "" {
			fmt.Fprintf(&b, "%s\n\n", s.Description)
		}
		if s.Centered() {
			b.WriteString("- **Target:** centered modal\n")
		} else {
			fmt.Fprintf(&b, "- **Target:** `%s`\n", s.Target)
			if s.Fallback != "" {
				fmt.Fprintf(&b, "- **Fallback:** `%s`\n", s.Fallback)
			}
		}
		if s.Position != "" {
			fmt.Fprintf(&b, "- **Position:** %s\n", s.Position)
		}
		if len(s.Buttons) > 0 {
			labels := make([]string, len(s.Buttons))
			for j, btn := range s.Buttons {
				labels[j] = btn.Label()
			}
			fmt.Fprintf(&b, "- **Buttons:** %s\n", strings.Join(labels, ", "))
		}
		b.WriteString("\n")
	}
	return b.String()
}
