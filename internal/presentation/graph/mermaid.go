package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/spotlight/pkg/domain"
)

// GraphOverlay contains page state to visualize on the graph.
type GraphOverlay struct {
	// Resolved holds the effective selector of every step that resolved on a page,
	// keyed by declared step index. Steps missing from the map were dropped.
	Resolved map[int]string
	// CurrentStep is the declared index of the step on screen, or -1.
	CurrentStep int
}

// GenerateMermaid produces a Mermaid flowchart of a tour.
// It applies semantic styling:
// - Centered step: ((Circle))
// - Targeted step: [Rectangle]
// - End of tour: [(Cylinder)]
// Steps are chained by "next"; steps with skip or dashboard controls get a
// dotted edge to the end node. The overlay marks dropped steps, fallback
// rewrites and the current step.
func GenerateMermaid(tour domain.TourDefinition, overlay *GraphOverlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	endID := "tour_end"
	for i, step := range tour.Steps {
		id := stepID(i)

		opener, closer := "[", "]"
		if step.Centered() {
			opener, closer = "((", "))"
		}

		label := escape(step.Title)
		if step.Target != "" {
			label += " <br/> " + escape(step.Target)
		}
		if overlay != nil {
			if sel, ok := overlay.Resolved[i]; ok && step.Target != "" && sel != step.Target {
				label += " <br/> ↪ " + escape(sel)
			}
		}
		if step.HasButton(domain.ButtonDontShowAgain) {
			label += " <br/> ☐ don't show again"
		}
		fmt.Fprintf(&sb, "    %s%s\"%s\"%s\n", id, opener, label, closer)

		next := endID
		if i < len(tour.Steps)-1 {
			next = stepID(i + 1)
		}
		fmt.Fprintf(&sb, "    %s --> %s\n", id, next)

		if i < len(tour.Steps)-1 {
			if step.HasButton(domain.ButtonSkip) {
				fmt.Fprintf(&sb, "    %s -. skip .-> %s\n", id, endID)
			}
			if step.HasButton(domain.ButtonDashboard) {
				fmt.Fprintf(&sb, "    %s -. dashboard .-> %s\n", id, endID)
			}
		}
	}
	fmt.Fprintf(&sb, "    %s[(\"end: %s\")]\n", endID, escape(tour.Key))

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Black text keeps labels readable on light fills in both themes.
		sb.WriteString("    classDef dropped fill:#eeeeee,stroke:#9e9e9e,stroke-dasharray:5 5,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		for i := range tour.Steps {
			if _, ok := overlay.Resolved[i]; !ok {
				fmt.Fprintf(&sb, "    class %s dropped;\n", stepID(i))
			}
		}
		if overlay.CurrentStep >= 0 && overlay.CurrentStep < len(tour.Steps) {
			fmt.Fprintf(&sb, "    class %s current;\n", stepID(overlay.CurrentStep))
		}
	}

	return sb.String()
}

// OverlayFor builds an overlay from the steps that resolved on a page.
// Declared indices are recovered by walking the tour in order, which is
// sound because resolution preserves order and never re-inserts.
func OverlayFor(tour domain.TourDefinition, steps []domain.RuntimeStep) *GraphOverlay {
	o := &GraphOverlay{Resolved: make(map[int]string, len(steps)), CurrentStep: -1}
	j := 0
	for i, spec := range tour.Steps {
		if j >= len(steps) {
			break
		}
		rs := steps[j]
		if rs.Title == spec.Title && rs.Target == spec.Target && rs.Fallback == spec.Fallback {
			o.Resolved[i] = rs.Selector
			j++
		}
	}
	return o
}

func stepID(i int) string {
	return fmt.Sprintf("step_%d", i)
}

func escape(s string) string {
	return strings.ReplaceAll(s, "\"", "'")
}
