package domain

// Style is a set of inline style properties.
// An empty value removes the property from the element.
type Style map[string]string

// Inline style properties touched by the engine.
const (
	PropPosition      = "position"
	PropZIndex        = "z-index"
	PropLeft          = "left"
	PropTop           = "top"
	PropWidth         = "width"
	PropHeight        = "height"
	PropMaxWidth      = "max-width"
	PropOpacity       = "opacity"
	PropTransform     = "transform"
	PropVisibility    = "visibility"
	PropDisplay       = "display"
	PropBoxShadow     = "box-shadow"
	PropAnimation     = "animation"
	PropPointerEvents = "pointer-events"
)

// NodeKind identifies the engine-owned layers.
type NodeKind string

const (
	NodeOverlay   NodeKind = "tour-overlay"
	NodeHighlight NodeKind = "tour-highlight"
	NodeTooltip   NodeKind = "tour-tooltip"
)

// ElementRef is an opaque handle to an element owned by a renderer.
type ElementRef string

// TooltipContent is the data a renderer lays out inside the tooltip.
type TooltipContent struct {
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Buttons     []ButtonKind `json:"buttons"`

	// Progress is the "Step n of m" caption; empty on the first and last step.
	Progress string `json:"progress,omitempty"`

	StepIndex int `json:"step_index"`
	Total     int `json:"total"`

	// DontShowAgain is the checkbox state when the dont-show-again control is present.
	DontShowAgain bool `json:"dont_show_again,omitempty"`
}
