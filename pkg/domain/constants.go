package domain

import "time"

// StorageKey is the fixed identifier of the durable settings mapping.
// It is deliberately distinct from any other application storage key.
const StorageKey = "spotlight_tour_settings"

// ForceShowKey is the reserved settings key that overrides the "seen" gate.
const ForceShowKey = "forceShowTour"

// Layout constants, in CSS pixels.
const (
	// HighlightPadding expands the target rectangle around the spotlighted element.
	HighlightPadding = 12.0
	// TooltipPadding is the gap between target and tooltip, and the minimum viewport margin.
	TooltipPadding = 20.0
	// TooltipMargin is subtracted from the viewport width to cap the tooltip width.
	TooltipMargin = 40.0
	// DefaultTooltipWidth is used when the tooltip content cannot be measured.
	DefaultTooltipWidth = 384.0
	// DefaultTooltipHeight is used when the tooltip content cannot be measured.
	DefaultTooltipHeight = 200.0
	// CenterMaxWidth caps the width of centered modal steps.
	CenterMaxWidth = 500.0
)

// Stacking order of the tour layers. The spotlighted element sits above all of them.
const (
	ZIndexOverlay   = "9998"
	ZIndexHighlight = "9999"
	ZIndexTooltip   = "10000"
	ZIndexElement   = "10001"
)

// DefaultTransitionDelay is the duration hosts without transition events should wait
// for hide/show animations and smooth scrolling to settle.
const DefaultTransitionDelay = 300 * time.Millisecond
