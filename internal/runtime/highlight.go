package runtime

import (
	"fmt"
	"math"

	"github.com/aretw0/spotlight/pkg/domain"
)

// layers are the engine-owned nodes, created once and reused across tours.
type layers struct {
	overlay   domain.ElementRef
	highlight domain.ElementRef
	tooltip   domain.ElementRef
}

// highlightRecord remembers what showHighlight changed on a page element.
type highlightRecord struct {
	ref domain.ElementRef

	zIndex    string
	hasZIndex bool

	position    string
	hasPosition bool
	forced      bool
}

// ensureLayers creates missing layers, including ones removed from the page since.
func (e *Engine) ensureLayers() {
	if e.layers.overlay == "" || !e.renderer.Exists(e.layers.overlay) {
		e.layers.overlay = e.renderer.CreateNode(domain.NodeOverlay)
		e.renderer.SetStyle(e.layers.overlay, domain.Style{
			domain.PropZIndex:        domain.ZIndexOverlay,
			domain.PropOpacity:       "0",
			domain.PropPointerEvents: "none",
		})
	}
	if e.layers.highlight == "" || !e.renderer.Exists(e.layers.highlight) {
		e.layers.highlight = e.renderer.CreateNode(domain.NodeHighlight)
		e.renderer.SetStyle(e.layers.highlight, domain.Style{
			domain.PropZIndex:        domain.ZIndexHighlight,
			domain.PropOpacity:       "0",
			domain.PropTransform:     "scale(0.95)",
			domain.PropPointerEvents: "none",
		})
	}
	if e.layers.tooltip == "" || !e.renderer.Exists(e.layers.tooltip) {
		e.layers.tooltip = e.renderer.CreateNode(domain.NodeTooltip)
		e.renderer.SetStyle(e.layers.tooltip, domain.Style{
			domain.PropZIndex:    domain.ZIndexTooltip,
			domain.PropOpacity:   "0",
			domain.PropTransform: "scale(0.9) translateY(-10px)",
		})
	}
}

func (e *Engine) showOverlay() {
	e.renderer.SetStyle(e.layers.overlay, domain.Style{
		domain.PropOpacity:       "1",
		domain.PropPointerEvents: "auto",
	})
}

func (e *Engine) hideOverlay() {
	e.renderer.SetStyle(e.layers.overlay, domain.Style{
		domain.PropOpacity:       "0",
		domain.PropPointerEvents: "none",
	})
}

// showHighlight frames ref and lifts it above the overlay and the frame.
// Any previous highlight is released first.
func (e *Engine) showHighlight(ref domain.ElementRef) {
	e.hideHighlight()

	rect, ok := e.renderer.Measure(ref)
	if !ok {
		return
	}
	box := rect.Expand(domain.HighlightPadding)
	vp := e.renderer.Viewport()
	spread := math.Max(vp.Width, vp.Height) * 2

	e.renderer.SetStyle(e.layers.highlight, domain.Style{
		domain.PropLeft:          domain.Px(box.Left),
		domain.PropTop:           domain.Px(box.Top),
		domain.PropWidth:         domain.Px(box.Width),
		domain.PropHeight:        domain.Px(box.Height),
		domain.PropOpacity:       "1",
		domain.PropTransform:     "scale(1)",
		domain.PropPointerEvents: "none",
		domain.PropBoxShadow: fmt.Sprintf(
			"0 0 0 %s rgba(0, 0, 0, 0.75), 0 0 40px rgba(24, 203, 150, 0.8), inset 0 0 20px rgba(24, 203, 150, 0.15)",
			domain.Px(spread)),
		domain.PropAnimation: "tourPulse 2s ease-in-out infinite",
	})

	rec := &highlightRecord{ref: ref}
	rec.zIndex, rec.hasZIndex = e.renderer.InlineStyle(ref, domain.PropZIndex)
	rec.position, rec.hasPosition = e.renderer.InlineStyle(ref, domain.PropPosition)

	lift := domain.Style{domain.PropZIndex: domain.ZIndexElement}
	if pos := e.renderer.ComputedStyle(ref, domain.PropPosition); pos == "" || pos == "static" {
		lift[domain.PropPosition] = "relative"
		rec.forced = true
	}
	e.renderer.SetStyle(ref, lift)
	e.highlighted = rec
}

// hideHighlight hides the frame and restores the element's original inline
// z-index and position exactly. Calling it again is a no-op for the element.
func (e *Engine) hideHighlight() {
	if e.layers.highlight != "" {
		e.renderer.SetStyle(e.layers.highlight, domain.Style{
			domain.PropOpacity:   "0",
			domain.PropTransform: "scale(0.95)",
			domain.PropAnimation: "none",
			domain.PropBoxShadow: "",
		})
	}

	rec := e.highlighted
	if rec == nil {
		return
	}
	e.highlighted = nil
	if !e.renderer.Exists(rec.ref) {
		return
	}

	restore := domain.Style{domain.PropZIndex: ""}
	if rec.hasZIndex {
		restore[domain.PropZIndex] = rec.zIndex
	}
	if rec.forced {
		restore[domain.PropPosition] = ""
		if rec.hasPosition {
			restore[domain.PropPosition] = rec.position
		}
	}
	e.renderer.SetStyle(rec.ref, restore)
}
