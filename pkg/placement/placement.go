// Package placement computes where a tour tooltip goes relative to its target
// while keeping it inside the viewport.
package placement

import (
	"math"

	"github.com/aretw0/spotlight/pkg/domain"
)

// Anchor tells the renderer how to interpret Left/Top.
type Anchor string

const (
	// AnchorTopLeft means Left/Top are the tooltip's top-left corner.
	AnchorTopLeft Anchor = "top-left"
	// AnchorCenter means Left/Top are the tooltip's center (translate(-50%, -50%)).
	AnchorCenter Anchor = "center"
)

// Placement is the computed tooltip position.
type Placement struct {
	Left     float64 `json:"left"`
	Top      float64 `json:"top"`
	MaxWidth float64 `json:"max_width"`
	Anchor   Anchor  `json:"anchor"`
}

// TooltipSize turns a measured content size into the size used for placement.
// Unknown dimensions fall back to the defaults and the width never exceeds
// the viewport minus the tooltip margin.
func TooltipSize(measured, viewport domain.Size) domain.Size {
	w := measured.Width
	if w <= 0 {
		w = domain.DefaultTooltipWidth
	}
	h := measured.Height
	if h <= 0 {
		h = domain.DefaultTooltipHeight
	}
	return domain.Size{
		Width:  math.Min(w, viewport.Width-domain.TooltipMargin),
		Height: h,
	}
}

// Center places a tooltip at the exact viewport center.
func Center(viewport domain.Size) Placement {
	return Placement{
		Left:     viewport.Width / 2,
		Top:      viewport.Height / 2,
		MaxWidth: domain.CenterMaxWidth,
		Anchor:   AnchorCenter,
	}
}

// Place computes the tooltip position for a target rectangle.
func Place(target domain.Rect, desired domain.Position, tooltip, viewport domain.Size, padding float64) Placement {
	if desired == domain.PositionCenter {
		return Center(viewport)
	}

	p := Placement{MaxWidth: tooltip.Width, Anchor: AnchorTopLeft}
	w, h := tooltip.Width, tooltip.Height
	vw, vh := viewport.Width, viewport.Height

	switch desired {
	case domain.PositionRight:
		p.Left = target.Right() + padding
		p.Top = target.Top + target.Height/2 - h/2
		if p.Left+w > vw-padding {
			p.Left = target.Left - w - padding
			if p.Left < padding {
				p.Left = padding
				p.Top = below(target, h, vh, padding)
			}
		}
		p.Top = clamp(p.Top, padding, vh-h-padding)

	case domain.PositionLeft:
		p.Left = target.Left - w - padding
		p.Top = target.Top + target.Height/2 - h/2
		if p.Left < padding {
			p.Left = target.Right() + padding
			if p.Left+w > vw-padding {
				p.Left = padding
				p.Top = below(target, h, vh, padding)
			}
		}
		p.Top = clamp(p.Top, padding, vh-h-padding)

	case domain.PositionTop:
		p.Left = clamp(target.Left+target.Width/2-w/2, padding, vw-w-padding)
		p.Top = target.Top - h - padding
		if p.Top < padding {
			p.Top = target.Bottom() + padding
		}

	case domain.PositionBottom:
		p.Left = clamp(target.Left+target.Width/2-w/2, padding, vw-w-padding)
		p.Top = target.Bottom() + padding
		if p.Top+h > vh-padding {
			p.Top = target.Top - h - padding
		}

	default:
		p.Left = target.Right() + padding
		p.Top = target.Top
	}

	return p
}

// below places the tooltip under the target, or above it when below overflows.
func below(target domain.Rect, h, vh, padding float64) float64 {
	top := target.Bottom() + padding
	if top+h > vh-padding {
		top = target.Top - h - padding
	}
	return top
}

// clamp applies the lower bound first, then the upper bound, so the upper bound
// wins when the tooltip is taller (or wider) than the available space.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}
