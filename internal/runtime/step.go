package runtime

import (
	"context"
	"fmt"
	"time"

	"github.com/aretw0/spotlight/pkg/domain"
	"github.com/aretw0/spotlight/pkg/placement"
)

// showStep renders step i. A step whose target vanished since start is skipped;
// running past the last step ends the tour as exhausted.
func (e *Engine) showStep(ctx context.Context, i int) {
	s := e.session
	if i < 0 || i >= len(s.steps) {
		e.logger.Debug("no remaining steps to show", "tour", s.tour.Name, "index", i)
		e.endTour(ctx, domain.EndExhausted)
		return
	}

	s.index = i
	step := s.steps[i]
	e.generation++
	gen := e.generation

	e.ensureLayers()
	e.showOverlay()

	if step.Centered() {
		e.hideHighlight()
		e.showCentered(ctx, step, i)
		return
	}

	ref, ok := e.renderer.Query(step.Selector)
	if !ok {
		e.logger.Debug("step target vanished, skipping", "tour", s.tour.Name, "index", i, "selector", step.Selector)
		e.showStep(ctx, i+1)
		return
	}

	e.renderer.ScrollIntoView(ref, e.later(func() {
		if gen != e.generation || !e.running() {
			return
		}
		if !e.renderer.Exists(ref) {
			e.showStep(ctx, i+1)
			return
		}
		e.showHighlight(ref)
		e.showTooltip(ctx, ref, step, i)
	}))
}

func (e *Engine) showCentered(ctx context.Context, step domain.RuntimeStep, i int) {
	tip := e.layers.tooltip
	content := e.content(step, i)
	e.renderer.SetContent(tip, content)
	e.session.shown = i

	p := placement.Center(e.renderer.Viewport())
	e.applyPlacement(p)
	e.emitStepShow(ctx, e.stepEvent(step, i, content, p))
}

func (e *Engine) showTooltip(ctx context.Context, ref domain.ElementRef, step domain.RuntimeStep, i int) {
	tip := e.layers.tooltip
	content := e.content(step, i)
	e.renderer.SetContent(tip, content)
	e.session.shown = i

	// Measure laid out but invisible so the new size never flashes on screen.
	e.renderer.SetStyle(tip, domain.Style{domain.PropVisibility: "hidden", domain.PropDisplay: "block"})
	measured := e.renderer.ContentSize(tip)
	e.renderer.SetStyle(tip, domain.Style{domain.PropVisibility: ""})

	vp := e.renderer.Viewport()
	target, ok := e.renderer.Measure(ref)
	var p placement.Placement
	if ok {
		size := placement.TooltipSize(measured, vp)
		p = placement.Place(target, step.Position, size, vp, domain.TooltipPadding)
	} else {
		p = placement.Center(vp)
	}
	e.applyPlacement(p)
	e.emitStepShow(ctx, e.stepEvent(step, i, content, p))
}

func (e *Engine) applyPlacement(p placement.Placement) {
	style := domain.Style{
		domain.PropLeft:     domain.Px(p.Left),
		domain.PropTop:      domain.Px(p.Top),
		domain.PropMaxWidth: domain.Px(p.MaxWidth),
		domain.PropOpacity:  "1",
	}
	if p.Anchor == placement.AnchorCenter {
		style[domain.PropTransform] = "translate(-50%, -50%) scale(1)"
	} else {
		style[domain.PropTransform] = "scale(1) translateY(0)"
	}
	e.renderer.SetStyle(e.layers.tooltip, style)
}

func (e *Engine) content(step domain.RuntimeStep, i int) domain.TooltipContent {
	total := len(e.session.steps)
	c := domain.TooltipContent{
		Title:         step.Title,
		Description:   step.Description,
		Buttons:       step.Buttons,
		StepIndex:     i,
		Total:         total,
		DontShowAgain: e.session.dontShow,
	}
	// The first and last steps are the welcome and farewell panels; they are not counted.
	if i != 0 && i != total-1 {
		c.Progress = fmt.Sprintf("Step %d of %d", i+1, total-1)
	}
	return c
}

func (e *Engine) stepEvent(step domain.RuntimeStep, i int, content domain.TooltipContent, p placement.Placement) *domain.StepEvent {
	s := e.session
	return &domain.StepEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventStepShow, SessionID: s.id, Tour: s.tour.Name},
		StepIndex: i,
		Selector:  step.Selector,
		Content:   content,
		Left:      p.Left,
		Top:       p.Top,
		Centered:  p.Anchor == placement.AnchorCenter,
	}
}

// hideCurrentStep fades the tooltip out and releases the highlighted element.
func (e *Engine) hideCurrentStep() {
	e.renderer.SetStyle(e.layers.tooltip, domain.Style{
		domain.PropOpacity:   "0",
		domain.PropTransform: "scale(0.9) translateY(-10px)",
	})
	e.hideHighlight()
}
