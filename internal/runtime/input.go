package runtime

import (
	"context"

	"github.com/aretw0/spotlight/pkg/domain"
)

// HandleKey applies the keyboard surface. It reports whether the key was consumed,
// in which case the host should suppress the key's native action. Keys are
// ignored unless a tour is running.
func (e *Engine) HandleKey(ctx context.Context, key domain.Key) bool {
	action := domain.KeyAction(key)
	if action == domain.ActionNone {
		return false
	}
	e.stateMu.RLock()
	running := e.running()
	e.stateMu.RUnlock()
	if !running {
		return false
	}

	e.do(func() { e.dispatch(ctx, action) })
	return true
}

// Press dispatches a tooltip control. Controls the current step does not
// declare are ignored.
func (e *Engine) Press(ctx context.Context, button domain.ButtonKind) {
	e.do(func() {
		if !e.running() {
			return
		}
		if step, ok := e.session.displayed(); !ok || !step.HasButton(button) {
			return
		}
		e.dispatch(ctx, domain.ButtonAction(button))
	})
}

// ToggleDontShowAgain flips the "don't show again" checkbox on the current step.
func (e *Engine) ToggleDontShowAgain() {
	e.do(func() { e.setDontShow(!e.dontShow()) })
}

// SetDontShowAgain sets the "don't show again" checkbox on the current step.
func (e *Engine) SetDontShowAgain(checked bool) {
	e.do(func() { e.setDontShow(checked) })
}

func (e *Engine) dispatch(ctx context.Context, action domain.Action) {
	switch action {
	case domain.ActionNext:
		e.nextStep(ctx)
	case domain.ActionPrevious:
		e.previousStep(ctx)
	case domain.ActionSkip:
		e.endTour(ctx, domain.EndSkipped)
	case domain.ActionEnd:
		e.endTour(ctx, domain.EndCompleted)
	case domain.ActionToggle:
		e.setDontShow(!e.dontShow())
	}
}

func (e *Engine) dontShow() bool {
	return e.session != nil && e.session.dontShow
}

func (e *Engine) setDontShow(checked bool) {
	if !e.running() {
		return
	}
	s := e.session
	step, ok := s.displayed()
	if !ok || !step.HasButton(domain.ButtonDontShowAgain) || s.dontShow == checked {
		return
	}
	s.dontShow = checked
	e.renderer.SetContent(e.layers.tooltip, e.content(step, s.shown))
}
