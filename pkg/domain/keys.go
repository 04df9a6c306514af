package domain

// Key is a keyboard key name as reported by the host (KeyboardEvent.key in browsers).
type Key string

const (
	KeyArrowRight Key = "ArrowRight"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowUp    Key = "ArrowUp"
	KeyEscape     Key = "Escape"
)

// Action is what the engine does in response to input.
type Action string

const (
	ActionNone     Action = ""
	ActionNext     Action = "next"
	ActionPrevious Action = "previous"
	ActionSkip     Action = "skip"
	ActionEnd      Action = "end"
	ActionToggle   Action = "toggle-dont-show"
)

// KeyAction maps the keyboard surface onto engine actions.
func KeyAction(k Key) Action {
	switch k {
	case KeyArrowRight, KeyArrowDown:
		return ActionNext
	case KeyArrowLeft, KeyArrowUp:
		return ActionPrevious
	case KeyEscape:
		return ActionSkip
	}
	return ActionNone
}

// ButtonAction maps a declarative button tag onto an engine action.
func ButtonAction(b ButtonKind) Action {
	switch b {
	case ButtonStart, ButtonNext:
		return ActionNext
	case ButtonSkip:
		return ActionSkip
	case ButtonDone, ButtonDashboard:
		return ActionEnd
	case ButtonDontShowAgain:
		return ActionToggle
	}
	return ActionNone
}
