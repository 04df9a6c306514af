package domain

// Phase is the lifecycle state of the engine.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseRunning Phase = "running"
	PhaseEnding  Phase = "ending"
)

// Session is a read-only snapshot of the active tour run.
type Session struct {
	ID    string `json:"id"`
	Tour  string `json:"tour"`
	Key   string `json:"key"`
	Phase Phase  `json:"phase"`

	// StepIndex is 0-based and valid in [0, Total) while running.
	StepIndex int `json:"step_index"`
	Total     int `json:"total"`

	// DontShowAgain mirrors the "don't show again" checkbox.
	DontShowAgain bool `json:"dont_show_again"`
}

// Active reports whether a tour occupies the engine (running or tearing down).
func (s Session) Active() bool {
	return s.Phase == PhaseRunning || s.Phase == PhaseEnding
}
