package runtime

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/spotlight/internal/logging"
	"github.com/aretw0/spotlight/pkg/domain"
	"github.com/aretw0/spotlight/pkg/ports"
	"github.com/google/uuid"
)

// Engine is the guided tour state machine.
//
// All operations are serialized through an internal mailbox: a call made while
// another operation (or a renderer callback) is executing is queued and runs
// right after it, mirroring the single-threaded event loop of a page.
type Engine struct {
	loader   ports.TourLoader
	store    ports.SettingsStore
	renderer ports.Renderer
	hooks    domain.LifecycleHooks
	logger   *slog.Logger
	newID    func() string

	mu       sync.Mutex
	queue    []func()
	draining bool

	// stateMu guards everything below. It is held for the whole duration of a
	// mailbox job so Session() never observes a half-applied transition.
	stateMu     sync.RWMutex
	forceShow   bool
	session     *session
	layers      layers
	highlighted *highlightRecord
	generation  uint64
	notify      []func()
}

type session struct {
	id       string
	tour     domain.TourDefinition
	steps    []domain.RuntimeStep
	index    int // requested step
	shown    int // step whose tooltip is on screen, -1 before the first
	phase    domain.Phase
	dontShow bool
}

// displayed returns the step the user is looking at. It lags index while a
// transition is pending.
func (s *session) displayed() (domain.RuntimeStep, bool) {
	if s.shown < 0 || s.shown >= len(s.steps) {
		return domain.RuntimeStep{}, false
	}
	return s.steps[s.shown], true
}

// EngineOption configures the Engine.
type EngineOption func(*Engine)

// WithLogger sets a custom structured logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) EngineOption {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithForceShow sets the transient override that shows tours already marked as seen.
// It is never written to the settings store.
func WithForceShow(force bool) EngineOption {
	return func(e *Engine) {
		e.forceShow = force
	}
}

// WithIDGenerator replaces the session ID generator (uuid by default).
func WithIDGenerator(fn func() string) EngineOption {
	return func(e *Engine) {
		if fn != nil {
			e.newID = fn
		}
	}
}

// NewEngine creates a new engine with dependencies.
func NewEngine(loader ports.TourLoader, store ports.SettingsStore, renderer ports.Renderer, opts ...EngineOption) *Engine {
	e := &Engine{
		loader:   loader,
		store:    store,
		renderer: renderer,
		logger:   logging.NewNop(),
		newID:    uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// do runs fn on the mailbox.
func (e *Engine) do(fn func()) {
	e.mu.Lock()
	e.queue = append(e.queue, fn)
	if e.draining {
		e.mu.Unlock()
		return
	}
	e.draining = true
	for len(e.queue) > 0 {
		next := e.queue[0]
		e.queue = e.queue[1:]
		e.mu.Unlock()
		e.run(next)
		e.mu.Lock()
	}
	e.draining = false
	e.mu.Unlock()
}

func (e *Engine) run(fn func()) {
	e.stateMu.Lock()
	fn()
	notify := e.notify
	e.notify = nil
	e.stateMu.Unlock()

	// Hooks run outside the state lock so they may call back into the engine.
	for _, n := range notify {
		n()
	}
}

// later schedules fn as a new mailbox job. Safe to call from renderer callbacks.
func (e *Engine) later(fn func()) func() {
	return func() { e.do(fn) }
}

// Session returns a snapshot of the current session.
func (e *Engine) Session() domain.Session {
	e.stateMu.RLock()
	defer e.stateMu.RUnlock()

	s := e.session
	if s == nil {
		return domain.Session{Phase: domain.PhaseIdle}
	}
	return domain.Session{
		ID:            s.id,
		Tour:          s.tour.Name,
		Key:           s.tour.Key,
		Phase:         s.phase,
		StepIndex:     s.index,
		Total:         len(s.steps),
		DontShowAgain: s.dontShow,
	}
}

// SetForceShow changes the transient force override.
func (e *Engine) SetForceShow(force bool) {
	e.do(func() { e.forceShow = force })
}

// StartTour starts the named tour. It is a silent no-op when a tour is already
// active, the tour does not exist, it was already seen (and no force override is
// set), or none of its steps resolve on the current page.
func (e *Engine) StartTour(ctx context.Context, name string) {
	e.do(func() { e.startTour(ctx, name) })
}

// NextStep advances, or ends the tour on the last step.
func (e *Engine) NextStep(ctx context.Context) {
	e.do(func() { e.nextStep(ctx) })
}

// PreviousStep goes back one step; no-op on the first step.
func (e *Engine) PreviousStep(ctx context.Context) {
	e.do(func() { e.previousStep(ctx) })
}

// SkipTour aborts the tour from any step.
func (e *Engine) SkipTour(ctx context.Context) {
	e.do(func() { e.endTour(ctx, domain.EndSkipped) })
}

// EndTour finishes the tour as completed.
func (e *Engine) EndTour(ctx context.Context) {
	e.do(func() { e.endTour(ctx, domain.EndCompleted) })
}

// ResetAllTourProgress clears every persisted flag and, when restart is not
// empty, starts that tour right away.
func (e *Engine) ResetAllTourProgress(ctx context.Context, restart string) {
	e.do(func() {
		if err := e.store.Reset(ctx); err != nil {
			e.logger.Warn("failed to reset tour settings", "error", err)
		}
		if restart != "" {
			e.startTour(ctx, restart)
		}
	})
}

func (e *Engine) startTour(ctx context.Context, name string) {
	if e.session != nil {
		e.logger.Debug("start ignored: tour already active", "tour", name, "active", e.session.tour.Name)
		return
	}

	tour, err := e.loader.GetTour(name)
	if err != nil {
		if errors.Is(err, domain.ErrTourNotFound) {
			e.logger.Debug("start ignored: unknown tour", "tour", name)
		} else {
			e.logger.Warn("failed to load tour", "tour", name, "error", err)
		}
		return
	}

	settings, err := e.store.Load(ctx)
	if err != nil {
		e.logger.Warn("failed to load tour settings, assuming none", "error", err)
		settings = domain.Settings{}
	}
	if settings.Seen(tour.Key) && !e.forceShow && !settings.ForceShow() {
		e.logger.Debug("start ignored: tour already seen", "tour", name, "key", tour.Key)
		return
	}

	steps := ResolveSteps(e.renderer, tour)
	if len(steps) == 0 {
		e.logger.Debug("start ignored: no resolvable steps", "tour", name)
		return
	}

	e.ensureLayers()
	e.session = &session{
		id:    e.newID(),
		tour:  tour,
		steps: steps,
		shown: -1,
		phase: domain.PhaseRunning,
	}
	e.renderer.SetScrollLocked(true)
	e.logger.Info("tour started", "tour", name, "session_id", e.session.id, "steps", len(steps), "declared", len(tour.Steps))
	e.emitTourStart(ctx)
	e.showStep(ctx, 0)
}

func (e *Engine) running() bool {
	return e.session != nil && e.session.phase == domain.PhaseRunning
}

func (e *Engine) nextStep(ctx context.Context) {
	if !e.running() {
		return
	}
	s := e.session
	if s.index >= len(s.steps)-1 {
		e.endTour(ctx, domain.EndCompleted)
		return
	}
	s.index++
	e.transition(ctx, s.index)
}

func (e *Engine) previousStep(ctx context.Context) {
	if !e.running() {
		return
	}
	s := e.session
	if s.index <= 0 {
		return
	}
	s.index--
	e.transition(ctx, s.index)
}

// transition hides the current step and shows target once the hide completes.
// A newer transition supersedes a pending one.
func (e *Engine) transition(ctx context.Context, target int) {
	e.generation++
	gen := e.generation
	e.hideCurrentStep()
	e.renderer.AwaitTransition(e.layers.tooltip, e.later(func() {
		if gen != e.generation || !e.running() {
			return
		}
		e.showStep(ctx, target)
	}))
}

func (e *Engine) endTour(ctx context.Context, reason domain.EndReason) {
	if !e.running() {
		return
	}
	s := e.session

	step, ok := s.displayed()
	markSeen := ok && s.dontShow && step.HasButton(domain.ButtonDontShowAgain)
	if markSeen {
		if err := e.store.Set(ctx, s.tour.Key, true); err != nil {
			e.logger.Warn("failed to mark tour as seen", "tour", s.tour.Name, "key", s.tour.Key, "error", err)
		}
	}

	s.phase = domain.PhaseEnding
	e.generation++
	e.hideCurrentStep()
	e.hideOverlay()

	bg := context.WithoutCancel(ctx)
	e.renderer.AwaitTransition(e.layers.overlay, e.later(func() {
		e.finishTour(bg, s, reason, markSeen)
	}))
}

func (e *Engine) finishTour(ctx context.Context, s *session, reason domain.EndReason, markSeen bool) {
	if e.session != s {
		return
	}
	e.renderer.SetScrollLocked(false)
	e.hideHighlight()
	e.session = nil
	e.logger.Info("tour ended", "tour", s.tour.Name, "session_id", s.id, "reason", reason, "step", s.index, "mark_seen", markSeen)
	e.emitTourEnd(ctx, s, reason, markSeen)
}

func (e *Engine) emitTourStart(ctx context.Context) {
	if e.hooks.OnTourStart == nil {
		return
	}
	s := e.session
	ev := &domain.TourEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventTourStart, SessionID: s.id, Tour: s.tour.Name},
		Steps:     len(s.steps),
	}
	e.notify = append(e.notify, func() { e.hooks.OnTourStart(ctx, ev) })
}

func (e *Engine) emitTourEnd(ctx context.Context, s *session, reason domain.EndReason, markSeen bool) {
	if e.hooks.OnTourEnd == nil {
		return
	}
	ev := &domain.TourEvent{
		EventBase: domain.EventBase{Timestamp: time.Now(), Type: domain.EventTourEnd, SessionID: s.id, Tour: s.tour.Name},
		Steps:     len(s.steps),
		StepIndex: s.index,
		Reason:    reason,
		MarkSeen:  markSeen,
	}
	e.notify = append(e.notify, func() { e.hooks.OnTourEnd(ctx, ev) })
}

func (e *Engine) emitStepShow(ctx context.Context, ev *domain.StepEvent) {
	if e.hooks.OnStepShow == nil {
		return
	}
	e.notify = append(e.notify, func() { e.hooks.OnStepShow(ctx, ev) })
}
