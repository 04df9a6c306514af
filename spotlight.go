package spotlight

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/aretw0/spotlight/internal/logging"
	"github.com/aretw0/spotlight/internal/runtime"
	"github.com/aretw0/spotlight/pkg/adapters/file"
	"github.com/aretw0/spotlight/pkg/adapters/memory"
	"github.com/aretw0/spotlight/pkg/domain"
	"github.com/aretw0/spotlight/pkg/ports"
)

// Engine is the high-level entry point for the spotlight library.
// It wraps the internal runtime and provides a simplified API for hosts.
type Engine struct {
	runtime   *runtime.Engine
	loader    ports.TourLoader
	store     ports.SettingsStore
	renderer  ports.Renderer
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
	forceShow bool
	Name      string
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLoader injects a custom TourLoader, bypassing the default directory loader.
func WithLoader(l ports.TourLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithStore sets the settings store. Defaults to an in-memory store.
func WithStore(s ports.SettingsStore) Option {
	return func(e *Engine) {
		e.store = s
	}
}

// WithRenderer sets the document the tour is drawn on. Required.
func WithRenderer(r ports.Renderer) Option {
	return func(e *Engine) {
		e.renderer = r
	}
}

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(e *Engine) {
		e.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithForceShow shows tours even when they were already seen.
func WithForceShow(force bool) Option {
	return func(e *Engine) {
		e.forceShow = force
	}
}

// New initializes a new Engine.
// By default, tours are read from the YAML files in toursDir.
// If WithLoader is provided, toursDir can be empty.
func New(toursDir string, opts ...Option) (*Engine, error) {
	eng := &Engine{}
	for _, opt := range opts {
		opt(eng)
	}

	if eng.renderer == nil {
		return nil, domain.ErrNoRenderer
	}

	if eng.loader == nil {
		if toursDir == "" {
			return nil, fmt.Errorf("toursDir is required when no custom loader is provided")
		}
		absPath, err := filepath.Abs(toursDir)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		eng.Name = filepath.Base(absPath)
		eng.loader = file.NewLoader(absPath)
	} else if toursDir != "" {
		eng.Name = filepath.Base(toursDir)
	}

	if eng.store == nil {
		eng.store = memory.NewStore()
	}

	if eng.logger == nil {
		eng.logger = logging.NewNop()
	}
	if eng.Name != "" {
		eng.logger = eng.logger.With("tours", eng.Name)
	}

	eng.runtime = runtime.NewEngine(
		eng.loader,
		eng.store,
		eng.renderer,
		runtime.WithLifecycleHooks(eng.hooks),
		runtime.WithLogger(eng.logger),
		runtime.WithForceShow(eng.forceShow),
	)
	return eng, nil
}

// StartTour shows the named tour if it is eligible on the current page.
func (e *Engine) StartTour(ctx context.Context, name string) {
	e.runtime.StartTour(ctx, name)
}

// NextStep advances the active tour, ending it after the last step.
func (e *Engine) NextStep(ctx context.Context) {
	e.runtime.NextStep(ctx)
}

// PreviousStep goes back one step.
func (e *Engine) PreviousStep(ctx context.Context) {
	e.runtime.PreviousStep(ctx)
}

// SkipTour aborts the active tour.
func (e *Engine) SkipTour(ctx context.Context) {
	e.runtime.SkipTour(ctx)
}

// EndTour completes the active tour.
func (e *Engine) EndTour(ctx context.Context) {
	e.runtime.EndTour(ctx)
}

// Press dispatches a tooltip button.
func (e *Engine) Press(ctx context.Context, button domain.ButtonKind) {
	e.runtime.Press(ctx, button)
}

// HandleKey dispatches a keyboard key and reports whether it was consumed.
func (e *Engine) HandleKey(ctx context.Context, key domain.Key) bool {
	return e.runtime.HandleKey(ctx, key)
}

// ToggleDontShowAgain flips the "don't show again" checkbox.
func (e *Engine) ToggleDontShowAgain() {
	e.runtime.ToggleDontShowAgain()
}

// SetDontShowAgain sets the "don't show again" checkbox.
func (e *Engine) SetDontShowAgain(checked bool) {
	e.runtime.SetDontShowAgain(checked)
}

// ResetAllTourProgress clears all persisted progress and optionally restarts a tour.
func (e *Engine) ResetAllTourProgress(ctx context.Context, restart string) {
	e.runtime.ResetAllTourProgress(ctx, restart)
}

// SetForceShow changes the force override at runtime.
func (e *Engine) SetForceShow(force bool) {
	e.runtime.SetForceShow(force)
}

// Session returns a snapshot of the active session.
func (e *Engine) Session() domain.Session {
	return e.runtime.Session()
}

// Loader returns the underlying TourLoader.
func (e *Engine) Loader() ports.TourLoader {
	return e.loader
}

// Store returns the underlying SettingsStore.
func (e *Engine) Store() ports.SettingsStore {
	return e.store
}
