package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/aretw0/spotlight"
	"github.com/aretw0/spotlight/internal/logging"
	"github.com/aretw0/spotlight/pkg/adapters/headless"
	"github.com/aretw0/spotlight/pkg/domain"
	"github.com/aretw0/spotlight/pkg/observability"
	"github.com/aretw0/spotlight/pkg/ports"
	"golang.org/x/term"
)

// SimulateOptions configures an interactive tour run on a headless document.
type SimulateOptions struct {
	Tour      string
	Loader    ports.TourLoader
	Store     ports.SettingsStore
	Layout    *Layout
	Viewport  domain.Size
	Delay     time.Duration
	ForceShow bool
	Logger    *slog.Logger
	Hooks     domain.LifecycleHooks

	In  io.Reader
	Out io.Writer
	// Raw reads single key presses instead of lines.
	Raw bool
}

// SimulateResult summarizes a simulation.
type SimulateResult struct {
	SessionID string
	Started   bool
	Ended     bool
	Reason    domain.EndReason
	MarkSeen  bool
	Shown     []int
}

type simulation struct {
	out io.Writer

	mu      sync.Mutex
	content domain.TooltipContent
	result  SimulateResult
	ended   chan struct{}
}

// Simulate runs one tour against a headless page, driven by keys or commands read from In.
// It returns when the tour ends, the input is exhausted, or ctx is cancelled.
func Simulate(ctx context.Context, opts SimulateOptions) (SimulateResult, error) {
	if opts.Out == nil {
		opts.Out = os.Stdout
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNop()
	}
	if opts.Layout == nil {
		opts.Layout = &Layout{}
	}

	docOpts := []headless.Option{}
	if opts.Viewport.Width > 0 && opts.Viewport.Height > 0 {
		docOpts = append(docOpts, headless.WithViewport(opts.Viewport))
	}
	docOpts = append(docOpts, opts.Layout.DocumentOptions()...)
	if opts.Delay > 0 {
		docOpts = append(docOpts, headless.WithDelay(opts.Delay))
	}
	doc := headless.New(docOpts...)
	opts.Layout.Apply(doc)

	sim := &simulation{out: opts.Out, ended: make(chan struct{})}

	engineOpts := []spotlight.Option{
		spotlight.WithLoader(opts.Loader),
		spotlight.WithRenderer(doc),
		spotlight.WithLogger(opts.Logger),
		spotlight.WithLifecycleHooks(observability.Chain(sim.hooks(), opts.Hooks)),
		spotlight.WithForceShow(opts.ForceShow),
	}
	if opts.Store != nil {
		engineOpts = append(engineOpts, spotlight.WithStore(opts.Store))
	}
	engine, err := spotlight.New("", engineOpts...)
	if err != nil {
		return SimulateResult{}, fmt.Errorf("error initializing spotlight: %w", err)
	}

	engine.StartTour(ctx, opts.Tour)
	if !engine.Session().Active() {
		printSystemMessage(opts.Out, "Tour '%s' did not start (unknown, already seen, or no targets on this page).", opts.Tour)
		return sim.snapshot(), nil
	}
	printSystemMessage(opts.Out, "%s", controlsHelp(opts.Raw))

	inputs := readInputs(ctx, opts.In, opts.Raw)
	for {
		select {
		case <-ctx.Done():
			return sim.snapshot(), nil
		case <-sim.ended:
			return sim.snapshot(), nil
		case batch, ok := <-inputs:
			if !ok {
				return sim.snapshot(), nil
			}
			for _, in := range batch {
				if in.Kind == InputQuit {
					engine.SkipTour(ctx)
					sim.wait(ctx)
					return sim.snapshot(), nil
				}
				sim.apply(ctx, engine, in)
			}
		}
	}
}

func (s *simulation) hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTourStart: func(_ context.Context, e *domain.TourEvent) {
			s.mu.Lock()
			s.result.Started = true
			s.result.SessionID = e.SessionID
			s.mu.Unlock()
		},
		OnStepShow: func(_ context.Context, e *domain.StepEvent) {
			s.mu.Lock()
			s.content = e.Content
			s.result.Shown = append(s.result.Shown, e.StepIndex)
			s.mu.Unlock()
			s.printStep(e)
		},
		OnTourEnd: func(_ context.Context, e *domain.TourEvent) {
			s.mu.Lock()
			s.result.Ended = true
			s.result.Reason = e.Reason
			s.result.MarkSeen = e.MarkSeen
			s.mu.Unlock()
			printSystemMessage(s.out, "Tour ended (%s).", e.Reason)
			close(s.ended)
		},
	}
}

func (s *simulation) printStep(e *domain.StepEvent) {
	where := "centered"
	if !e.Centered {
		where = fmt.Sprintf("next to %s at (%g, %g)", e.Selector, e.Left, e.Top)
	}
	fmt.Fprintf(s.out, "\n%s\n", headless.RenderTooltip(e.Content, 60))
	printSystemMessage(s.out, "Step %d/%d, %s", e.StepIndex+1, e.Content.Total, where)
}

func (s *simulation) apply(ctx context.Context, engine *spotlight.Engine, in Input) {
	switch in.Kind {
	case InputKey:
		engine.HandleKey(ctx, in.Key)
	case InputButton:
		engine.Press(ctx, in.Button)
	case InputPrimary:
		if b, ok := s.primary(); ok {
			engine.Press(ctx, b)
		}
	case InputToggle:
		engine.ToggleDontShowAgain()
		sess := engine.Session()
		mark := "[ ]"
		if sess.DontShowAgain {
			mark = "[x]"
		}
		printSystemMessage(s.out, "%s %s", mark, domain.ButtonDontShowAgain.Label())
	}
}

// primary is the first declared button other than the checkbox.
func (s *simulation) primary() (domain.ButtonKind, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, b := range s.content.Buttons {
		if b != domain.ButtonDontShowAgain && b != domain.ButtonSkip {
			return b, true
		}
	}
	return "", false
}

func (s *simulation) wait(ctx context.Context) {
	select {
	case <-s.ended:
	case <-ctx.Done():
	}
}

func (s *simulation) snapshot() SimulateResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := s.result
	r.Shown = append([]int(nil), s.result.Shown...)
	return r
}

func controlsHelp(raw bool) string {
	if raw {
		return "Keys: → ↓ next, ← ↑ back, Enter main button, d toggle don't-show-again, s skip, Esc skip, q quit"
	}
	return "Commands: next, back, skip, done, toggle, esc, quit (empty line presses the main button)"
}

// readInputs decodes In on a goroutine. The channel closes on EOF or cancellation.
func readInputs(ctx context.Context, in io.Reader, raw bool) <-chan []Input {
	ch := make(chan []Input)
	r := NewInterruptibleReader(in, ctx.Done())

	send := func(batch []Input) bool {
		if len(batch) == 0 {
			return true
		}
		select {
		case ch <- batch:
			return true
		case <-ctx.Done():
			return false
		}
	}

	go func() {
		defer close(ch)
		if raw {
			buf := make([]byte, 16)
			for {
				n, err := r.Read(buf)
				if n > 0 && !send(ParseKeys(buf[:n])) {
					return
				}
				if err != nil {
					return
				}
			}
		}
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			if !send([]Input{ParseCommand(scanner.Text())}) {
				return
			}
		}
	}()
	return ch
}

// MakeRaw switches f to raw mode when it is a terminal. The returned function
// restores the previous mode; ok is false when f is not a terminal.
func MakeRaw(f *os.File) (restore func(), ok bool) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return func() {}, false
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return func() {}, false
	}
	return func() { _ = term.Restore(fd, state) }, true
}

// CRLFWriter translates "\n" to "\r\n", which raw terminals need.
type CRLFWriter struct {
	W io.Writer
}

func (c CRLFWriter) Write(p []byte) (int, error) {
	s := strings.ReplaceAll(string(p), "\n", "\r\n")
	if _, err := io.WriteString(c.W, s); err != nil {
		return 0, err
	}
	return len(p), nil
}
