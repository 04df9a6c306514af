// Package headless provides an in-process virtual document implementing ports.Renderer.
//
// It models just enough of a page for the tour engine: elements addressed by
// selector, bounding boxes, inline and computed styles, scroll locking and
// visual transitions whose completion is signalled explicitly.
package headless

import (
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/aretw0/spotlight/pkg/domain"
)

// TransitionMode controls when AwaitTransition and ScrollIntoView callbacks fire.
type TransitionMode int

const (
	// TransitionImmediate completes every transition synchronously.
	TransitionImmediate TransitionMode = iota
	// TransitionManual queues callbacks until Flush or Advance is called.
	TransitionManual
	// TransitionDelayed completes transitions after a fixed delay on a timer goroutine.
	TransitionDelayed
)

// Element is a snapshot of one element in the document.
type Element struct {
	Ref      domain.ElementRef
	Selector string
	Kind     domain.NodeKind
	Rect     domain.Rect
	Inline   domain.Style
	Computed domain.Style
	Content  *domain.TooltipContent
}

type element struct {
	Element
	fixed bool
}

// Document is a virtual page. Safe for concurrent use.
type Document struct {
	mu        sync.Mutex
	viewport  domain.Size
	elements  map[domain.ElementRef]*element
	selectors map[string]domain.ElementRef
	seq       int

	mode    TransitionMode
	delay   time.Duration
	pending []func()

	scrollLocked bool
	scrolls      []domain.ElementRef

	cell     domain.Size
	maxCells int
}

// Option configures a Document.
type Option func(*Document)

// WithViewport sets the viewport size (default 1280×800).
func WithViewport(size domain.Size) Option {
	return func(d *Document) {
		d.viewport = size
	}
}

// WithTransitions selects how transitions complete.
func WithTransitions(mode TransitionMode) Option {
	return func(d *Document) {
		d.mode = mode
	}
}

// WithDelay makes transitions complete after delay.
func WithDelay(delay time.Duration) Option {
	return func(d *Document) {
		d.mode = TransitionDelayed
		d.delay = delay
	}
}

// WithCellSize sets the pixel size of one text cell used to measure tooltip content.
func WithCellSize(size domain.Size) Option {
	return func(d *Document) {
		d.cell = size
	}
}

// New creates an empty document.
func New(opts ...Option) *Document {
	d := &Document{
		viewport:  domain.Size{Width: 1280, Height: 800},
		elements:  make(map[domain.ElementRef]*element),
		selectors: make(map[string]domain.ElementRef),
		mode:      TransitionImmediate,
		delay:     domain.DefaultTransitionDelay,
		cell:      domain.Size{Width: 8, Height: 18},
		maxCells:  44,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Add attaches a page element reachable by selector.
// computedPosition is the stylesheet position value ("static" when empty).
func (d *Document) Add(selector string, rect domain.Rect, computedPosition string) domain.ElementRef {
	d.mu.Lock()
	defer d.mu.Unlock()

	if computedPosition == "" {
		computedPosition = "static"
	}
	d.seq++
	ref := domain.ElementRef("el-" + strconv.Itoa(d.seq))
	d.elements[ref] = &element{Element: Element{
		Ref:      ref,
		Selector: selector,
		Rect:     rect,
		Inline:   domain.Style{},
		Computed: domain.Style{domain.PropPosition: computedPosition},
	}}
	d.selectors[selector] = ref
	return ref
}

// Remove detaches the element matched by selector or ref.
func (d *Document) Remove(ref domain.ElementRef) {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, ok := d.elements[ref]
	if !ok {
		return
	}
	if el.Selector != "" && d.selectors[el.Selector] == ref {
		delete(d.selectors, el.Selector)
	}
	delete(d.elements, ref)
}

// RemoveSelector detaches the element matched by selector.
func (d *Document) RemoveSelector(selector string) {
	d.mu.Lock()
	ref, ok := d.selectors[selector]
	d.mu.Unlock()
	if ok {
		d.Remove(ref)
	}
}

// Element returns a snapshot of an element.
func (d *Document) Element(ref domain.ElementRef) (Element, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, ok := d.elements[ref]
	if !ok {
		return Element{}, false
	}
	snap := el.Element
	snap.Inline = cloneStyle(el.Inline)
	snap.Computed = cloneStyle(el.Computed)
	if el.Content != nil {
		c := *el.Content
		snap.Content = &c
	}
	return snap, true
}

// Nodes returns the refs of engine-owned layers of the given kind, sorted.
func (d *Document) Nodes(kind domain.NodeKind) []domain.ElementRef {
	d.mu.Lock()
	defer d.mu.Unlock()

	var refs []domain.ElementRef
	for ref, el := range d.elements {
		if el.Kind == kind {
			refs = append(refs, ref)
		}
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i] < refs[j] })
	return refs
}

// ScrollLocked reports whether page scrolling is locked.
func (d *Document) ScrollLocked() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.scrollLocked
}

// Scrolls returns the elements scrolled into view so far.
func (d *Document) Scrolls() []domain.ElementRef {
	d.mu.Lock()
	defer d.mu.Unlock()
	return append([]domain.ElementRef(nil), d.scrolls...)
}

// Pending returns the number of queued callbacks in manual mode.
func (d *Document) Pending() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Advance runs the callbacks queued so far, but not the ones they queue.
func (d *Document) Advance() {
	d.mu.Lock()
	batch := d.pending
	d.pending = nil
	d.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
}

// Flush runs queued callbacks until none are left.
func (d *Document) Flush() {
	for d.Pending() > 0 {
		d.Advance()
	}
}

// complete fires done according to the transition mode. Never called with mu held.
func (d *Document) complete(done func()) {
	if done == nil {
		return
	}
	d.mu.Lock()
	mode, delay := d.mode, d.delay
	if mode == TransitionManual {
		d.pending = append(d.pending, done)
		d.mu.Unlock()
		return
	}
	d.mu.Unlock()

	if mode == TransitionDelayed {
		time.AfterFunc(delay, done)
		return
	}
	done()
}

func cloneStyle(s domain.Style) domain.Style {
	out := make(domain.Style, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

