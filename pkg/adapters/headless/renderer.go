package headless

import (
	"strconv"

	"github.com/aretw0/spotlight/pkg/domain"
	"github.com/aretw0/spotlight/pkg/ports"
)

var _ ports.Renderer = (*Document)(nil)

// Query resolves a selector registered with Add.
func (d *Document) Query(selector string) (domain.ElementRef, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	ref, ok := d.selectors[selector]
	return ref, ok
}

// Exists reports whether ref is attached.
func (d *Document) Exists(ref domain.ElementRef) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.elements[ref]
	return ok
}

// CreateNode attaches a fixed-position engine layer.
func (d *Document) CreateNode(kind domain.NodeKind) domain.ElementRef {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.seq++
	ref := domain.ElementRef(string(kind) + "-" + strconv.Itoa(d.seq))
	d.elements[ref] = &element{
		Element: Element{
			Ref:      ref,
			Kind:     kind,
			Inline:   domain.Style{},
			Computed: domain.Style{domain.PropPosition: "fixed"},
		},
		fixed: true,
	}
	return ref
}

// Measure returns the bounding box. Engine layers are measured from their inline geometry.
func (d *Document) Measure(ref domain.ElementRef) (domain.Rect, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, ok := d.elements[ref]
	if !ok {
		return domain.Rect{}, false
	}
	if el.fixed {
		return domain.Rect{
			Left:   px(el.Inline[domain.PropLeft]),
			Top:    px(el.Inline[domain.PropTop]),
			Width:  px(el.Inline[domain.PropWidth]),
			Height: px(el.Inline[domain.PropHeight]),
		}, true
	}
	return el.Rect, true
}

// Viewport returns the viewport size.
func (d *Document) Viewport() domain.Size {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.viewport
}

// InlineStyle returns an explicitly set inline property.
func (d *Document) InlineStyle(ref domain.ElementRef, prop string) (string, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, ok := d.elements[ref]
	if !ok {
		return "", false
	}
	v, ok := el.Inline[prop]
	return v, ok
}

// ComputedStyle returns the inline value when set, else the stylesheet value.
func (d *Document) ComputedStyle(ref domain.ElementRef, prop string) string {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, ok := d.elements[ref]
	if !ok {
		return ""
	}
	if v, ok := el.Inline[prop]; ok {
		return v
	}
	if v, ok := el.Computed[prop]; ok {
		return v
	}
	if prop == domain.PropPosition {
		return "static"
	}
	return ""
}

// SetStyle applies inline properties; empty values remove them.
func (d *Document) SetStyle(ref domain.ElementRef, style domain.Style) {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, ok := d.elements[ref]
	if !ok {
		return
	}
	for k, v := range style {
		if v == "" {
			delete(el.Inline, k)
			continue
		}
		el.Inline[k] = v
	}
}

// SetContent replaces the element's tooltip content.
func (d *Document) SetContent(ref domain.ElementRef, content domain.TooltipContent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	el, ok := d.elements[ref]
	if !ok {
		return
	}
	c := content
	c.Buttons = append([]domain.ButtonKind(nil), content.Buttons...)
	el.Content = &c
}

// ContentSize lays out the tooltip content and converts cells to pixels.
// Hidden (display: none) or empty elements report a zero size.
func (d *Document) ContentSize(ref domain.ElementRef) domain.Size {
	d.mu.Lock()
	el, ok := d.elements[ref]
	if !ok || el.Content == nil || el.Inline[domain.PropDisplay] == "none" {
		d.mu.Unlock()
		return domain.Size{}
	}
	content := *el.Content
	cell, maxCells := d.cell, d.maxCells
	d.mu.Unlock()

	return MeasureTooltip(content, maxCells, cell)
}

// ScrollIntoView centers an off-screen element vertically by shifting page elements.
func (d *Document) ScrollIntoView(ref domain.ElementRef, done func()) {
	d.mu.Lock()
	if el, ok := d.elements[ref]; ok {
		d.scrolls = append(d.scrolls, ref)
		if el.Rect.Top < 0 || el.Rect.Bottom() > d.viewport.Height {
			delta := d.viewport.Height/2 - (el.Rect.Top + el.Rect.Height/2)
			for _, other := range d.elements {
				if !other.fixed {
					other.Rect.Top += delta
				}
			}
		}
	}
	d.mu.Unlock()

	d.complete(done)
}

// SetScrollLocked records the page scroll lock.
func (d *Document) SetScrollLocked(locked bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.scrollLocked = locked
}

// AwaitTransition signals completion according to the transition mode.
func (d *Document) AwaitTransition(ref domain.ElementRef, done func()) {
	d.complete(done)
}

func px(v string) float64 {
	if len(v) > 2 && v[len(v)-2:] == "px" {
		v = v[:len(v)-2]
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0
	}
	return f
}
