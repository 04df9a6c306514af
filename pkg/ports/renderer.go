package ports

import "github.com/aretw0/spotlight/pkg/domain"

// Renderer is the document capability the engine drives. It is the only side-effect
// boundary of the tour: a browser bridge, a headless virtual document, or a test fake.
//
// Callbacks passed to ScrollIntoView and AwaitTransition may be invoked synchronously
// or later from another goroutine; the engine serializes them either way.
type Renderer interface {
	// Query resolves a selector to at most one live element.
	Query(selector string) (domain.ElementRef, bool)

	// Exists reports whether a previously obtained element is still attached.
	Exists(ref domain.ElementRef) bool

	// CreateNode attaches a new engine-owned layer and returns its handle.
	CreateNode(kind domain.NodeKind) domain.ElementRef

	// Measure returns the element's bounding box in viewport coordinates.
	Measure(ref domain.ElementRef) (domain.Rect, bool)

	// Viewport returns the current viewport size.
	Viewport() domain.Size

	// InlineStyle returns an explicitly set inline property and whether it is set.
	InlineStyle(ref domain.ElementRef, prop string) (string, bool)

	// ComputedStyle returns the effective value of a property.
	ComputedStyle(ref domain.ElementRef, prop string) string

	// SetStyle applies inline properties; an empty value removes the property.
	SetStyle(ref domain.ElementRef, style domain.Style)

	// SetContent replaces the tooltip body.
	SetContent(ref domain.ElementRef, content domain.TooltipContent)

	// ContentSize returns the laid-out size of the element's content.
	// A zero dimension means the size is unknown.
	ContentSize(ref domain.ElementRef) domain.Size

	// ScrollIntoView scrolls the element to the viewport center and calls done once settled.
	ScrollIntoView(ref domain.ElementRef, done func())

	// SetScrollLocked locks or unlocks page scrolling.
	SetScrollLocked(locked bool)

	// AwaitTransition calls done once the element's running visual transition completes.
	AwaitTransition(ref domain.ElementRef, done func())
}
