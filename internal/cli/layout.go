package cli

import (
	"fmt"
	"os"

	"github.com/aretw0/spotlight/pkg/adapters/headless"
	"github.com/aretw0/spotlight/pkg/domain"
	"gopkg.in/yaml.v3"
)

// Layout describes a page for the headless document: the elements a tour can target.
type Layout struct {
	Viewport *LayoutSize     `yaml:"viewport"`
	Elements []LayoutElement `yaml:"elements"`
}

// LayoutSize is a width/height pair in pixels.
type LayoutSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LayoutElement is one page element.
type LayoutElement struct {
	Selector string  `yaml:"selector"`
	Left     float64 `yaml:"left"`
	Top      float64 `yaml:"top"`
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"`
	Position string  `yaml:"position"`
}

// LoadLayout reads a layout file.
func LoadLayout(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse layout %s: %w", path, err)
	}
	for i, el := range l.Elements {
		if el.Selector == "" {
			return nil, fmt.Errorf("layout %s: element %d has no selector", path, i)
		}
	}
	return &l, nil
}

// SyntheticLayout builds a page where every target of the tour exists,
// stacked like sidebar links. Fallbacks are only used when a target is missing,
// so they are left out.
func SyntheticLayout(tour domain.TourDefinition) *Layout {
	l := &Layout{}
	seen := make(map[string]bool)
	row := 0
	for _, s := range tour.Steps {
		if s.Target == "" || seen[s.Target] {
			continue
		}
		seen[s.Target] = true
		l.Elements = append(l.Elements, LayoutElement{
			Selector: s.Target,
			Left:     16,
			Top:      96 + float64(row)*56,
			Width:    224,
			Height:   40,
		})
		row++
	}
	return l
}

// Apply adds the layout's elements to doc.
func (l *Layout) Apply(doc *headless.Document) {
	for _, el := range l.Elements {
		doc.Add(el.Selector, domain.Rect{Left: el.Left, Top: el.Top, Width: el.Width, Height: el.Height}, el.Position)
	}
}

// DocumentOptions returns the headless options implied by the layout.
func (l *Layout) DocumentOptions() []headless.Option {
	if l.Viewport == nil || l.Viewport.Width <= 0 || l.Viewport.Height <= 0 {
		return nil
	}
	return []headless.Option{headless.WithViewport(domain.Size{Width: l.Viewport.Width, Height: l.Viewport.Height})}
}
