/*
Package spotlight is a guided tour engine: it walks a user through a page one
element at a time, dimming everything else, pointing a tooltip at the element
and remembering who has already seen which tour.

# Concept

A tour is data: an ordered list of steps, each naming a target selector (or none,
for a centered panel), an optional fallback selector, a title, a description, a
preferred tooltip position and a set of declarative buttons. The engine owns the
lifecycle (start, next, previous, skip, end) while the host owns the page,
reached through the ports.Renderer capability boundary, and the durable
"seen" flags, reached through ports.SettingsStore.

# Key Features

  - Target resolution with fallbacks: steps whose targets are missing are dropped
    before the tour starts, and skipped if they vanish mid-tour.
  - Viewport-aware placement: tooltips flip and clamp so they stay on screen.
  - Exact highlight restore: the spotlighted element gets its inline styles back
    exactly as they were.
  - Serialized operations: every call and renderer callback runs on one mailbox,
    and only the most recent step request is ever shown.

# Usage

	package main

	import (
		"context"
		"log"

		"github.com/aretw0/spotlight"
		"github.com/aretw0/spotlight/pkg/adapters/headless"
		"github.com/aretw0/spotlight/pkg/domain"
	)

	func main() {
		page := headless.New()
		page.Add("#search", domain.Rect{Left: 400, Top: 20, Width: 200, Height: 32}, "")

		eng, err := spotlight.New("./tours", spotlight.WithRenderer(page))
		if err != nil {
			log.Fatal(err)
		}

		ctx := context.Background()
		eng.StartTour(ctx, "main")
		eng.NextStep(ctx)
		eng.SkipTour(ctx)
	}

# Storage

Progress lives in a single settings mapping. Use pkg/adapters/memory for tests,
pkg/adapters/file for a JSON file, pkg/adapters/gdata for per-user application
data and pkg/adapters/redis for shared deployments. The reserved key
"forceShowTour" shows tours even when they were already seen.
*/
package spotlight
