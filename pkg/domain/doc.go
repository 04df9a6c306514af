/*
Package domain contains the core domain models of the Spotlight tour engine.

It defines tours and their steps, the runtime session snapshot, the persisted
settings object, and the small geometry vocabulary used by placement. This
package is kept pure and free of external dependencies like I/O, persistence
or rendering, following Hexagonal Architecture principles.

# Key Entities

  - TourDefinition: A named, immutable sequence of StepSpec values plus the settings key that marks it as seen.
  - StepSpec: One unit of tour content, either anchored to a target selector or shown as a centered panel.
  - RuntimeStep: A StepSpec whose effective target has been resolved against the live document.
  - Session: The runtime snapshot of one tour run (phase, step index, checkbox state).
  - Settings: The durable flat map of boolean flags remembering which tours were seen.
*/
package domain
