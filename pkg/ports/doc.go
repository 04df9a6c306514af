/*
Package ports defines the driven ports (interfaces) for the Spotlight engine.

These interfaces decouple the tour logic from external implementations, allowing
the engine to run against a browser bridge, a headless virtual document, or a
fake in tests, and to persist its flags in any durable backend.

# Key Interfaces

  - TourLoader: Responsible for loading TourDefinition values (e.g., from YAML files or Memory).
  - SettingsStore: Responsible for the durable key → boolean "seen" flags.
  - Renderer: The document capability boundary (query, measure, style, create nodes, transitions).
*/
package ports
