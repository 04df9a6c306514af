package ports

import "github.com/aretw0/spotlight/pkg/domain"

// TourLoader defines how the engine retrieves tour definitions.
// Tour content is data; loaders keep it editable without touching the engine.
type TourLoader interface {
	// GetTour retrieves a tour by name.
	// Returns domain.ErrTourNotFound if the tour does not exist.
	GetTour(name string) (domain.TourDefinition, error)

	// ListTours returns the names of all available tours, sorted.
	ListTours() ([]string, error)
}
