package domain

import "errors"

// ErrTourNotFound is returned when a tour name cannot be found by the loader.
var ErrTourNotFound = errors.New("tour not found")

// ErrInvalidTour is returned when a tour definition fails validation.
var ErrInvalidTour = errors.New("invalid tour definition")

// ErrNoRenderer is returned when an engine is built without a renderer.
var ErrNoRenderer = errors.New("renderer is required")
