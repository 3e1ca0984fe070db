package brewing

import "errors"

// Domain errors for the brewing package.
//
// These errors can be checked using errors.Is() for error handling:
//
//	if errors.Is(err, brewing.ErrTeapotNotFound) {
//	    // handle not found case
//	}
var (
	// ErrTeapotNotFound is returned when a teapot ID does not exist.
	ErrTeapotNotFound = errors.New("brewing: teapot not found")

	// ErrTeaNotFound is returned when a tea ID does not exist.
	ErrTeaNotFound = errors.New("brewing: tea not found")

	// ErrBrewNotFound is returned when a brew ID does not exist.
	ErrBrewNotFound = errors.New("brewing: brew not found")

	// ErrSteepNotFound is returned when a steep ID does not exist.
	ErrSteepNotFound = errors.New("brewing: steep not found")
)
