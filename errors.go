package orbits

import "errors"

var (
	// ErrInvalidParameter is returned when a mass or a radius is not strictly positive and finite.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrNilPrimaryBody is returned when an orbit is created without a body to orbit.
	ErrNilPrimaryBody = errors.New("orbit requires a primary body")
	// ErrNotConfigured is returned when a transfer is requested before both orbits are known.
	ErrNotConfigured = errors.New("starting and destination orbits must be set")
	// ErrIncompatibleOrbits is returned when two orbits do not share a gravitational primary.
	ErrIncompatibleOrbits = errors.New("orbits do not share a primary body")
	// ErrOrbitCycle is returned when walking up a body's orbits leads back to a visited body.
	ErrOrbitCycle = cycleError{}
	// ErrUnknownBody is returned when a body lookup by name fails.
	ErrUnknownBody = errors.New("unknown body")
)

// cycleError is also an ErrIncompatibleOrbits: a cyclic graph has no shared primary.
type cycleError struct{}

func (cycleError) Error() string { return "orbit chain loops back on itself" }

func (cycleError) Is(target error) bool { return target == ErrIncompatibleOrbits }
