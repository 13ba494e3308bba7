package orbits

import (
	"fmt"
	"math"
)

const (
	// G is Newton's gravitational constant in m^3 kg^-1 s^-2.
	G = 6.674e-11
)

// CelestialBody defines a massive object, possibly itself orbiting a larger one.
// Note: bodies are compared by identity only, the name is for humans.
type CelestialBody struct {
	Name   string
	Radius float64 // Mean physical radius in meters, zero when unknown.
	mass   float64
	orbit  *Orbit
}

// NewCelestialBody returns a body of the provided mass in kilograms.
func NewCelestialBody(name string, mass float64) (*CelestialBody, error) {
	if !positive(mass) {
		return nil, fmt.Errorf("%w: mass of %q must be greater than 0 (got %g)", ErrInvalidParameter, name, mass)
	}
	return &CelestialBody{Name: name, mass: mass}, nil
}

// Mass returns the mass in kilograms.
func (c *CelestialBody) Mass() float64 {
	return c.mass
}

// GM returns μ, the standard gravitational parameter.
func (c *CelestialBody) GM() float64 {
	return G * c.mass
}

// Orbit returns the orbit this body follows, or nil if it does not orbit anything.
func (c *CelestialBody) Orbit() *Orbit {
	return c.orbit
}

// SetOrbit sets the orbit this body follows around its own primary.
// It is meant to be called once, after the orbit has been built around the larger body.
func (c *CelestialBody) SetOrbit(o *Orbit) {
	c.orbit = o
}

// String implements the Stringer interface.
func (c *CelestialBody) String() string {
	if c.Name == "" {
		return fmt.Sprintf("unnamed body (%g kg)", c.mass)
	}
	return c.Name + " body"
}

// positive returns whether v is strictly positive and finite (NaN is not).
func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
