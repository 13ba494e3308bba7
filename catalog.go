package orbits

import (
	"fmt"
	"sort"
	"strings"
)

const (
	// AU is one astronomical unit in meters.
	AU = 1.49597870700e11
)

// catalogEntry describes a body of the solar system. Orbits are approximated as circles of
// radius equal to the mean semi-major axis.
type catalogEntry struct {
	name    string
	mass    float64 // kg
	radius  float64 // m
	primary string
	a       float64 // m
}

// Entries are sorted so that a primary always comes before what orbits it.
var solarSystem = []catalogEntry{
	// Sun is our closest star.
	{"Sun", 1.989e30, 6.957e8, "", 0},
	{"Mercury", 3.3011e23, 2.4397e6, "Sun", 5.7909e10},
	// Venus is poisonous.
	{"Venus", 4.8675e24, 6.0518e6, "Sun", 1.08208e11},
	// Earth is home.
	{"Earth", 5.972e24, 6.371e6, "Sun", 1.496e11},
	{"Moon", 7.342e22, 1.7374e6, "Earth", 3.844e8},
	// Mars is the vacation place.
	{"Mars", 6.4171e23, 3.3895e6, "Sun", 2.27939e11},
	{"Phobos", 1.0659e16, 1.1267e4, "Mars", 9.376e6},
	{"Deimos", 1.4762e15, 6.2e3, "Mars", 2.3463e7},
	// Jupiter is big.
	{"Jupiter", 1.8982e27, 6.9911e7, "Sun", 7.78479e11},
	{"Io", 8.9319e22, 1.8216e6, "Jupiter", 4.217e8},
	{"Europa", 4.7998e22, 1.5608e6, "Jupiter", 6.709e8},
	{"Ganymede", 1.4819e23, 2.6341e6, "Jupiter", 1.0704e9},
	{"Callisto", 1.0759e23, 2.4103e6, "Jupiter", 1.8827e9},
	// Saturn floats and that's really cool.
	{"Saturn", 5.6834e26, 5.8232e7, "Sun", 1.43353e12},
	{"Titan", 1.3452e23, 2.5747e6, "Saturn", 1.22187e9},
	{"Uranus", 8.681e25, 2.5362e7, "Sun", 2.870972e12},
	{"Neptune", 1.02413e26, 2.4622e7, "Sun", 4.498253e12},
	{"Triton", 2.139e22, 1.3534e6, "Neptune", 3.54759e8},
	// Pluto is not a planet and had that down ranking coming.
	{"Pluto", 1.303e22, 1.1883e6, "Sun", 5.90638e12},
	{"Charon", 1.586e21, 6.06e5, "Pluto", 1.9591e7},
}

// SolarSystem is a freshly built graph of the bodies of the solar system.
// Each call to NewSolarSystem returns new bodies, so graphs are never shared between callers.
type SolarSystem struct {
	bodies map[string]*CelestialBody
	names  []string
}

// NewSolarSystem builds the solar system catalog.
func NewSolarSystem() (*SolarSystem, error) {
	s := &SolarSystem{bodies: make(map[string]*CelestialBody, len(solarSystem))}
	for _, e := range solarSystem {
		if err := s.add(e.name, e.mass, e.radius, e.primary, e.a); err != nil {
			return nil, err
		}
	}
	return s, nil
}

func (s *SolarSystem) add(name string, mass, radius float64, primary string, a float64) error {
	body, err := NewCelestialBody(name, mass)
	if err != nil {
		return err
	}
	body.Radius = radius
	if primary != "" {
		p, err := s.Body(primary)
		if err != nil {
			return err
		}
		o, err := NewOrbit(a, p)
		if err != nil {
			return fmt.Errorf("orbit of %s: %w", name, err)
		}
		body.SetOrbit(o)
	}
	s.bodies[strings.ToLower(name)] = body
	s.names = append(s.names, name)
	return nil
}

// Body returns the body from its name (case insensitive).
func (s *SolarSystem) Body(name string) (*CelestialBody, error) {
	if b, found := s.bodies[strings.ToLower(strings.TrimSpace(name))]; found {
		return b, nil
	}
	return nil, fmt.Errorf("%w '%s'", ErrUnknownBody, name)
}

// Bodies returns all bodies, primaries first.
func (s *SolarSystem) Bodies() []*CelestialBody {
	bodies := make([]*CelestialBody, len(s.names))
	for i, name := range s.names {
		bodies[i] = s.bodies[strings.ToLower(name)]
	}
	return bodies
}

// Names returns the sorted names of all bodies.
func (s *SolarSystem) Names() []string {
	names := append([]string(nil), s.names...)
	sort.Strings(names)
	return names
}

// ParkingOrbit returns the circular orbit at the provided altitude above the body's surface.
// A zero altitude above a body of unknown radius is rejected by NewOrbit.
func ParkingOrbit(body *CelestialBody, altitude float64) (*Orbit, error) {
	if body == nil {
		return nil, ErrNilPrimaryBody
	}
	if altitude < 0 {
		return nil, fmt.Errorf("%w: altitude above %s must not be negative (got %g)", ErrInvalidParameter, body, altitude)
	}
	return NewOrbit(body.Radius+altitude, body)
}

// Orbit returns the orbit at the provided altitude above the named body, or the orbit the
// body itself follows when altitude is nil.
func (s *SolarSystem) Orbit(name string, altitude *float64) (*Orbit, error) {
	body, err := s.Body(name)
	if err != nil {
		return nil, err
	}
	if altitude != nil {
		return ParkingOrbit(body, *altitude)
	}
	if body.Orbit() == nil {
		return nil, fmt.Errorf("%w: %s does not orbit anything, an altitude is required", ErrInvalidParameter, body)
	}
	return body.Orbit(), nil
}
