package orbits

import (
	"fmt"
	"math"
	"time"
)

// Orbit defines a circular orbit around a primary body.
// The primary is not owned by the orbit and may be shared with other orbits.
type Orbit struct {
	r       float64
	primary *CelestialBody
}

// NewOrbit returns a circular orbit of radius r (in meters) around the primary body.
func NewOrbit(r float64, primary *CelestialBody) (*Orbit, error) {
	if !positive(r) {
		return nil, fmt.Errorf("%w: orbit radius must be greater than 0 (got %g)", ErrInvalidParameter, r)
	}
	if primary == nil {
		return nil, ErrNilPrimaryBody
	}
	return &Orbit{r, primary}, nil
}

// Radius returns the orbit radius in meters.
func (o *Orbit) Radius() float64 {
	return o.r
}

// Primary returns the body being orbited.
func (o *Orbit) Primary() *CelestialBody {
	return o.primary
}

// GM returns μ of the primary body.
func (o *Orbit) GM() float64 {
	return o.primary.GM()
}

// Speed returns the circular orbital speed in m/s.
func (o *Orbit) Speed() float64 {
	return math.Sqrt(o.GM() / o.r)
}

// Energyξ returns the specific mechanical energy ξ.
func (o *Orbit) Energyξ() float64 {
	return -o.GM() / (2 * o.r)
}

// Period returns the period of this orbit.
func (o *Orbit) Period() time.Duration {
	return seconds(2 * math.Pi * math.Sqrt(math.Pow(o.r, 3)/o.GM()))
}

// meanMotion returns the angular rate in rad/s.
func (o *Orbit) meanMotion() float64 {
	return math.Sqrt(o.GM() / math.Pow(o.r, 3))
}

// String implements the Stringer interface.
func (o *Orbit) String() string {
	return fmt.Sprintf("r=%.1f m around %s", o.r, o.primary)
}

// ancestry returns the orbit followed by the walk from o up to the root body:
// o itself, then the orbit of o's primary, and so on.
func (o *Orbit) ancestry() ([]*Orbit, error) {
	chain := []*Orbit{o}
	seen := map[*CelestialBody]bool{o.primary: true}
	for next := o.primary.orbit; next != nil; next = next.primary.orbit {
		if seen[next.primary] {
			return nil, fmt.Errorf("%w at %s", ErrOrbitCycle, next.primary)
		}
		seen[next.primary] = true
		chain = append(chain, next)
	}
	return chain, nil
}

// seconds converts a floating point number of seconds to a duration.
func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
