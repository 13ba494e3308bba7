package orbits

import (
	"fmt"
	"math"
	"time"
)

// Transfer holds the parameters of an Hohmann transfer.
type Transfer struct {
	// Primary is the body around which the transfer ellipse is conceived.
	Primary *CelestialBody
	// Departure and Arrival are the orbits around Primary which the transfer ellipse touches.
	// They are the starting and destination orbits unless the transfer is interplanetary.
	Departure, Arrival *Orbit
	SemiMajorAxis      float64 // meters
	TransferTime       float64 // seconds
	InsertionΔv        float64 // m/s, to leave the starting orbit
	ArrivalΔv          float64 // m/s, to enter the destination orbit
	start, dest        *Orbit
}

// NewTransfer computes the Hohmann transfer from the starting orbit to the destination orbit.
// Both orbits must share a primary body, either directly or through the orbits of their
// primaries (e.g. two orbits around different planets of the same star). In the latter case,
// the transfer is computed between the planets and the departure and arrival burns are
// patched onto each planet's hyperbolic escape. An orbit cannot be transferred to or from the
// orbit followed by one of its own primaries.
// NewTransfer is a pure function and is safe for concurrent use on a graph nobody mutates.
func NewTransfer(start, dest *Orbit) (Transfer, error) {
	if start == nil || dest == nil {
		return Transfer{}, ErrNotConfigured
	}
	departure, arrival, err := commonPrimary(start, dest)
	if err != nil {
		return Transfer{}, err
	}
	primary := departure.primary
	Δv1, Δv2, tof := Hohmann(departure.r, arrival.r, primary.GM())
	t := Transfer{
		Primary:       primary,
		Departure:     departure,
		Arrival:       arrival,
		SemiMajorAxis: 0.5 * (departure.r + arrival.r),
		TransferTime:  tof,
		InsertionΔv:   Δv1,
		ArrivalΔv:     Δv2,
		start:         start,
		dest:          dest,
	}
	if departure != start {
		t.InsertionΔv = HyperbolicΔv(Δv1, start.r, start.GM())
	}
	if arrival != dest {
		t.ArrivalΔv = HyperbolicΔv(Δv2, dest.r, dest.GM())
	}
	return t, nil
}

// commonPrimary walks both orbit chains upward and returns, for each side, the orbit which
// directly circles the lowest body the two chains have in common.
func commonPrimary(start, dest *Orbit) (departure, arrival *Orbit, err error) {
	if start.primary == dest.primary {
		return start, dest, nil
	}
	startChain, err := start.ancestry()
	if err != nil {
		return nil, nil, err
	}
	destChain, err := dest.ancestry()
	if err != nil {
		return nil, nil, err
	}
	around := make(map[*CelestialBody]*Orbit, len(startChain))
	for _, o := range startChain {
		around[o.primary] = o
	}
	for _, o := range destChain {
		if d, found := around[o.primary]; found {
			if d == o {
				// One input is the orbit followed by a primary of the other input.
				return nil, nil, fmt.Errorf("%w: %s is followed by a primary of %s", ErrIncompatibleOrbits, d, other(start, dest, d))
			}
			return d, o, nil
		}
	}
	return nil, nil, fmt.Errorf("%w: %s and %s", ErrIncompatibleOrbits, start.primary, dest.primary)
}

func other(start, dest, o *Orbit) *Orbit {
	if o == start {
		return dest
	}
	return start
}

// StartingOrbit returns the orbit the transfer leaves from.
func (t Transfer) StartingOrbit() *Orbit {
	return t.start
}

// DestinationOrbit returns the orbit the transfer ends in.
func (t Transfer) DestinationOrbit() *Orbit {
	return t.dest
}

// TotalΔv returns the sum of the insertion and arrival burns.
func (t Transfer) TotalΔv() float64 {
	return t.InsertionΔv + t.ArrivalΔv
}

// TOF returns the time of flight.
func (t Transfer) TOF() time.Duration {
	return seconds(t.TransferTime)
}

// Interplanetary returns whether either end of the transfer orbits a body other than Primary.
func (t Transfer) Interplanetary() bool {
	return t.Departure != t.start || t.Arrival != t.dest
}

// PhaseAngle returns the angle in radians by which the arrival body must lead the departure
// body when the insertion burn is performed. Negative values mean it must trail.
func (t Transfer) PhaseAngle() float64 {
	if t.Arrival == nil {
		return math.NaN()
	}
	return math.Pi - t.Arrival.meanMotion()*t.TransferTime
}

// SynodicPeriod returns the time in seconds between two launch opportunities, or zero when
// both ends of the transfer ellipse move at the same rate.
func (t Transfer) SynodicPeriod() float64 {
	if t.Departure == nil || t.Arrival == nil || t.Departure.r == t.Arrival.r {
		return 0
	}
	return SynodicPeriod(t.Departure.meanMotion(), t.Arrival.meanMotion())
}

// LaunchDelay returns the time in seconds until the next launch window, given the current
// angle in radians by which the arrival body leads the departure body. It returns false when
// the two bodies do not drift relative to each other.
func (t Transfer) LaunchDelay(currentPhase float64) (float64, bool) {
	if t.Departure == nil || t.Arrival == nil || t.Departure.r == t.Arrival.r {
		return 0, false
	}
	rate := t.Arrival.meanMotion() - t.Departure.meanMotion()
	Δθ := t.PhaseAngle() - currentPhase
	if rate < 0 {
		Δθ = -Δθ
	}
	Δθ = math.Mod(Δθ, 2*math.Pi)
	if Δθ < 0 {
		Δθ += 2 * math.Pi
	}
	return Δθ / math.Abs(rate), true
}

// String implements the Stringer interface.
func (t Transfer) String() string {
	return fmt.Sprintf("Hohmann around %s: tof=%s Δv1=%.3f m/s Δv2=%.3f m/s Δv=%.3f m/s", t.Primary, t.TOF(), t.InsertionΔv, t.ArrivalΔv, t.TotalΔv())
}

// Calculator computes an Hohmann transfer from orbits set one at a time, and keeps the last
// successful result. A calculator is meant for a single computation and is not safe for
// concurrent use: prefer NewTransfer when sharing is needed.
type Calculator struct {
	start, dest *Orbit
	last        Transfer
	computed    bool
}

// NewCalculator returns a calculator without any orbit set.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// NewCalculatorWith returns a calculator with both orbits set.
func NewCalculatorWith(start, dest *Orbit) *Calculator {
	return &Calculator{start: start, dest: dest}
}

// SetStartingOrbit sets the orbit to transfer from. Validation is deferred to Calculate.
func (c *Calculator) SetStartingOrbit(o *Orbit) {
	c.start = o
}

// SetDestinationOrbit sets the orbit to transfer to. Validation is deferred to Calculate.
func (c *Calculator) SetDestinationOrbit(o *Orbit) {
	c.dest = o
}

// StartingOrbit returns the orbit to transfer from.
func (c *Calculator) StartingOrbit() *Orbit {
	return c.start
}

// DestinationOrbit returns the orbit to transfer to.
func (c *Calculator) DestinationOrbit() *Orbit {
	return c.dest
}

// Calculate computes the transfer between the orbits currently set. On success, the result
// replaces the previous one; on failure, the previous result is kept.
func (c *Calculator) Calculate() (Transfer, error) {
	t, err := NewTransfer(c.start, c.dest)
	if err != nil {
		return Transfer{}, err
	}
	c.last = t
	c.computed = true
	return t, nil
}

// Result returns the last computed transfer, and false if nothing was computed yet.
func (c *Calculator) Result() (Transfer, bool) {
	return c.last, c.computed
}
