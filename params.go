package orbits

import "fmt"

// SimpleParams describes a transfer between two orbits around the same primary body.
type SimpleParams struct {
	PrimaryBodyMass        float64 `json:"primaryBodyMass" yaml:"primaryBodyMass"`
	StartingOrbitRadius    float64 `json:"startingOrbitRadius" yaml:"startingOrbitRadius"`
	DestinationOrbitRadius float64 `json:"destinationOrbitRadius" yaml:"destinationOrbitRadius"`
}

// Transfer builds the primary body and both orbits, then computes the transfer.
func (p SimpleParams) Transfer() (Transfer, error) {
	primary, err := NewCelestialBody("primary", p.PrimaryBodyMass)
	if err != nil {
		return Transfer{}, err
	}
	start, err := NewOrbit(p.StartingOrbitRadius, primary)
	if err != nil {
		return Transfer{}, fmt.Errorf("starting orbit: %w", err)
	}
	dest, err := NewOrbit(p.DestinationOrbitRadius, primary)
	if err != nil {
		return Transfer{}, fmt.Errorf("destination orbit: %w", err)
	}
	return NewTransfer(start, dest)
}

// InterplanetaryParams describes a transfer from an orbit around a planet to an orbit around
// another planet, both planets orbiting the same primary body.
type InterplanetaryParams struct {
	SimpleParams                 `yaml:",inline"`
	StartingPlanetOrbitRadius    float64 `json:"startingPlanetOrbitRadius" yaml:"startingPlanetOrbitRadius"`
	StartingPlanetMass           float64 `json:"startingPlanetMass" yaml:"startingPlanetMass"`
	DestinationPlanetOrbitRadius float64 `json:"destinationPlanetOrbitRadius" yaml:"destinationPlanetOrbitRadius"`
	DestinationPlanetMass        float64 `json:"destinationPlanetMass" yaml:"destinationPlanetMass"`
}

// Transfer builds the primary body, both planets and their orbits, then computes the transfer.
func (p InterplanetaryParams) Transfer() (Transfer, error) {
	primary, err := NewCelestialBody("primary", p.PrimaryBodyMass)
	if err != nil {
		return Transfer{}, err
	}
	startPlanet, err := planet("starting planet", p.StartingPlanetMass, p.StartingPlanetOrbitRadius, primary)
	if err != nil {
		return Transfer{}, err
	}
	destPlanet, err := planet("destination planet", p.DestinationPlanetMass, p.DestinationPlanetOrbitRadius, primary)
	if err != nil {
		return Transfer{}, err
	}
	start, err := NewOrbit(p.StartingOrbitRadius, startPlanet)
	if err != nil {
		return Transfer{}, fmt.Errorf("starting orbit: %w", err)
	}
	dest, err := NewOrbit(p.DestinationOrbitRadius, destPlanet)
	if err != nil {
		return Transfer{}, fmt.Errorf("destination orbit: %w", err)
	}
	return NewTransfer(start, dest)
}

func planet(name string, mass, r float64, primary *CelestialBody) (*CelestialBody, error) {
	body, err := NewCelestialBody(name, mass)
	if err != nil {
		return nil, err
	}
	o, err := NewOrbit(r, primary)
	if err != nil {
		return nil, fmt.Errorf("%s orbit: %w", name, err)
	}
	body.SetOrbit(o)
	return body, nil
}

// Result is the outcome of a transfer as exposed to clients. All values are in SI units.
type Result struct {
	TransferTime    float64 `json:"transferTime" yaml:"transferTime"`
	InsertionDeltaV float64 `json:"insertionDeltaV" yaml:"insertionDeltaV"`
	ArrivalDeltaV   float64 `json:"arrivalDeltaV" yaml:"arrivalDeltaV"`
	TotalDeltaV     float64 `json:"totalDeltaV" yaml:"totalDeltaV"`
}

// NewResult returns the client facing values of a transfer.
func NewResult(t Transfer) Result {
	return Result{
		TransferTime:    t.TransferTime,
		InsertionDeltaV: t.InsertionΔv,
		ArrivalDeltaV:   t.ArrivalΔv,
		TotalDeltaV:     t.TotalΔv(),
	}
}

// Details extends Result with launch window information.
type Details struct {
	Result        `yaml:",inline"`
	Primary       string  `json:"primary" yaml:"primary"`
	SemiMajorAxis float64 `json:"semiMajorAxis" yaml:"semiMajorAxis"`
	PhaseAngle    float64 `json:"phaseAngle" yaml:"phaseAngle"`       // degrees, negative when trailing
	SynodicPeriod float64 `json:"synodicPeriod" yaml:"synodicPeriod"` // seconds

	// Set by NewDetailsAt only.
	CurrentPhase *float64 `json:"currentPhase,omitempty" yaml:"currentPhase,omitempty"` // degrees
	LaunchDelay  *float64 `json:"launchDelay,omitempty" yaml:"launchDelay,omitempty"`   // seconds
}

// NewDetails returns the client facing values of a transfer, with launch window information.
func NewDetails(t Transfer) Details {
	return Details{
		Result:        NewResult(t),
		Primary:       t.Primary.Name,
		SemiMajorAxis: t.SemiMajorAxis,
		PhaseAngle:    Rad2degSigned(t.PhaseAngle()),
		SynodicPeriod: t.SynodicPeriod(),
	}
}

// NewDetailsAt returns the details of a transfer along with the delay until the next launch
// window, given the current lead angle in degrees of the arrival body over the departure body.
// The delay is omitted when the bodies do not drift relative to each other.
func NewDetailsAt(t Transfer, currentPhase float64) Details {
	d := NewDetails(t)
	d.CurrentPhase = &currentPhase
	if delay, ok := t.LaunchDelay(Deg2rad(currentPhase)); ok {
		d.LaunchDelay = &delay
	}
	return d
}
