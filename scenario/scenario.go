// Package scenario loads a body and orbit graph from YAML and evaluates the Hohmann transfers
// it lists.
package scenario

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Agere98/orbits"
)

// OrbitSpec describes a circular orbit, either by radius or by altitude above the primary.
type OrbitSpec struct {
	Primary  string   `yaml:"primary"`
	Radius   float64  `yaml:"radius,omitempty"`
	Altitude *float64 `yaml:"altitude,omitempty"`
}

// BodySpec describes a celestial body and, optionally, the orbit it follows.
type BodySpec struct {
	Name   string     `yaml:"name"`
	Mass   float64    `yaml:"mass"`
	Radius float64    `yaml:"radius,omitempty"`
	Orbit  *OrbitSpec `yaml:"orbit,omitempty"`
}

// TransferSpec describes a transfer to evaluate.
type TransferSpec struct {
	Name string    `yaml:"name"`
	From OrbitSpec `yaml:"from"`
	To   OrbitSpec `yaml:"to"`
}

// Scenario is a resolved scenario file.
type Scenario struct {
	Catalog   bool           `yaml:"catalog"`
	Bodies    []BodySpec     `yaml:"bodies"`
	Transfers []TransferSpec `yaml:"transfers"`

	bodies map[string]*orbits.CelestialBody
}

// Outcome is the result of one transfer of a scenario.
type Outcome struct {
	Name     string
	Transfer orbits.Transfer
	Err      error
}

// LoadFile loads the scenario from the provided path.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Load decodes a scenario and builds its bodies. Bodies must be declared after the primary
// they orbit, unless that primary comes from the catalog.
func Load(r io.Reader) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := s.build(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) build() error {
	s.bodies = make(map[string]*orbits.CelestialBody)
	if s.Catalog {
		catalog, err := orbits.NewSolarSystem()
		if err != nil {
			return err
		}
		for _, b := range catalog.Bodies() {
			s.bodies[key(b.Name)] = b
		}
	}
	for i, spec := range s.Bodies {
		if strings.TrimSpace(spec.Name) == "" {
			return fmt.Errorf("body #%d has no name", i+1)
		}
		if _, dup := s.bodies[key(spec.Name)]; dup {
			return fmt.Errorf("body %q declared twice", spec.Name)
		}
		body, err := orbits.NewCelestialBody(spec.Name, spec.Mass)
		if err != nil {
			return err
		}
		body.Radius = spec.Radius
		if spec.Orbit != nil {
			o, err := s.orbit(*spec.Orbit)
			if err != nil {
				return fmt.Errorf("orbit of %s: %w", spec.Name, err)
			}
			body.SetOrbit(o)
		}
		s.bodies[key(spec.Name)] = body
	}
	return nil
}

// Body returns a body of the scenario from its name.
func (s *Scenario) Body(name string) (*orbits.CelestialBody, error) {
	if b, found := s.bodies[key(name)]; found {
		return b, nil
	}
	return nil, fmt.Errorf("%w '%s'", orbits.ErrUnknownBody, name)
}

func (s *Scenario) orbit(spec OrbitSpec) (*orbits.Orbit, error) {
	primary, err := s.Body(spec.Primary)
	if err != nil {
		return nil, err
	}
	if spec.Altitude != nil {
		if spec.Radius != 0 {
			return nil, fmt.Errorf("%w: both radius and altitude set around %s", orbits.ErrInvalidParameter, primary)
		}
		return orbits.ParkingOrbit(primary, *spec.Altitude)
	}
	return orbits.NewOrbit(spec.Radius, primary)
}

// Run computes every transfer of the scenario. A failing transfer does not prevent the others
// from being computed; its error is stored in its outcome.
func (s *Scenario) Run() []Outcome {
	outcomes := make([]Outcome, len(s.Transfers))
	for i, spec := range s.Transfers {
		outcomes[i].Name = spec.Name
		if outcomes[i].Name == "" {
			outcomes[i].Name = fmt.Sprintf("%s -> %s", spec.From.Primary, spec.To.Primary)
		}
		outcomes[i].Transfer, outcomes[i].Err = s.transfer(spec)
	}
	return outcomes
}

func (s *Scenario) transfer(spec TransferSpec) (orbits.Transfer, error) {
	from, err := s.orbit(spec.From)
	if err != nil {
		return orbits.Transfer{}, fmt.Errorf("starting orbit: %w", err)
	}
	to, err := s.orbit(spec.To)
	if err != nil {
		return orbits.Transfer{}, fmt.Errorf("destination orbit: %w", err)
	}
	return orbits.NewTransfer(from, to)
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
