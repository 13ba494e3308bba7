package orbits

import (
	"errors"
	"sort"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestSolarSystem(t *testing.T) {
	s, err := NewSolarSystem()
	if err != nil {
		t.Fatal(err)
	}
	sun, err := s.Body("Sun")
	if err != nil {
		t.Fatal(err)
	}
	if sun.Orbit() != nil {
		t.Fatal("the Sun does not orbit anything here")
	}
	for _, name := range []string{"earth", "MARS", " Jupiter ", "Pluto"} {
		planet, err := s.Body(name)
		if err != nil {
			t.Fatalf("%s: %s", name, err)
		}
		if planet.Orbit() == nil || planet.Orbit().Primary() != sun {
			t.Fatalf("%s does not orbit the Sun", planet)
		}
		if planet.Radius <= 0 {
			t.Fatalf("%s has no radius", planet)
		}
	}
	moon, _ := s.Body("Moon")
	earth, _ := s.Body("Earth")
	if moon.Orbit().Primary() != earth {
		t.Fatal("the Moon does not orbit the Earth")
	}
	if _, err := s.Body("Vulcan"); !errors.Is(err, ErrUnknownBody) {
		t.Fatalf("expected ErrUnknownBody, got %v", err)
	}

	names := s.Names()
	if !sort.StringsAreSorted(names) {
		t.Fatal("names are not sorted")
	}
	bodies := s.Bodies()
	if len(bodies) != len(names) {
		t.Fatalf("%d bodies for %d names", len(bodies), len(names))
	}
	seen := map[*CelestialBody]bool{}
	for _, b := range bodies {
		if b.Orbit() != nil && !seen[b.Orbit().Primary()] {
			t.Fatalf("%s listed before its primary", b)
		}
		seen[b] = true
	}
}

func TestSolarSystemNotShared(t *testing.T) {
	s1, _ := NewSolarSystem()
	s2, _ := NewSolarSystem()
	e1, _ := s1.Body("Earth")
	e2, _ := s2.Body("Earth")
	if e1 == e2 {
		t.Fatal("catalogs share bodies")
	}
	m2, _ := s2.Body("Mars")
	o1, _ := NewOrbit(7e6, e1)
	o2, _ := NewOrbit(4e6, m2)
	if _, err := NewTransfer(o1, o2); !errors.Is(err, ErrIncompatibleOrbits) {
		t.Fatalf("bodies from distinct catalogs should not be compatible, got %v", err)
	}
}

func TestSolarSystemPlanetToMoon(t *testing.T) {
	s, _ := NewSolarSystem()
	earth, _ := s.Orbit("earth", nil)
	moon, _ := s.Orbit("moon", nil)
	for _, pair := range [][2]*Orbit{{earth, moon}, {moon, earth}} {
		if _, err := NewTransfer(pair[0], pair[1]); !errors.Is(err, ErrIncompatibleOrbits) {
			t.Fatalf("%s -> %s: expected ErrIncompatibleOrbits, got %v", pair[0], pair[1], err)
		}
	}
	altitude := 300e3
	leo, _ := s.Orbit("earth", &altitude)
	tr, err := NewTransfer(leo, moon)
	if err != nil {
		t.Fatal(err)
	}
	if tr.Primary.Name != "Earth" || tr.Interplanetary() {
		t.Fatalf("expected a direct transfer around Earth, got %s", tr)
	}
}

func TestSolarSystemInward(t *testing.T) {
	s, _ := NewSolarSystem()
	earth, _ := s.Orbit("earth", nil)
	venus, _ := s.Orbit("venus", nil)
	tr, err := NewTransfer(earth, venus)
	if err != nil {
		t.Fatal(err)
	}
	if d := NewDetails(tr); !scalar.EqualWithinAbs(d.PhaseAngle, -54.04, 0.01) {
		t.Fatalf("Venus should trail Earth by about 54 deg, got %f", d.PhaseAngle)
	}
}

func TestParkingOrbit(t *testing.T) {
	s, _ := NewSolarSystem()
	earth, _ := s.Body("Earth")
	mars, _ := s.Body("Mars")
	leo, err := ParkingOrbit(earth, 300e3)
	if err != nil {
		t.Fatal(err)
	}
	if leo.Radius() != earth.Radius+300e3 {
		t.Fatalf("invalid radius %f", leo.Radius())
	}
	lmo, err := ParkingOrbit(mars, 300e3)
	if err != nil {
		t.Fatal(err)
	}
	tr, err := NewTransfer(leo, lmo)
	if err != nil {
		t.Fatal(err)
	}
	if !scalar.EqualWithinAbs(tr.InsertionΔv, 3591.45, 0.01) {
		t.Fatalf("invalid insertion Δv=%f", tr.InsertionΔv)
	}
	if !scalar.EqualWithinAbs(tr.ArrivalΔv, 2091.49, 0.01) {
		t.Fatalf("invalid arrival Δv=%f", tr.ArrivalΔv)
	}
	if !scalar.EqualWithinAbs(tr.TransferTime/day, 258.84, 0.01) {
		t.Fatalf("invalid transfer time %f days", tr.TransferTime/day)
	}

	if _, err := ParkingOrbit(earth, -1); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
	if _, err := ParkingOrbit(nil, 300e3); !errors.Is(err, ErrNilPrimaryBody) {
		t.Fatalf("expected ErrNilPrimaryBody, got %v", err)
	}
	unknown, _ := NewCelestialBody("Point mass", 1e20)
	if _, err := ParkingOrbit(unknown, 0); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestSolarSystemOrbit(t *testing.T) {
	s, _ := NewSolarSystem()
	earth, _ := s.Body("Earth")
	o, err := s.Orbit("earth", nil)
	if err != nil {
		t.Fatal(err)
	}
	if o != earth.Orbit() {
		t.Fatal("expected the Earth's own orbit")
	}
	altitude := 35786e3
	geo, err := s.Orbit("Earth", &altitude)
	if err != nil {
		t.Fatal(err)
	}
	if geo.Primary() != earth || geo.Radius() != earth.Radius+altitude {
		t.Fatalf("unexpected orbit %s", geo)
	}
	if _, err := s.Orbit("Sun", nil); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
	if _, err := s.Orbit("Vulcan", &altitude); !errors.Is(err, ErrUnknownBody) {
		t.Fatalf("expected ErrUnknownBody, got %v", err)
	}
}
