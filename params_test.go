package orbits

import (
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestSimpleParams(t *testing.T) {
	p := SimpleParams{PrimaryBodyMass: 1.989e30, StartingOrbitRadius: 1.496e11, DestinationOrbitRadius: 2.289e11}
	tr, err := p.Transfer()
	if err != nil {
		t.Fatal(err)
	}
	r := NewResult(tr)
	if !scalar.EqualWithinAbs(r.InsertionDeltaV, 2972, 1) || !scalar.EqualWithinAbs(r.ArrivalDeltaV, 2670, 1) {
		t.Fatalf("invalid result %+v", r)
	}
	if r.TotalDeltaV != r.InsertionDeltaV+r.ArrivalDeltaV {
		t.Fatalf("total Δv %f is not the sum of both burns", r.TotalDeltaV)
	}
	if r.TransferTime != tr.TransferTime {
		t.Fatal("transfer time not copied")
	}

	for _, bad := range []SimpleParams{
		{PrimaryBodyMass: 0, StartingOrbitRadius: 1, DestinationOrbitRadius: 1},
		{PrimaryBodyMass: 1, StartingOrbitRadius: -1, DestinationOrbitRadius: 1},
		{PrimaryBodyMass: 1, StartingOrbitRadius: 1, DestinationOrbitRadius: 0},
	} {
		if _, err := bad.Transfer(); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("%+v: expected ErrInvalidParameter, got %v", bad, err)
		}
	}
}

func TestInterplanetaryParams(t *testing.T) {
	p := InterplanetaryParams{
		SimpleParams:                 SimpleParams{PrimaryBodyMass: 1.989e30, StartingOrbitRadius: 6.671e6, DestinationOrbitRadius: 3.69e6},
		StartingPlanetOrbitRadius:    1.496e11,
		StartingPlanetMass:           5.972e24,
		DestinationPlanetOrbitRadius: 2.289e11,
		DestinationPlanetMass:        6.417e23,
	}
	tr, err := p.Transfer()
	if err != nil {
		t.Fatal(err)
	}
	r := NewResult(tr)
	if !scalar.EqualWithinAbs(r.InsertionDeltaV, 3598, 1) {
		t.Fatalf("invalid insertion Δv=%f", r.InsertionDeltaV)
	}
	if !scalar.EqualWithinAbs(r.ArrivalDeltaV, 2102, 1) {
		t.Fatalf("invalid arrival Δv=%f", r.ArrivalDeltaV)
	}
	if !scalar.EqualWithinAbs(r.TotalDeltaV, 5700, 2) {
		t.Fatalf("invalid total Δv=%f", r.TotalDeltaV)
	}

	d := NewDetails(tr)
	if d.Result != r {
		t.Fatal("details do not embed the result")
	}
	if !scalar.EqualWithinAbs(d.PhaseAngle, 44.68, 0.01) {
		t.Fatalf("invalid phase angle %f", d.PhaseAngle)
	}
	if d.Primary != "primary" {
		t.Fatalf("unexpected primary %q", d.Primary)
	}
	if d.CurrentPhase != nil || d.LaunchDelay != nil {
		t.Fatal("launch delay without a current phase")
	}

	// Mars runs 10° too far ahead: wait for Earth to catch up.
	at := NewDetailsAt(tr, d.PhaseAngle+10)
	if at.Result != r || at.CurrentPhase == nil || at.LaunchDelay == nil {
		t.Fatalf("incomplete details %+v", at)
	}
	if !scalar.EqualWithinAbs(*at.LaunchDelay/day, 21.51, 0.01) {
		t.Fatalf("invalid launch delay %f days", *at.LaunchDelay/day)
	}
	// A negative angle is the same as its positive counterpart.
	at = NewDetailsAt(tr, d.PhaseAngle-10-360)
	if !scalar.EqualWithinAbs(*at.LaunchDelay/day, 752.85, 0.01) {
		t.Fatalf("invalid launch delay %f days", *at.LaunchDelay/day)
	}

	bad := p
	bad.DestinationPlanetMass = -1
	if _, err := bad.Transfer(); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
	bad = p
	bad.StartingPlanetOrbitRadius = 0
	if _, err := bad.Transfer(); !errors.Is(err, ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}
