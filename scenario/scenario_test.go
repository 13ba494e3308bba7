package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/Agere98/orbits"
)

const interplanetary = `
bodies:
  - name: Sol
    mass: 1.989e30
  - name: Terra
    mass: 5.972e24
    radius: 6.371e6
    orbit: {primary: Sol, radius: 1.496e11}
  - name: Mars
    mass: 6.417e23
    orbit: {primary: Sol, radius: 2.289e11}
transfers:
  - name: Terra to Mars
    from: {primary: Sol, radius: 1.496e11}
    to: {primary: Sol, radius: 2.289e11}
  - name: LEO to LMO
    from: {primary: Terra, altitude: 3.0e5}
    to: {primary: Mars, radius: 3.69e6}
  - from: {primary: Terra, radius: 6.671e6}
    to: {primary: Vulcan, radius: 1e6}
`

func TestScenario(t *testing.T) {
	s, err := Load(strings.NewReader(interplanetary))
	if err != nil {
		t.Fatal(err)
	}
	outcomes := s.Run()
	if len(outcomes) != 3 {
		t.Fatalf("got %d outcomes", len(outcomes))
	}

	direct := outcomes[0]
	if direct.Err != nil {
		t.Fatal(direct.Err)
	}
	if direct.Name != "Terra to Mars" {
		t.Fatalf("unexpected name %q", direct.Name)
	}
	if !scalar.EqualWithinAbs(direct.Transfer.TotalΔv(), 5642, 2) {
		t.Fatalf("invalid total Δv=%f", direct.Transfer.TotalΔv())
	}

	patched := outcomes[1]
	if patched.Err != nil {
		t.Fatal(patched.Err)
	}
	if !scalar.EqualWithinAbs(patched.Transfer.TotalΔv(), 5700, 2) {
		t.Fatalf("invalid total Δv=%f", patched.Transfer.TotalΔv())
	}
	sol, _ := s.Body("sol")
	if patched.Transfer.Primary != sol {
		t.Fatalf("transfer around %s", patched.Transfer.Primary)
	}

	failed := outcomes[2]
	if !errors.Is(failed.Err, orbits.ErrUnknownBody) {
		t.Fatalf("expected ErrUnknownBody, got %v", failed.Err)
	}
	if failed.Name != "Terra -> Vulcan" {
		t.Fatalf("unexpected default name %q", failed.Name)
	}
}

func TestScenarioCatalog(t *testing.T) {
	s, err := Load(strings.NewReader(`
catalog: true
bodies:
  - name: Gateway
    mass: 4.0e4
    orbit: {primary: Moon, altitude: 3.0e6}
transfers:
  - from: {primary: Earth, altitude: 4.0e5}
    to: {primary: Gateway, radius: 100}
`))
	if err != nil {
		t.Fatal(err)
	}
	outcome := s.Run()[0]
	if outcome.Err != nil {
		t.Fatal(outcome.Err)
	}
	earth, _ := s.Body("Earth")
	if outcome.Transfer.Primary != earth {
		t.Fatalf("transfer around %s instead of the Earth", outcome.Transfer.Primary)
	}
}

func TestScenarioErrors(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown primary": `
bodies:
  - name: Terra
    mass: 5.972e24
    orbit: {primary: Sol, radius: 1.496e11}
  - name: Sol
    mass: 1.989e30
`,
		"duplicate": `
bodies:
  - {name: Sol, mass: 1.989e30}
  - {name: sol, mass: 1.989e30}
`,
		"no name": `
bodies:
  - {mass: 1.989e30}
`,
		"negative mass": `
bodies:
  - {name: Sol, mass: -1}
`,
		"radius and altitude": `
bodies:
  - {name: Sol, mass: 1.989e30}
  - name: Terra
    mass: 5.972e24
    orbit: {primary: Sol, radius: 1.496e11, altitude: 1}
`,
		"unknown field": `
bodies:
  - {name: Sol, mass: 1.989e30, colour: yellow}
`,
	} {
		if _, err := Load(strings.NewReader(doc)); err == nil {
			t.Fatalf("%s: expected an error", name)
		}
	}
	_, err := Load(strings.NewReader(`
bodies:
  - {name: Sol, mass: 0}
`))
	if !errors.Is(err, orbits.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestScenarioEmpty(t *testing.T) {
	s, err := Load(strings.NewReader(""))
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Run()) != 0 {
		t.Fatal("empty scenario produced outcomes")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mars.yaml")
	if err := os.WriteFile(path, []byte(interplanetary), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err := LoadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Transfers) != 3 {
		t.Fatalf("got %d transfers", len(s.Transfers))
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected a missing file error, got %v", err)
	}
}
