package orbits

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestAngles(t *testing.T) {
	for i := 0.0; i < 360; i += 0.5 {
		rad := Deg2rad(i)
		if !scalar.EqualWithinAbs(rad, i*math.Pi/180, 1e-12) {
			t.Fatalf("Deg2rad(%f) = %f", i, rad)
		}
		if deg := Rad2deg(rad); !scalar.EqualWithinAbs(deg, i, 1e-9) {
			t.Fatalf("Rad2deg(Deg2rad(%f)) = %f", i, deg)
		}
	}
	if deg := Rad2deg(-math.Pi / 2); !scalar.EqualWithinAbs(deg, 270, 1e-9) {
		t.Fatalf("Rad2deg(-π/2) = %f != 270", deg)
	}
	if deg := Rad2deg(5 * math.Pi); !scalar.EqualWithinAbs(deg, 180, 1e-9) {
		t.Fatalf("Rad2deg(5π) = %f != 180", deg)
	}
	if rad := Deg2rad(-90); !scalar.EqualWithinAbs(rad, 3*math.Pi/2, 1e-12) {
		t.Fatalf("Deg2rad(-90) = %f != 3π/2", rad)
	}
}

func TestSignedAngles(t *testing.T) {
	for _, tc := range []struct{ rad, deg float64 }{
		{0, 0}, {math.Pi, 180}, {-math.Pi, 180}, {-math.Pi / 2, -90}, {3 * math.Pi / 2, -90}, {Deg2rad(44.68), 44.68}, {-0.943, -0.943 * 180 / math.Pi},
	} {
		if deg := Rad2degSigned(tc.rad); !scalar.EqualWithinAbs(deg, tc.deg, 1e-9) {
			t.Fatalf("Rad2degSigned(%f) = %f != %f", tc.rad, deg, tc.deg)
		}
	}
}
