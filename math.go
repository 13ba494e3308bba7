package orbits

import "math"

const (
	deg2rad = math.Pi / 180
)

// Deg2rad converts degrees to radians, and enforced only positive numbers.
func Deg2rad(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a * deg2rad
}

// Rad2deg converts radians to degrees, and enforced only positive numbers.
func Rad2deg(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a / deg2rad
}

// Rad2degSigned converts radians to degrees in (-180, 180].
func Rad2degSigned(a float64) float64 {
	deg := Rad2deg(a)
	if deg > 180 {
		deg -= 360
	}
	return deg
}
