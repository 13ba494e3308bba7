package orbits

import "math"

// Hohmann computes an Hohmann transfer between two circular orbits of radii rI and rF around
// a body of gravitational parameter μ. It returns the magnitude of both burns and the time of
// flight in seconds. The absolute values make it valid for raising and lowering transfers.
func Hohmann(rI, rF, μ float64) (ΔvInit, ΔvFinal, tof float64) {
	aTransfer := 0.5 * (rI + rF)
	vI := math.Sqrt(μ / rI)
	vF := math.Sqrt(μ / rF)
	ΔvInit = vI * math.Abs(1-math.Sqrt(rF/aTransfer))
	ΔvFinal = vF * math.Abs(1-math.Sqrt(rI/aTransfer))
	tof = math.Pi * math.Sqrt(math.Pow(aTransfer, 3)/μ)
	return
}

// HyperbolicΔv returns the burn needed to leave (or be captured into) a circular parking orbit
// of radius r around a body of gravitational parameter μ on a hyperbola of excess speed vInf.
func HyperbolicΔv(vInf, r, μ float64) float64 {
	return math.Sqrt(vInf*vInf+2*μ/r) - math.Sqrt(μ/r)
}

// SynodicPeriod returns the synodic period in seconds of two orbits of mean motions n1 and n2
// (in rad/s). Returns +Inf for identical mean motions.
func SynodicPeriod(n1, n2 float64) float64 {
	return 2 * math.Pi / math.Abs(n1-n2)
}
