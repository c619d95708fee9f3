package vmath

import "math"

// Epsilon is the tolerance used by float comparisons in this package
const Epsilon = 1e-9

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp returns a + (b-a)*t, t is not clamped
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Sign returns -1, 0, or 1
func Sign(x float64) float64 {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// NearlyEqual reports whether a and b differ by at most Epsilon
func NearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// DegToRad converts degrees to radians
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
