// Package vmath provides the scalar and vector math used by the simulation.
// All operations are zero-safe: degenerate inputs (zero vectors, zero ranges)
// return zero values instead of NaN.
package vmath

import "math"

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp interpolates linearly from a to b by t in [0,1]
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// EaseOutCubic maps t in [0,1] through a cubic ease-out curve
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// NormalizeAngle wraps an angle to [-π, π]
func NormalizeAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// ApproachAngle moves current toward target by rate*dt along the shorter arc
func ApproachAngle(current, target, rate, dt float64) float64 {
	diff := NormalizeAngle(target - current)
	return current + diff*rate*dt
}
