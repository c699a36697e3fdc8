package vmath

import "math"

// Vec is a 2D float vector value type
type Vec struct {
	X, Y float64
}

// Add returns v + o
func (v Vec) Add(o Vec) Vec {
	return Vec{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o
func (v Vec) Sub(o Vec) Vec {
	return Vec{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies vector by scalar factor
func (v Vec) Scale(s float64) Vec {
	return Vec{v.X * s, v.Y * s}
}

// Magnitude returns vector length
func (v Vec) Magnitude() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// MagnitudeSq returns squared magnitude without sqrt
func (v Vec) MagnitudeSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Normalize returns unit vector, zero-safe
func (v Vec) Normalize() Vec {
	mag := v.Magnitude()
	if mag == 0 {
		return Vec{}
	}
	return Vec{v.X / mag, v.Y / mag}
}

// Rotate rotates vector by angle in radians
func (v Vec) Rotate(angle float64) Vec {
	cos := math.Cos(angle)
	sin := math.Sin(angle)
	return Vec{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// Dot returns v.X*o.X + v.Y*o.Y
func (v Vec) Dot(o Vec) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Perpendicular returns vector rotated 90° counter-clockwise
func (v Vec) Perpendicular() Vec {
	return Vec{-v.Y, v.X}
}

// Heading returns the angle of the vector in radians
// Returns 0 for the zero vector
func (v Vec) Heading() float64 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	return math.Atan2(v.Y, v.X)
}

// ClampMagnitude limits vector to maxMag while preserving direction
// Returns unchanged vector if magnitude <= maxMag
func (v Vec) ClampMagnitude(maxMag float64) Vec {
	mag := v.Magnitude()
	if mag <= maxMag || mag == 0 {
		return v
	}
	return v.Scale(maxMag / mag)
}

// FromAngle returns a vector of the given magnitude pointing at angle
func FromAngle(angle, mag float64) Vec {
	return Vec{math.Cos(angle) * mag, math.Sin(angle) * mag}
}
