// Package spatial implements geometry on a toroidal 2D plane: wrap-aware
// candidate positions, circle collision, and polygon hitbox tests.
package spatial

import (
	"math"

	"github.com/lixenwraith/stardrift/vmath"
)

// World describes the toroidal plane dimensions
type World struct {
	Width, Height float64
}

// WrapPosition maps a position back into [0,W)×[0,H) after integration
func (w World) WrapPosition(p vmath.Vec) vmath.Vec {
	if p.X < 0 {
		p.X = w.Width
	} else if p.X > w.Width {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = w.Height
	} else if p.Y > w.Height {
		p.Y = 0
	}
	return p
}

// WrappedPositions returns every candidate position that must be tested for an
// object of the given radius: the position itself, an edge ghost per axis
// within radius of a boundary, and a corner ghost when both axes qualify.
// Result length is 1, 2, 3, or 4 and is appended to buf to avoid allocation.
func (w World) WrappedPositions(p vmath.Vec, radius float64, buf []vmath.Vec) []vmath.Vec {
	buf = append(buf, p)

	left := p.X < radius
	right := p.X > w.Width-radius
	top := p.Y < radius
	bottom := p.Y > w.Height-radius

	switch {
	case left:
		buf = append(buf, vmath.Vec{X: p.X + w.Width, Y: p.Y})
	case right:
		buf = append(buf, vmath.Vec{X: p.X - w.Width, Y: p.Y})
	}
	switch {
	case top:
		buf = append(buf, vmath.Vec{X: p.X, Y: p.Y + w.Height})
	case bottom:
		buf = append(buf, vmath.Vec{X: p.X, Y: p.Y - w.Height})
	}

	switch {
	case left && top:
		buf = append(buf, vmath.Vec{X: p.X + w.Width, Y: p.Y + w.Height})
	case right && top:
		buf = append(buf, vmath.Vec{X: p.X - w.Width, Y: p.Y + w.Height})
	case left && bottom:
		buf = append(buf, vmath.Vec{X: p.X + w.Width, Y: p.Y - w.Height})
	case right && bottom:
		buf = append(buf, vmath.Vec{X: p.X - w.Width, Y: p.Y - w.Height})
	}

	return buf
}

// CheckWrappedCollision reports whether two circles collide on the torus.
// Every candidate pair is tested; collision is distance < radA + radB.
func (w World) CheckWrappedCollision(posA vmath.Vec, radA float64, posB vmath.Vec, radB float64) bool {
	var bufA, bufB [4]vmath.Vec
	candA := w.WrappedPositions(posA, radA, bufA[:0])
	candB := w.WrappedPositions(posB, radB, bufB[:0])

	limit := radA + radB
	limitSq := limit * limit
	for _, a := range candA {
		for _, b := range candB {
			if a.Sub(b).MagnitudeSq() < limitSq {
				return true
			}
		}
	}
	return false
}

// WrappedDelta returns the minimal displacement from a to b on the torus.
// Used for travel-distance accounting so a screen wrap does not count as a
// full-world jump.
func (w World) WrappedDelta(a, b vmath.Vec) vmath.Vec {
	dx := b.X - a.X
	dy := b.Y - a.Y
	if math.Abs(dx) > w.Width/2 {
		dx -= math.Copysign(w.Width, dx)
	}
	if math.Abs(dy) > w.Height/2 {
		dy -= math.Copysign(w.Height, dy)
	}
	return vmath.Vec{X: dx, Y: dy}
}
