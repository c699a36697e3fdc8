package component

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// Asteroid is a drifting rock of size tier 1–9 (9 largest)
type Asteroid struct {
	Transform
	Size          int
	Radius        float64
	RotationSpeed float64
	RotationAngle float64
	HasShadow     bool // cosmetic only
	Seq           uint64 // creation order, used by newest-first eviction
}

// HitboxCenter returns the calibrated collision center, offset from the
// visual center for lopsided large tiers
func (a *Asteroid) HitboxCenter() vmath.Vec {
	off := parameter.AsteroidHitboxOffsets[a.Size]
	return a.Pos.Add(vmath.Vec{X: off.X, Y: off.Y})
}

// NewAsteroid creates an asteroid of the given tier at pos with randomized
// drift and rotation
func NewAsteroid(rng *rand.Rand, pos vmath.Vec, size int) *Asteroid {
	if size < 1 {
		size = 1
	} else if size > 9 {
		size = 9
	}

	baseSpeed := parameter.AsteroidBaseSpeedMin +
		rng.Float64()*(parameter.AsteroidBaseSpeedMax-parameter.AsteroidBaseSpeedMin)
	speed := baseSpeed * parameter.AsteroidSpeedMultipliers[size]
	heading := rng.Float64() * 2 * math.Pi

	baseRotation := parameter.AsteroidBaseRotationMin +
		rng.Float64()*(parameter.AsteroidBaseRotationMax-parameter.AsteroidBaseRotationMin)

	return &Asteroid{
		Transform: Transform{
			Pos:    pos,
			Vel:    vmath.FromAngle(heading, speed),
			Active: true,
		},
		Size:          size,
		Radius:        parameter.AsteroidRadius(size),
		RotationSpeed: baseRotation * parameter.AsteroidRotationMultipliers[size],
		RotationAngle: rng.Float64() * 2 * math.Pi,
		HasShadow:     size >= 5,
	}
}
