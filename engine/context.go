// Package engine owns the simulation root: the context struct threaded
// through every update call, and the fixed-timestep loop driving it. No
// module-level globals; everything a system touches hangs off Context.
package engine

import (
	"math/rand"

	"github.com/lixenwraith/stardrift/component"
	"github.com/lixenwraith/stardrift/event"
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/spatial"
	"github.com/lixenwraith/stardrift/vmath"
)

// Context is the single owner of all mutable simulation state. It is
// mutated only during the one update pass per frame; systems receive it
// explicitly and never retain entity pointers across frames.
type Context struct {
	World  spatial.World
	Rand   *rand.Rand
	Events *event.Queue

	Level int
	Score int
	Lives int

	// TimeScale is the current global dilation factor applied to dt
	TimeScale float64

	Ship      *component.Ship
	Asteroids []*component.Asteroid
	UFOs      []*component.UFO
	Bullets   []*component.Bullet
	Particles []*component.Particle
	Boss      *component.Boss

	// BossBullets are owned by the boss and removed with it
	BossBullets []*component.Bullet

	asteroidSeq uint64
}

// NewContext creates an empty simulation state over the given world
func NewContext(world spatial.World, rng *rand.Rand, events *event.Queue) *Context {
	return &Context{
		World:     world,
		Rand:      rng,
		Events:    events,
		Level:     1,
		Lives:     parameter.StartingLives,
		TimeScale: 1.0,
		Asteroids: make([]*component.Asteroid, 0, parameter.MaxAsteroids),
		UFOs:      make([]*component.UFO, 0, parameter.MaxUFOs),
		Bullets:   make([]*component.Bullet, 0, 64),
		Particles: make([]*component.Particle, 0, parameter.MaxParticles),
	}
}

// AddAsteroid stamps the creation sequence used by newest-first eviction
func (c *Context) AddAsteroid(a *component.Asteroid) {
	c.asteroidSeq++
	a.Seq = c.asteroidSeq
	c.Asteroids = append(c.Asteroids, a)
}

// Center returns the middle of the play field
func (c *Context) Center() vmath.Vec {
	return vmath.Vec{X: c.World.Width / 2, Y: c.World.Height / 2}
}

// LiveAsteroids counts active asteroids
func (c *Context) LiveAsteroids() int {
	n := 0
	for _, a := range c.Asteroids {
		if a.Active {
			n++
		}
	}
	return n
}

// LiveUFOs counts active saucers
func (c *Context) LiveUFOs() int {
	n := 0
	for _, u := range c.UFOs {
		if u.Active {
			n++
		}
	}
	return n
}

// Compact drops inactive entities from every container. Runs once at the
// end of each frame so systems may deactivate freely mid-pass without
// invalidating the indices of the current loop.
func (c *Context) Compact() {
	c.Asteroids = compact(c.Asteroids)
	c.UFOs = compact(c.UFOs)
	c.Bullets = compact(c.Bullets)
	c.Particles = compact(c.Particles)
	c.BossBullets = compact(c.BossBullets)
	if c.Boss != nil && !c.Boss.Active {
		c.Boss = nil
		c.BossBullets = c.BossBullets[:0]
	}
}

func compact[T interface{ IsActive() bool }](s []T) []T {
	out := s[:0]
	for _, e := range s {
		if e.IsActive() {
			out = append(out, e)
		}
	}
	// Clear the tail so dropped entities can be collected
	var zero T
	for i := len(out); i < len(s); i++ {
		s[i] = zero
	}
	return out
}
