package component

import "math"

// Particle is a short-lived cosmetic entity. Priority is fixed at creation
// and consulted only by pool eviction.
type Particle struct {
	Transform
	Priority      int
	Life          float64 // seconds remaining
	InitialLife   float64
	Drag          float64 // velocity retained per second, 1 = none
	Color         uint8   // renderer palette index
}

// Update integrates and ages the particle
func (p *Particle) Update(dt float64) {
	if !p.Active {
		return
	}
	p.Integrate(dt)
	if p.Drag != 0 && p.Drag != 1 {
		p.Vel = p.Vel.Scale(math.Pow(p.Drag, dt))
	}
	p.Life -= dt
	if p.Life <= 0 {
		p.Active = false
	}
}
