// Package component defines the entity records of the simulation. Entities
// embed a shared Transform instead of inheriting a base type; systems operate
// on whichever record they own.
package component

import "github.com/lixenwraith/stardrift/vmath"

// Transform is the kinematic state shared by every simulated entity.
// Active=false marks logical deletion; containers compact inactive entries
// at the end of the frame, entities are never reused.
type Transform struct {
	Pos    vmath.Vec
	Vel    vmath.Vec
	Angle  float64
	Active bool
}

// Integrate advances position by velocity over dt
func (t *Transform) Integrate(dt float64) {
	t.Pos = t.Pos.Add(t.Vel.Scale(dt))
}

// IsActive reports whether the entity is still live
func (t *Transform) IsActive() bool {
	return t.Active
}
