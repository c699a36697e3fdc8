package component

import (
	"github.com/lixenwraith/stardrift/parameter"
	"github.com/lixenwraith/stardrift/vmath"
)

// Ship is the single player entity, recreated on death and level change
type Ship struct {
	Transform
	Radius float64

	// Shield
	ShieldHits     int
	ShieldRecharge float64 // seconds until the next hit point returns
	InvulnTimer    float64 // level-start grace period

	// Rate-of-fire progression: HoldTime accumulates while the trigger is
	// held and resets on release
	FireCooldown float64
	HoldTime     float64

	// Dual ability charges
	AbilityCharges  int
	AbilityRecharge float64
	FirstChargeUsed bool
}

// NewShip creates a ship at pos with full shields and the level-start
// invulnerability window
func NewShip(pos vmath.Vec) *Ship {
	return &Ship{
		Transform: Transform{
			Pos:    pos,
			Active: true,
		},
		Radius:      parameter.ShipRadius,
		ShieldHits:  parameter.ShieldMaxHits,
		InvulnTimer: parameter.LevelStartInvulnSecs,
	}
}

// Invulnerable reports whether the ship currently ignores damage
func (s *Ship) Invulnerable() bool {
	return s.InvulnTimer > 0
}
